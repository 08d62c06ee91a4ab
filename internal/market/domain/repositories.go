package domain

import (
	"context"

	"github.com/Lexv0lk/bargain-market/internal/pkg/database"
)

//go:generate mockgen -source=repositories.go -destination=../../../gen/mocks/market/repositories_mock.go -package=mocks

type UsersRepository interface {
	GetUser(ctx context.Context, querier database.Querier, userID string) (User, error)
	UpdateBalances(ctx context.Context, executor database.Executor, updates ...BalanceUpdate) error
}

type ProductsRepository interface {
	GetProduct(ctx context.Context, querier database.Querier, productID string) (Product, error)
	UpdateStock(ctx context.Context, executor database.Executor, updates ...StockUpdate) error
}

type ReceiptsRepository interface {
	// CreateReceipt stores receipt and returns it with the generated id and
	// the server timestamp.
	CreateReceipt(ctx context.Context, executor database.QueryExecuter, receipt Receipt) (Receipt, error)
	GetReceipt(ctx context.Context, querier database.Querier, receiptID string) (Receipt, error)
}

type ReceiptPublisher interface {
	PublishReceipt(ctx context.Context, receipt Receipt) error
}
