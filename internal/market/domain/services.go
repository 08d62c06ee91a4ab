package domain

import "context"

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/market/services_mock.go -package=mocks

type Purchaser interface {
	Execute(ctx context.Context, buyerID string, req PurchaseRequest) (PurchaseResult, error)
}

type ReceiptFetcher interface {
	GetReceipt(ctx context.Context, userID, receiptID string) (Receipt, error)
}
