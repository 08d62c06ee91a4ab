package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/Lexv0lk/bargain-market/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ProductsRepository struct{}

func NewProductsRepository() *ProductsRepository {
	return &ProductsRepository{}
}

func (pr *ProductsRepository) GetProduct(ctx context.Context, querier database.Querier, productID string) (domain.Product, error) {
	findProductSQL := `SELECT id, merchant_id, name, price, quantity FROM products WHERE id = $1`

	var product domain.Product
	err := querier.QueryRow(ctx, findProductSQL, productID).
		Scan(&product.ID, &product.MerchantID, &product.Name, &product.Price, &product.Quantity)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{
				Msg:       fmt.Sprintf("product %s not found for this merchant", productID),
				ProductID: productID,
			}
		}

		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (pr *ProductsRepository) UpdateStock(ctx context.Context, executor database.Executor, updates ...domain.StockUpdate) error {
	updateStockSQL := `UPDATE products SET quantity = $1 WHERE id = $2`

	for _, update := range updates {
		tag, err := executor.Exec(ctx, updateStockSQL, update.NewQuantity, update.ProductID)
		if err != nil {
			return fmt.Errorf("failed to update stock of product %s: %w", update.ProductID, err)
		} else if tag.RowsAffected() == 0 {
			return &domain.ProductNotFoundError{
				Msg:       fmt.Sprintf("product %s not found", update.ProductID),
				ProductID: update.ProductID,
			}
		}
	}

	return nil
}
