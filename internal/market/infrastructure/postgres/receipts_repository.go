package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/Lexv0lk/bargain-market/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReceiptsRepository struct {
	newID func() uuid.UUID
}

func NewReceiptsRepository() *ReceiptsRepository {
	return &ReceiptsRepository{
		newID: uuid.New,
	}
}

func (rr *ReceiptsRepository) CreateReceipt(ctx context.Context, executor database.QueryExecuter, receipt domain.Receipt) (domain.Receipt, error) {
	insertReceiptSQL := `INSERT INTO receipts
    (id, buyer_id, merchant_id, buyer_name, merchant_name, original_total, negotiated_discount, final_total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at`

	id := rr.newID()

	err := executor.QueryRow(ctx, insertReceiptSQL,
		id,
		receipt.BuyerID,
		receipt.MerchantID,
		receipt.BuyerName,
		receipt.MerchantName,
		receipt.OriginalTotal,
		receipt.NegotiatedDiscount,
		receipt.FinalTotal,
	).Scan(&receipt.Timestamp)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to insert receipt: %w", err)
	}

	insertItemSQL := `INSERT INTO receipt_items (receipt_id, position, product_name, quantity, price) VALUES ($1, $2, $3, $4, $5)`
	for i, item := range receipt.Items {
		_, err = executor.Exec(ctx, insertItemSQL, id, i, item.ProductName, item.Quantity, item.Price)
		if err != nil {
			return domain.Receipt{}, fmt.Errorf("failed to insert receipt item %d: %w", i, err)
		}
	}

	receipt.ID = id.String()
	return receipt, nil
}

func (rr *ReceiptsRepository) GetReceipt(ctx context.Context, querier database.Querier, receiptID string) (domain.Receipt, error) {
	id, err := uuid.Parse(receiptID)
	if err != nil {
		return domain.Receipt{}, &domain.ReceiptNotFoundError{Msg: fmt.Sprintf("receipt %s not found", receiptID)}
	}

	findReceiptSQL := `SELECT buyer_id, merchant_id, buyer_name, merchant_name, original_total, negotiated_discount, final_total, created_at
FROM receipts
WHERE id = $1`

	receipt := domain.Receipt{ID: id.String()}
	err = querier.QueryRow(ctx, findReceiptSQL, id).Scan(
		&receipt.BuyerID,
		&receipt.MerchantID,
		&receipt.BuyerName,
		&receipt.MerchantName,
		&receipt.OriginalTotal,
		&receipt.NegotiatedDiscount,
		&receipt.FinalTotal,
		&receipt.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Receipt{}, &domain.ReceiptNotFoundError{Msg: fmt.Sprintf("receipt %s not found", receiptID)}
		}

		return domain.Receipt{}, fmt.Errorf("failed to find receipt: %w", err)
	}

	itemsSelectSQL := `SELECT product_name, quantity, price FROM receipt_items WHERE receipt_id = $1 ORDER BY position`
	rows, err := querier.Query(ctx, itemsSelectSQL, id)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to select receipt items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ReceiptLine
		err = rows.Scan(&item.ProductName, &item.Quantity, &item.Price)
		if err != nil {
			return domain.Receipt{}, fmt.Errorf("failed to scan receipt item: %w", err)
		}
		receipt.Items = append(receipt.Items, item)
	}

	if err = rows.Err(); err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to read receipt items: %w", err)
	}

	return receipt, nil
}
