package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/Lexv0lk/bargain-market/internal/pkg/database"
)

type ReceiptCase struct {
	receiptsRepository domain.ReceiptsRepository
	querier            database.Querier
}

func NewReceiptCase(receiptsRepository domain.ReceiptsRepository, querier database.Querier) *ReceiptCase {
	return &ReceiptCase{
		receiptsRepository: receiptsRepository,
		querier:            querier,
	}
}

// GetReceipt returns the receipt only to its buyer or merchant. Anyone else
// gets the same error as for a missing receipt.
func (rc *ReceiptCase) GetReceipt(ctx context.Context, userID, receiptID string) (domain.Receipt, error) {
	if userID == "" {
		return domain.Receipt{}, &domain.UnauthenticatedError{Msg: "you must be logged in to view receipts"}
	}

	if receiptID == "" {
		return domain.Receipt{}, &domain.InvalidArgumentsError{Msg: "missing receipt id"}
	}

	receipt, err := rc.receiptsRepository.GetReceipt(ctx, rc.querier, receiptID)
	if err != nil {
		return domain.Receipt{}, err
	}

	if !receipt.VisibleTo(userID) {
		return domain.Receipt{}, &domain.ReceiptNotFoundError{Msg: fmt.Sprintf("receipt %s not found", receiptID)}
	}

	return receipt, nil
}
