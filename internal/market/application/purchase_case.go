package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/Lexv0lk/bargain-market/internal/pkg/database"
	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
	"github.com/shopspring/decimal"
)

type PurchaseCase struct {
	usersRepository    domain.UsersRepository
	productsRepository domain.ProductsRepository
	receiptsRepository domain.ReceiptsRepository
	receiptPublisher   domain.ReceiptPublisher
	txManager          database.TxManager
	logger             logging.Logger
}

// NewPurchaseCase wires the coordinator. receiptPublisher may be nil.
func NewPurchaseCase(
	usersRepository domain.UsersRepository,
	productsRepository domain.ProductsRepository,
	receiptsRepository domain.ReceiptsRepository,
	receiptPublisher domain.ReceiptPublisher,
	txManager database.TxManager,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		usersRepository:    usersRepository,
		productsRepository: productsRepository,
		receiptsRepository: receiptsRepository,
		receiptPublisher:   receiptPublisher,
		txManager:          txManager,
		logger:             logger,
	}
}

// Execute buys req.Items from req.MerchantID on behalf of buyerID as a single
// serializable transaction. Nothing is written unless every check passes.
func (pc *PurchaseCase) Execute(ctx context.Context, buyerID string, req domain.PurchaseRequest) (domain.PurchaseResult, error) {
	if buyerID == "" {
		return domain.PurchaseResult{}, &domain.UnauthenticatedError{Msg: "you must be logged in to make a purchase"}
	}

	if err := req.Validate(); err != nil {
		return domain.PurchaseResult{}, err
	}

	if req.MerchantID == buyerID {
		return domain.PurchaseResult{}, &domain.InvalidArgumentsError{Msg: "buyer and merchant must differ"}
	}

	var result domain.PurchaseResult

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		attemptResult, err := pc.purchase(ctx, executor, buyerID, req)
		if err != nil {
			return err
		}

		result = attemptResult
		return nil
	})
	if err != nil {
		if errors.Is(err, database.ErrRetriesExhausted) {
			return domain.PurchaseResult{}, &domain.TransientError{
				Msg: "purchase aborted by concurrent updates, try again",
				Err: err,
			}
		}

		return domain.PurchaseResult{}, err
	}

	pc.publishReceipt(context.WithoutCancel(ctx), result.Receipt)

	return result, nil
}

func (pc *PurchaseCase) purchase(
	ctx context.Context,
	executor database.QueryExecuter,
	buyerID string,
	req domain.PurchaseRequest,
) (domain.PurchaseResult, error) {
	buyer, err := pc.usersRepository.GetUser(ctx, executor, buyerID)
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	merchant, err := pc.usersRepository.GetUser(ctx, executor, req.MerchantID)
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	stock := domain.NewStockLedger()
	products := make(map[string]domain.Product, len(req.Items))
	lines := make([]domain.ReceiptLine, 0, len(req.Items))
	originalTotal := decimal.Zero

	for _, item := range req.Items {
		product, seen := products[item.ProductID]
		if !seen {
			product, err = pc.productsRepository.GetProduct(ctx, executor, item.ProductID)
			if err != nil {
				return domain.PurchaseResult{}, err
			}

			if product.MerchantID != req.MerchantID {
				return domain.PurchaseResult{}, &domain.ProductNotFoundError{
					Msg:       fmt.Sprintf("product %s not found for this merchant", item.ProductID),
					ProductID: item.ProductID,
				}
			}

			products[item.ProductID] = product
		}

		if err := stock.Reserve(product, item.Quantity); err != nil {
			return domain.PurchaseResult{}, err
		}

		originalTotal = originalTotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		lines = append(lines, domain.ReceiptLine{
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
		})
	}

	discount, finalTotal := domain.Price(originalTotal, buyer.NegotiationLimit, merchant.NegotiationLimit)

	newBuyerBalance, err := domain.Debit(buyer.WalletBalance, finalTotal)
	if err != nil {
		return domain.PurchaseResult{}, err
	}
	newMerchantBalance, err := domain.Credit(merchant.WalletBalance, finalTotal)
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	err = pc.usersRepository.UpdateBalances(ctx, executor,
		domain.BalanceUpdate{UserID: buyer.ID, NewBalance: newBuyerBalance},
		domain.BalanceUpdate{UserID: merchant.ID, NewBalance: newMerchantBalance},
	)
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	err = pc.productsRepository.UpdateStock(ctx, executor, stock.Updates()...)
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	receipt, err := pc.receiptsRepository.CreateReceipt(ctx, executor,
		domain.BuildReceipt(buyer, merchant, lines, originalTotal, discount, finalTotal))
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	return domain.PurchaseResult{
		Receipt:     receipt,
		Negotiation: domain.Negotiate(len(lines), originalTotal, merchant.NegotiationLimit, finalTotal),
	}, nil
}

func (pc *PurchaseCase) publishReceipt(ctx context.Context, receipt domain.Receipt) {
	if pc.receiptPublisher == nil {
		return
	}

	if err := pc.receiptPublisher.PublishReceipt(ctx, receipt); err != nil {
		pc.logger.Error("failed to publish receipt event", "receipt_id", receipt.ID, "error", err.Error())
	}
}
