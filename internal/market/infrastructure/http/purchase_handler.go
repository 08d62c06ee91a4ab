package http

import (
	"net/http"
	"time"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	"github.com/Lexv0lk/bargain-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	ReceiptIDKey = "id"

	purchaseSuccessMessage = "Transaction successful! Receipt generated."
)

type lineItemBody struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type purchaseRequestBody struct {
	MerchantID string         `json:"merchantId" binding:"required"`
	Items      []lineItemBody `json:"items" binding:"required,min=1,dive"`
}

type negotiationMessageBody struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type purchaseResponseBody struct {
	Success            bool                     `json:"success"`
	Message            string                   `json:"message"`
	ReceiptID          string                   `json:"receiptId"`
	OriginalTotal      decimal.Decimal          `json:"originalTotal"`
	NegotiatedDiscount decimal.Decimal          `json:"negotiatedDiscount"`
	FinalTotal         decimal.Decimal          `json:"finalTotal"`
	Negotiation        []negotiationMessageBody `json:"negotiation"`
}

type receiptItemBody struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type receiptResponseBody struct {
	ID                 string            `json:"id"`
	BuyerID            string            `json:"buyerId"`
	MerchantID         string            `json:"merchantId"`
	BuyerName          string            `json:"buyerName"`
	MerchantName       string            `json:"merchantName"`
	Items              []receiptItemBody `json:"items"`
	OriginalTotal      decimal.Decimal   `json:"originalTotal"`
	NegotiatedDiscount decimal.Decimal   `json:"negotiatedDiscount"`
	FinalTotal         decimal.Decimal   `json:"finalTotal"`
	Timestamp          time.Time         `json:"timestamp"`
}

type PurchaseHandler struct {
	purchaser      domain.Purchaser
	receiptFetcher domain.ReceiptFetcher
	logger         logging.Logger
}

func NewPurchaseHandler(purchaser domain.Purchaser, receiptFetcher domain.ReceiptFetcher, logger logging.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaser:      purchaser,
		receiptFetcher: receiptFetcher,
		logger:         logger,
	}
}

func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Kind: domain.KindInvalidArgument.String(), Errors: "missing merchant or item data"})
		return
	}

	items := make([]domain.LineItem, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, domain.LineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	req, err := domain.NewPurchaseRequest(body.MerchantID, items)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	result, err := h.purchaser.Execute(c.Request.Context(), userIDFrom(c), req)
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			h.logger.Error("failed to execute purchase", "merchant_id", req.MerchantID, "error", err.Error())
		}

		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, convertToPurchaseResponse(result))
}

func (h *PurchaseHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.receiptFetcher.GetReceipt(c.Request.Context(), userIDFrom(c), c.Param(ReceiptIDKey))
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			h.logger.Error("failed to get receipt", "error", err.Error())
		}

		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, convertToReceiptResponse(receipt))
}

func convertToPurchaseResponse(result domain.PurchaseResult) purchaseResponseBody {
	negotiation := make([]negotiationMessageBody, 0, len(result.Negotiation))
	for _, msg := range result.Negotiation {
		negotiation = append(negotiation, negotiationMessageBody{Sender: msg.Sender, Text: msg.Text})
	}

	return purchaseResponseBody{
		Success:            true,
		Message:            purchaseSuccessMessage,
		ReceiptID:          result.Receipt.ID,
		OriginalTotal:      result.Receipt.OriginalTotal,
		NegotiatedDiscount: result.Receipt.NegotiatedDiscount,
		FinalTotal:         result.Receipt.FinalTotal,
		Negotiation:        negotiation,
	}
}

func convertToReceiptResponse(receipt domain.Receipt) receiptResponseBody {
	items := make([]receiptItemBody, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, receiptItemBody{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return receiptResponseBody{
		ID:                 receipt.ID,
		BuyerID:            receipt.BuyerID,
		MerchantID:         receipt.MerchantID,
		BuyerName:          receipt.BuyerName,
		MerchantName:       receipt.MerchantName,
		Items:              items,
		OriginalTotal:      receipt.OriginalTotal,
		NegotiatedDiscount: receipt.NegotiatedDiscount,
		FinalTotal:         receipt.FinalTotal,
		Timestamp:          receipt.Timestamp,
	}
}
