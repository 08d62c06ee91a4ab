package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceiptLine struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

type Receipt struct {
	ID                 string
	BuyerID            string
	MerchantID         string
	BuyerName          string
	MerchantName       string
	Items              []ReceiptLine
	OriginalTotal      decimal.Decimal
	NegotiatedDiscount decimal.Decimal
	FinalTotal         decimal.Decimal
	Timestamp          time.Time
}

// BuildReceipt assembles an unsaved receipt. ID and Timestamp are assigned
// when the receipt is stored.
func BuildReceipt(buyer, merchant User, lines []ReceiptLine, originalTotal, discount, finalTotal decimal.Decimal) Receipt {
	items := make([]ReceiptLine, len(lines))
	copy(items, lines)

	return Receipt{
		BuyerID:            buyer.ID,
		MerchantID:         merchant.ID,
		BuyerName:          buyer.Name,
		MerchantName:       merchant.Name,
		Items:              items,
		OriginalTotal:      originalTotal,
		NegotiatedDiscount: discount,
		FinalTotal:         finalTotal,
	}
}

func (r Receipt) VisibleTo(userID string) bool {
	return userID != "" && (r.BuyerID == userID || r.MerchantID == userID)
}
