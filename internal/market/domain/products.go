package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID         string
	MerchantID string
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

type StockUpdate struct {
	ProductID   string
	NewQuantity int
}
