package domain

import "github.com/shopspring/decimal"

type User struct {
	ID               string
	Name             string
	WalletBalance    decimal.Decimal
	NegotiationLimit decimal.Decimal
}
