package domain

import "github.com/shopspring/decimal"

func Debit(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.GreaterThan(balance) {
		return decimal.Decimal{}, &InsufficientBalanceError{Msg: "insufficient funds"}
	}

	return balance.Sub(amount), nil
}

// Credit adds amount that was already debited elsewhere. A negative amount,
// possible when the combined negotiation rate exceeds 1, must not take the
// balance below zero.
func Credit(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	newBalance := balance.Add(amount)
	if newBalance.IsNegative() {
		return decimal.Decimal{}, &InsufficientBalanceError{Msg: "merchant balance cannot cover the negotiated total"}
	}

	return newBalance, nil
}

type BalanceUpdate struct {
	UserID     string
	NewBalance decimal.Decimal
}
