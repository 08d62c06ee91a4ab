package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits kept for monetary amounts.
const MoneyScale = 4

var two = decimal.NewFromInt(2)

// DiscountRate is the simple average of both negotiation limits. It is not
// clamped, so limits summing above 2 yield a negative final total.
func DiscountRate(buyerLimit, merchantLimit decimal.Decimal) decimal.Decimal {
	return buyerLimit.Add(merchantLimit).Div(two)
}

// Price returns the negotiated discount and the final total for subtotal.
// subtotal must not be negative. The discount is rounded to MoneyScale so that
// the final total can be stored without further rounding.
func Price(subtotal, buyerLimit, merchantLimit decimal.Decimal) (discount, finalTotal decimal.Decimal) {
	discount = subtotal.Mul(DiscountRate(buyerLimit, merchantLimit)).Round(MoneyScale)
	finalTotal = subtotal.Sub(discount)

	return discount, finalTotal
}
