package postgres

import "github.com/shopspring/decimal"

// decimalArg matches a decimal argument by value regardless of its exponent.
type decimalArg string

func (a decimalArg) Match(v interface{}) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(decimal.RequireFromString(string(a)))
}
