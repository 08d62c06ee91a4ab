package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	BuyerAgent    = "Buying Agent"
	MerchantAgent = "Merchant Agent"
)

type NegotiationMessage struct {
	Sender string
	Text   string
}

// Negotiate replays the bargaining exchange that leads to finalTotal. The
// merchant opens at half of its own limit and settles on the averaged rate.
func Negotiate(itemsCount int, originalTotal, merchantLimit, finalTotal decimal.Decimal) []NegotiationMessage {
	merchantOffer := originalTotal.Sub(originalTotal.Mul(merchantLimit).Div(two)).Round(MoneyScale)

	return []NegotiationMessage{
		{Sender: BuyerAgent, Text: fmt.Sprintf("Requesting to buy %d item(s) for a total of $%s.", itemsCount, originalTotal.StringFixed(2))},
		{Sender: MerchantAgent, Text: "Request received. All items are in stock. Let me see what I can do on the price."},
		{Sender: MerchantAgent, Text: fmt.Sprintf("How about $%s?", merchantOffer.StringFixed(2))},
		{Sender: BuyerAgent, Text: fmt.Sprintf("That's a good start. Can you do $%s?", finalTotal.StringFixed(2))},
		{Sender: MerchantAgent, Text: fmt.Sprintf("You drive a hard bargain! Okay, $%s it is. Deal.", finalTotal.StringFixed(2))},
		{Sender: BuyerAgent, Text: "Excellent. Sending payment now."},
		{Sender: MerchantAgent, Text: "Payment received. Thank you for your business!"},
	}
}
