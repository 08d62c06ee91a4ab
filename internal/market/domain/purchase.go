package domain

import (
	"fmt"
	"strings"
)

type LineItem struct {
	ProductID string
	Quantity  int
}

type PurchaseRequest struct {
	MerchantID string
	Items      []LineItem
}

type PurchaseResult struct {
	Receipt     Receipt
	Negotiation []NegotiationMessage
}

// NewPurchaseRequest builds a request from boundary input and rejects it
// before any state is read.
func NewPurchaseRequest(merchantID string, items []LineItem) (PurchaseRequest, error) {
	req := PurchaseRequest{
		MerchantID: strings.TrimSpace(merchantID),
		Items:      make([]LineItem, 0, len(items)),
	}

	for _, item := range items {
		req.Items = append(req.Items, LineItem{
			ProductID: strings.TrimSpace(item.ProductID),
			Quantity:  item.Quantity,
		})
	}

	if err := req.Validate(); err != nil {
		return PurchaseRequest{}, err
	}

	return req, nil
}

func (r PurchaseRequest) Validate() error {
	if r.MerchantID == "" || len(r.Items) == 0 {
		return &InvalidArgumentsError{Msg: "missing merchant or item data"}
	}

	for i, item := range r.Items {
		if item.ProductID == "" {
			return &InvalidArgumentsError{Msg: fmt.Sprintf("item %d: missing product id", i)}
		}

		if item.Quantity < 1 {
			return &InvalidArgumentsError{Msg: fmt.Sprintf("item %d: quantity must be at least 1", i)}
		}
	}

	return nil
}
