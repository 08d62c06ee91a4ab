package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lexv0lk/bargain-market/internal/market/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const (
	ReceiptCreatedRoutingKey = "receipt.created"

	publishTimeout = 2 * time.Second
)

type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type receiptItemEvent struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type receiptCreatedEvent struct {
	ReceiptID          string             `json:"receiptId"`
	BuyerID            string             `json:"buyerId"`
	MerchantID         string             `json:"merchantId"`
	Items              []receiptItemEvent `json:"items"`
	OriginalTotal      decimal.Decimal    `json:"originalTotal"`
	NegotiatedDiscount decimal.Decimal    `json:"negotiatedDiscount"`
	FinalTotal         decimal.Decimal    `json:"finalTotal"`
	Timestamp          time.Time          `json:"timestamp"`
}

type ReceiptPublisher struct {
	channel  Channel
	exchange string
}

func NewReceiptPublisher(channel Channel, exchange string) *ReceiptPublisher {
	return &ReceiptPublisher{
		channel:  channel,
		exchange: exchange,
	}
}

func (p *ReceiptPublisher) PublishReceipt(ctx context.Context, receipt domain.Receipt) error {
	event := receiptCreatedEvent{
		ReceiptID:          receipt.ID,
		BuyerID:            receipt.BuyerID,
		MerchantID:         receipt.MerchantID,
		Items:              make([]receiptItemEvent, 0, len(receipt.Items)),
		OriginalTotal:      receipt.OriginalTotal,
		NegotiatedDiscount: receipt.NegotiatedDiscount,
		FinalTotal:         receipt.FinalTotal,
		Timestamp:          receipt.Timestamp,
	}

	for _, item := range receipt.Items {
		event.Items = append(event.Items, receiptItemEvent{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt event: %w", err)
	}

	limitCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(limitCtx,
		p.exchange,
		ReceiptCreatedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    receipt.ID,
			Timestamp:    receipt.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish receipt event: %w", err)
	}

	return nil
}
