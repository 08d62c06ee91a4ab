package domain

import "fmt"

// Reserve returns the stock left after taking qty units of product.
func Reserve(product Product, qty int) (int, error) {
	if qty > product.Quantity {
		return 0, &OutOfStockError{
			Msg:         fmt.Sprintf("not enough stock for %s", product.Name),
			ProductName: product.Name,
		}
	}

	return product.Quantity - qty, nil
}

// StockLedger accumulates reservations of one purchase. Repeated lines for
// the same product are reserved against the stock left by earlier lines.
type StockLedger struct {
	remaining map[string]Product
	order     []string
}

func NewStockLedger() *StockLedger {
	return &StockLedger{
		remaining: make(map[string]Product),
	}
}

func (l *StockLedger) Reserve(product Product, qty int) error {
	current, seen := l.remaining[product.ID]
	if !seen {
		current = product
		l.order = append(l.order, product.ID)
	}

	newQuantity, err := Reserve(current, qty)
	if err != nil {
		return err
	}

	current.Quantity = newQuantity
	l.remaining[product.ID] = current

	return nil
}

// Updates lists the final stock of every reserved product in first-seen order.
func (l *StockLedger) Updates() []StockUpdate {
	updates := make([]StockUpdate, 0, len(l.order))
	for _, id := range l.order {
		updates = append(updates, StockUpdate{
			ProductID:   id,
			NewQuantity: l.remaining[id].Quantity,
		})
	}

	return updates
}
