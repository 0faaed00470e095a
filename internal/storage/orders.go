package storage

import (
	"fmt"

	"donburi-house/internal/domain"
)

// OrderBook keeps every order placed during the run. Orders are never
// deleted; cancellation is the only logical removal, so there is no Remove.
type OrderBook struct {
	seq    *Sequence
	orders map[string]*domain.Order
	ids    []string
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		seq:    NewSequence("O"),
		orders: make(map[string]*domain.Order),
	}
}

func (b *OrderBook) Add(o *domain.Order) (string, error) {
	if o == nil {
		return "", fmt.Errorf("order add: %w", domain.ErrInvalidReference)
	}
	o.ID = b.seq.Next()
	b.orders[o.ID] = o
	b.ids = append(b.ids, o.ID)
	return o.ID, nil
}

func (b *OrderBook) Find(id string) (*domain.Order, error) {
	o, ok := b.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return o, nil
}

func (b *OrderBook) ListAll() []*domain.Order {
	out := make([]*domain.Order, 0, len(b.ids))
	for _, id := range b.ids {
		out = append(out, b.orders[id])
	}
	return out
}
