package notify

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"donburi-house/internal/domain"
	"donburi-house/internal/storage"
)

// Sink receives every recorded notification for display or forwarding.
// Delivery is best effort; a failing sink never blocks the mutation that
// raised the event.
type Sink interface {
	Deliver(n *domain.Notification) error
}

// Bus records notifications raised by combo, order and reservation
// mutations. A single instance is shared by injection across all services,
// so one enabled flag governs emission uniformly. When disabled, Send is a
// no-op and nothing is recorded.
type Bus struct {
	enabled bool
	seq     *storage.Sequence
	records []*domain.Notification
	sink    Sink
	now     func() time.Time
}

func NewBus(enabled bool, sink Sink) *Bus {
	return &Bus{
		enabled: enabled,
		seq:     storage.NewSequence("N"),
		sink:    sink,
		now:     time.Now,
	}
}

func (b *Bus) Enable()       { b.enabled = true }
func (b *Bus) Disable()      { b.enabled = false }
func (b *Bus) Enabled() bool { return b.enabled }

func (b *Bus) Send(kind domain.EventKind, title, message string) *domain.Notification {
	if !b.enabled {
		return nil
	}
	n := &domain.Notification{
		ID:        b.seq.Next(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: b.now(),
	}
	b.records = append(b.records, n)
	if b.sink != nil {
		_ = b.sink.Deliver(n)
	}
	return n
}

func (b *Bus) MarkRead(id string) error {
	for _, n := range b.records {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
}

func (b *Bus) UnreadCount() int {
	count := 0
	for _, n := range b.records {
		if !n.Read {
			count++
		}
	}
	return count
}

func (b *Bus) All() []*domain.Notification {
	out := make([]*domain.Notification, len(b.records))
	copy(out, b.records)
	return out
}

func (b *Bus) Unread() []*domain.Notification {
	var out []*domain.Notification
	for _, n := range b.records {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// SendOrderConfirmed announces a freshly created order; orders are
// considered confirmed the instant they are placed.
func (b *Bus) SendOrderConfirmed(orderID string) {
	b.Send(domain.EventOrderConfirmed, "Order Confirmed",
		fmt.Sprintf("Order %s has been confirmed and is being prepared.", orderID))
}

// SendOrderUpdate announces a status change. Only Preparing and Completed
// carry a customer-facing message.
func (b *Bus) SendOrderUpdate(orderID string, status domain.OrderStatus) {
	switch status {
	case domain.StatusPreparing:
		b.Send(domain.EventOrderPreparing, "Order in Kitchen",
			fmt.Sprintf("Order %s is now being prepared.", orderID))
	case domain.StatusCompleted:
		b.Send(domain.EventOrderReady, "Order Ready",
			fmt.Sprintf("Order %s is ready for pickup.", orderID))
	}
}

func (b *Bus) SendNewCombo(name string, discount decimal.Decimal) {
	percent := discount.Mul(decimal.NewFromInt(100)).IntPart()
	b.Send(domain.EventNewCombo, "New Combo Added!",
		fmt.Sprintf("New combo %q with %d%% discount is now available!", name, percent))
}

func (b *Bus) SendPromotion(message string) {
	b.Send(domain.EventPromotion, "Special Promotion!", message)
}
