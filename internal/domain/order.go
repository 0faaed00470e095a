package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// Forward-only transition table. Completed and Cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusCompleted, StatusCancelled},
}

// Order aggregates catalog item references and combo value copies. The total
// is recomputed on every add, and the status only moves forward through the
// transition table above.
type Order struct {
	ID       string   `json:"id"`
	Customer *Account `json:"customer,omitempty"`

	// PickupQR holds the QR image issued when the order completes.
	PickupQR []byte `json:"-"`

	foods   []*Food
	combos  []ComboCopy
	total   decimal.Decimal
	status  OrderStatus
	payment Payment
}

func NewOrder(customer *Account) *Order {
	return &Order{
		Customer: customer,
		total:    decimal.Zero,
		status:   StatusPending,
	}
}

func (o *Order) AddFood(f *Food) error {
	if f == nil {
		return fmt.Errorf("order item: %w", ErrInvalidReference)
	}
	o.foods = append(o.foods, f)
	o.recalc()
	return nil
}

func (o *Order) AddCombo(c ComboCopy) error {
	if c.ComboID == "" {
		return fmt.Errorf("order combo: %w", ErrInvalidReference)
	}
	o.combos = append(o.combos, c)
	o.recalc()
	return nil
}

// Transition moves the order to the next status or rejects the change.
// Re-setting the current status is rejected too, so entry side effects can
// never fire twice.
func (o *Order) Transition(next OrderStatus) error {
	for _, allowed := range orderTransitions[o.status] {
		if next == allowed {
			o.status = next
			return nil
		}
	}
	return fmt.Errorf("order %s: %s -> %s: %w", o.ID, o.status, next, ErrInvalidTransition)
}

func (o *Order) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[o.status] {
		if next == allowed {
			return true
		}
	}
	return false
}

func (o *Order) SetPayment(p Payment) { o.payment = p }
func (o *Order) Payment() Payment     { return o.payment }

func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Status() OrderStatus    { return o.status }

func (o *Order) Foods() []*Food {
	out := make([]*Food, len(o.foods))
	copy(out, o.foods)
	return out
}

func (o *Order) Combos() []ComboCopy {
	out := make([]ComboCopy, len(o.combos))
	copy(out, o.combos)
	return out
}

func (o *Order) recalc() {
	sum := decimal.Zero
	for _, f := range o.foods {
		sum = sum.Add(f.Price)
	}
	for _, c := range o.combos {
		sum = sum.Add(c.Price)
	}
	o.total = sum.Round(2)
}

func (o *Order) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s [%s]\n", o.ID, o.status)
	if o.Customer != nil {
		fmt.Fprintf(&b, "Customer: %s (%s)\n", o.Customer.Username, o.Customer.ID)
	}
	for _, f := range o.foods {
		fmt.Fprintf(&b, "  - %s\n", f.Describe())
	}
	for _, c := range o.combos {
		fmt.Fprintf(&b, "  - Combo %s: %s ($%s)\n", c.ComboID, c.Name, c.Price.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s\n", o.total.StringFixed(2))
	if o.payment != nil {
		fmt.Fprintf(&b, "%s", o.payment.Describe())
	} else {
		fmt.Fprintf(&b, "Payment: not set")
	}
	return b.String()
}
