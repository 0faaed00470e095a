package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Combo bundles catalog items under a discount. The derived price is
// recomputed on every membership change, so a stale price is never
// observable.
type Combo struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Discount decimal.Decimal `json:"discount"`

	items []*Food
	price decimal.Decimal
}

func NewCombo(name string, discount float64) (*Combo, error) {
	if discount < 0 || discount >= 1 {
		return nil, fmt.Errorf("discount %.2f: %w", discount, ErrInvalidDiscount)
	}
	return &Combo{
		Name:     name,
		Discount: decimal.NewFromFloat(discount),
		price:    decimal.Zero,
	}, nil
}

func (c *Combo) AddItem(f *Food) error {
	if f == nil {
		return fmt.Errorf("combo item: %w", ErrInvalidReference)
	}
	c.items = append(c.items, f)
	c.reprice()
	return nil
}

// RemoveItem drops the first occurrence of the given item; duplicates are
// allowed, so remaining copies stay priced in.
func (c *Combo) RemoveItem(foodID string) error {
	for i, f := range c.items {
		if f.ID == foodID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.reprice()
			return nil
		}
	}
	return fmt.Errorf("combo item %s: %w", foodID, ErrNotFound)
}

func (c *Combo) reprice() {
	sum := decimal.Zero
	for _, f := range c.items {
		sum = sum.Add(f.Price)
	}
	c.price = sum.Mul(decimal.NewFromInt(1).Sub(c.Discount)).Round(2)
}

func (c *Combo) Price() decimal.Decimal { return c.price }

func (c *Combo) Items() []*Food {
	out := make([]*Food, len(c.items))
	copy(out, c.items)
	return out
}

// Snapshot captures the combo as an order-owned value: its own item list and
// the price locked at copy time. Later mutation of the live combo does not
// reach orders that already hold the copy.
func (c *Combo) Snapshot() ComboCopy {
	items := make([]*Food, len(c.items))
	copy(items, c.items)
	return ComboCopy{
		ComboID:  c.ID,
		Name:     c.Name,
		Discount: c.Discount,
		Items:    items,
		Price:    c.price,
	}
}

func (c *Combo) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Combo %s: %s (%s%% off)\n", c.ID, c.Name, c.Discount.Mul(decimal.NewFromInt(100)).StringFixed(0))
	original := decimal.Zero
	for _, f := range c.items {
		fmt.Fprintf(&b, "  - %s\n", f.Describe())
		original = original.Add(f.Price)
	}
	fmt.Fprintf(&b, "Original Total: $%s\n", original.StringFixed(2))
	fmt.Fprintf(&b, "Discounted Price: $%s", c.price.StringFixed(2))
	return b.String()
}

// ComboCopy is the immutable form of a combo stored inside an order.
type ComboCopy struct {
	ComboID  string          `json:"combo_id"`
	Name     string          `json:"name"`
	Discount decimal.Decimal `json:"discount"`
	Items    []*Food         `json:"items"`
	Price    decimal.Decimal `json:"price"`
}
