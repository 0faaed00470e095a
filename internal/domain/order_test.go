package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donburi-house/internal/domain"
)

func TestOrder_TotalRecomputedOnEveryAdd(t *testing.T) {
	o := domain.NewOrder(nil)
	assert.True(t, o.Total().IsZero())

	require.NoError(t, o.AddFood(food("F001", "Chicken Katsu Don", "10.00")))
	assert.True(t, o.Total().Equal(decimal.RequireFromString("10.00")))

	c, err := domain.NewCombo("Lunch Combo", 0.10)
	require.NoError(t, err)
	c.ID = "C001"
	require.NoError(t, c.AddItem(food("F002", "Tonkotsu Ramen", "12.50")))

	require.NoError(t, o.AddCombo(c.Snapshot()))
	assert.True(t, o.Total().Equal(decimal.RequireFromString("21.25")), "got %s", o.Total())
	assert.Len(t, o.Foods(), 1)
	assert.Len(t, o.Combos(), 1)
}

func TestOrder_AddInvalidReferences(t *testing.T) {
	o := domain.NewOrder(nil)
	assert.ErrorIs(t, o.AddFood(nil), domain.ErrInvalidReference)
	assert.ErrorIs(t, o.AddCombo(domain.ComboCopy{}), domain.ErrInvalidReference)
}

func TestOrder_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []domain.OrderStatus
		next    domain.OrderStatus
		wantErr bool
	}{
		{name: "pending to preparing", path: nil, next: domain.StatusPreparing},
		{name: "pending to cancelled", path: nil, next: domain.StatusCancelled},
		{name: "pending to completed", path: nil, next: domain.StatusCompleted, wantErr: true},
		{name: "pending to pending", path: nil, next: domain.StatusPending, wantErr: true},
		{name: "preparing to completed", path: []domain.OrderStatus{domain.StatusPreparing}, next: domain.StatusCompleted},
		{name: "preparing to cancelled", path: []domain.OrderStatus{domain.StatusPreparing}, next: domain.StatusCancelled},
		{name: "preparing to pending", path: []domain.OrderStatus{domain.StatusPreparing}, next: domain.StatusPending, wantErr: true},
		{
			name:    "completed is terminal",
			path:    []domain.OrderStatus{domain.StatusPreparing, domain.StatusCompleted},
			next:    domain.StatusCancelled,
			wantErr: true,
		},
		{
			name:    "cancelled is terminal",
			path:    []domain.OrderStatus{domain.StatusCancelled},
			next:    domain.StatusPreparing,
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			o := domain.NewOrder(nil)
			for _, s := range testCase.path {
				require.NoError(t, o.Transition(s))
			}

			err := o.Transition(testCase.next)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.next, o.Status())
			}
		})
	}
}

func TestOrder_CreatedPending(t *testing.T) {
	o := domain.NewOrder(nil)
	assert.Equal(t, domain.StatusPending, o.Status())
	assert.Nil(t, o.Payment())
}

func TestOrder_SetPayment(t *testing.T) {
	o := domain.NewOrder(nil)
	p := domain.NewCashPayment(decimal.RequireFromString("10.00"), "USD")
	o.SetPayment(p)
	require.NotNil(t, o.Payment())
	assert.Equal(t, domain.MethodCash, o.Payment().Method())
}
