package notify_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donburi-house/internal/domain"
	"donburi-house/internal/notify"
)

type recordingSink struct {
	delivered []*domain.Notification
}

func (s *recordingSink) Deliver(n *domain.Notification) error {
	s.delivered = append(s.delivered, n)
	return nil
}

func TestBus_SendAssignsSequentialIDs(t *testing.T) {
	bus := notify.NewBus(true, nil)

	first := bus.Send(domain.EventPromotion, "Special Promotion!", "free drinks")
	second := bus.Send(domain.EventNewCombo, "New Combo Added!", "lunch combo")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, "N001", first.ID)
	assert.Equal(t, "N002", second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestBus_DisabledSuppressesEverything(t *testing.T) {
	sink := &recordingSink{}
	bus := notify.NewBus(false, sink)

	before := bus.UnreadCount()
	n := bus.Send(domain.EventPromotion, "Special Promotion!", "free drinks")

	assert.Nil(t, n)
	assert.Equal(t, before, bus.UnreadCount())
	assert.Empty(t, bus.All())
	assert.Empty(t, sink.delivered)
}

func TestBus_ToggleGovernsEmission(t *testing.T) {
	bus := notify.NewBus(true, nil)
	bus.Send(domain.EventPromotion, "one", "m")

	bus.Disable()
	bus.Send(domain.EventPromotion, "two", "m")
	assert.Len(t, bus.All(), 1)

	bus.Enable()
	bus.Send(domain.EventPromotion, "three", "m")
	assert.Len(t, bus.All(), 2)
}

func TestBus_ReadTracking(t *testing.T) {
	bus := notify.NewBus(true, nil)
	first := bus.Send(domain.EventPromotion, "one", "m")
	bus.Send(domain.EventPromotion, "two", "m")

	assert.Equal(t, 2, bus.UnreadCount())

	require.NoError(t, bus.MarkRead(first.ID))
	assert.Equal(t, 1, bus.UnreadCount())

	unread := bus.Unread()
	require.Len(t, unread, 1)
	assert.Equal(t, "two", unread[0].Title)

	assert.ErrorIs(t, bus.MarkRead("N999"), domain.ErrNotFound)
}

func TestBus_RecordsInMutationOrder(t *testing.T) {
	bus := notify.NewBus(true, nil)
	bus.SendOrderConfirmed("O001")
	bus.SendOrderUpdate("O001", domain.StatusPreparing)
	bus.SendOrderUpdate("O001", domain.StatusCompleted)

	all := bus.All()
	require.Len(t, all, 3)
	assert.Equal(t, domain.EventOrderConfirmed, all[0].Kind)
	assert.Equal(t, domain.EventOrderPreparing, all[1].Kind)
	assert.Equal(t, domain.EventOrderReady, all[2].Kind)
}

func TestBus_OrderUpdateIgnoresSilentStatuses(t *testing.T) {
	bus := notify.NewBus(true, nil)
	bus.SendOrderUpdate("O001", domain.StatusPending)
	bus.SendOrderUpdate("O001", domain.StatusCancelled)
	assert.Empty(t, bus.All())
}

func TestBus_NewComboMessage(t *testing.T) {
	bus := notify.NewBus(true, nil)
	bus.SendNewCombo("Lunch Combo", decimal.RequireFromString("0.1"))

	all := bus.All()
	require.Len(t, all, 1)
	assert.Equal(t, domain.EventNewCombo, all[0].Kind)
	assert.Contains(t, all[0].Message, "Lunch Combo")
	assert.Contains(t, all[0].Message, "10% discount")
}

func TestBus_DeliversToSink(t *testing.T) {
	sink := &recordingSink{}
	bus := notify.NewBus(true, sink)

	bus.SendPromotion("free drinks")

	require.Len(t, sink.delivered, 1)
	assert.Equal(t, domain.EventPromotion, sink.delivered[0].Kind)
}
