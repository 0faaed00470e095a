package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donburi-house/internal/domain"
	"donburi-house/internal/notify"
	"donburi-house/internal/service"
	"donburi-house/internal/storage"
)

func newReservationFixture(t *testing.T) (*service.ReservationService, *notify.Bus) {
	t.Helper()
	bus := notify.NewBus(true, nil)
	return service.NewReservationService(storage.NewReservationBook(), bus), bus
}

func TestReservationService_CreateEmitsRequested(t *testing.T) {
	svc, bus := newReservationFixture(t)

	r, err := svc.Create(nil, "2026-09-02", "19:00", 4)
	require.NoError(t, err)
	assert.Equal(t, "R001", r.ID)
	assert.Equal(t, domain.ReservationPending, r.Status())

	all := bus.All()
	require.Len(t, all, 1)
	assert.Equal(t, domain.EventReservationRequested, all[0].Kind)
	assert.Contains(t, all[0].Message, "R001")
}

func TestReservationService_CreateRejectsBadPartySize(t *testing.T) {
	svc, _ := newReservationFixture(t)
	_, err := svc.Create(nil, "2026-09-02", "19:00", 0)
	assert.Error(t, err)
}

func TestReservationService_StatusEmissions(t *testing.T) {
	tests := []struct {
		name            string
		status          domain.ReservationStatus
		notifyCompleted bool
		wantKind        domain.EventKind
		wantEmission    bool
	}{
		{name: "confirmed", status: domain.ReservationConfirmed, wantKind: domain.EventReservationConfirmed, wantEmission: true},
		{name: "cancelled", status: domain.ReservationCancelled, wantKind: domain.EventReservationCancelled, wantEmission: true},
		{name: "completed stays silent", status: domain.ReservationCompleted, wantEmission: false},
		{name: "completed with parity flag", status: domain.ReservationCompleted, notifyCompleted: true, wantKind: domain.EventReservationCompleted, wantEmission: true},
		{name: "back to pending", status: domain.ReservationPending, wantEmission: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, bus := newReservationFixture(t)
			svc.NotifyCompleted = testCase.notifyCompleted

			r, err := svc.Create(nil, "2026-09-02", "19:00", 2)
			require.NoError(t, err)
			baseline := len(bus.All())

			require.NoError(t, svc.SetStatus(r.ID, testCase.status))
			assert.Equal(t, testCase.status, r.Status())

			all := bus.All()
			if testCase.wantEmission {
				require.Len(t, all, baseline+1)
				assert.Equal(t, testCase.wantKind, all[baseline].Kind)
			} else {
				assert.Len(t, all, baseline)
			}
		})
	}
}

// The reservation graph is open: any status may follow any other.
func TestReservationService_PermissiveTransitions(t *testing.T) {
	svc, _ := newReservationFixture(t)
	r, err := svc.Create(nil, "2026-09-02", "19:00", 2)
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(r.ID, domain.ReservationCancelled))
	require.NoError(t, svc.SetStatus(r.ID, domain.ReservationConfirmed))
	require.NoError(t, svc.SetStatus(r.ID, domain.ReservationCompleted))
	require.NoError(t, svc.SetStatus(r.ID, domain.ReservationPending))
	assert.Equal(t, domain.ReservationPending, r.Status())
}

func TestReservationService_UnknownID(t *testing.T) {
	svc, _ := newReservationFixture(t)
	assert.ErrorIs(t, svc.SetStatus("R999", domain.ReservationConfirmed), domain.ErrNotFound)
}

func TestReservationService_ListByCustomer(t *testing.T) {
	svc, _ := newReservationFixture(t)
	alice := &domain.Account{ID: "G001", Username: "Alice", Role: domain.RoleGuest}
	bob := &domain.Account{ID: "G002", Username: "Bob", Role: domain.RoleGuest}

	_, err := svc.Create(alice, "2026-09-02", "19:00", 2)
	require.NoError(t, err)
	_, err = svc.Create(bob, "2026-09-03", "18:00", 4)
	require.NoError(t, err)
	_, err = svc.Create(alice, "2026-09-04", "20:00", 6)
	require.NoError(t, err)

	mine := svc.ListByCustomer("G001")
	require.Len(t, mine, 2)
	assert.Equal(t, "R001", mine[0].ID)
	assert.Equal(t, "R003", mine[1].ID)
}
