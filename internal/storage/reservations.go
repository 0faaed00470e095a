package storage

import (
	"fmt"

	"donburi-house/internal/domain"
)

// ReservationBook keeps table bookings keyed by R-prefixed IDs.
type ReservationBook struct {
	seq          *Sequence
	reservations map[string]*domain.Reservation
	ids          []string
}

func NewReservationBook() *ReservationBook {
	return &ReservationBook{
		seq:          NewSequence("R"),
		reservations: make(map[string]*domain.Reservation),
	}
}

func (b *ReservationBook) Add(r *domain.Reservation) (string, error) {
	if r == nil {
		return "", fmt.Errorf("reservation add: %w", domain.ErrInvalidReference)
	}
	r.ID = b.seq.Next()
	b.reservations[r.ID] = r
	b.ids = append(b.ids, r.ID)
	return r.ID, nil
}

func (b *ReservationBook) Find(id string) (*domain.Reservation, error) {
	r, ok := b.reservations[id]
	if !ok {
		return nil, fmt.Errorf("reservation %s: %w", id, domain.ErrNotFound)
	}
	return r, nil
}

func (b *ReservationBook) ListAll() []*domain.Reservation {
	out := make([]*domain.Reservation, 0, len(b.ids))
	for _, id := range b.ids {
		out = append(out, b.reservations[id])
	}
	return out
}

func (b *ReservationBook) ListByCustomer(accountID string) []*domain.Reservation {
	var out []*domain.Reservation
	for _, id := range b.ids {
		r := b.reservations[id]
		if r.Customer != nil && r.Customer.ID == accountID {
			out = append(out, r)
		}
	}
	return out
}
