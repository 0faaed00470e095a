package service

import (
	"errors"
	"fmt"

	"donburi-house/internal/domain"
)

type ReservationService struct {
	repo     ReservationRepository
	notifier Notifier

	// NotifyCompleted emits a notification when a reservation transitions
	// to Completed. Off by default: the source system never announced
	// completion, and the flag exists to test parity both ways.
	NotifyCompleted bool
}

func NewReservationService(repo ReservationRepository, notifier Notifier) *ReservationService {
	return &ReservationService{repo: repo, notifier: notifier}
}

func (s *ReservationService) Create(customer *domain.Account, date, timeSlot string, partySize int) (*domain.Reservation, error) {
	if partySize <= 0 {
		return nil, errors.New("party size must be positive")
	}
	r := domain.NewReservation(customer, date, timeSlot, partySize)
	if _, err := s.repo.Add(r); err != nil {
		return nil, err
	}
	s.notifier.Send(domain.EventReservationRequested, "Reservation Requested",
		fmt.Sprintf("Reservation %s for %d people on %s at %s is pending confirmation.",
			r.ID, r.PartySize, r.Date, r.Time))
	return r, nil
}

// SetStatus applies any status change; the reservation graph is
// intentionally permissive, unlike the order machine.
func (s *ReservationService) SetStatus(id string, status domain.ReservationStatus) error {
	r, err := s.repo.Find(id)
	if err != nil {
		return err
	}
	r.SetStatus(status)

	switch status {
	case domain.ReservationConfirmed:
		s.notifier.Send(domain.EventReservationConfirmed, "Reservation Confirmed",
			fmt.Sprintf("Reservation %s has been confirmed.", r.ID))
	case domain.ReservationCancelled:
		s.notifier.Send(domain.EventReservationCancelled, "Reservation Cancelled",
			fmt.Sprintf("Reservation %s has been cancelled.", r.ID))
	case domain.ReservationCompleted:
		if s.NotifyCompleted {
			s.notifier.Send(domain.EventReservationCompleted, "Reservation Completed",
				fmt.Sprintf("Reservation %s has been completed.", r.ID))
		}
	}
	return nil
}

func (s *ReservationService) Get(id string) (*domain.Reservation, error) {
	return s.repo.Find(id)
}

func (s *ReservationService) List() []*domain.Reservation {
	return s.repo.ListAll()
}

func (s *ReservationService) ListByCustomer(accountID string) []*domain.Reservation {
	return s.repo.ListByCustomer(accountID)
}
