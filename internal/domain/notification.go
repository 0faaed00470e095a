package domain

import (
	"fmt"
	"time"
)

type EventKind string

const (
	EventOrderConfirmed       EventKind = "ORDER_CONFIRMED"
	EventOrderPreparing       EventKind = "ORDER_PREPARING"
	EventOrderReady           EventKind = "ORDER_READY"
	EventPromotion            EventKind = "PROMOTION"
	EventNewCombo             EventKind = "NEW_COMBO"
	EventReservationRequested EventKind = "RESERVATION_REQUESTED"
	EventReservationConfirmed EventKind = "RESERVATION_CONFIRMED"
	EventReservationCancelled EventKind = "RESERVATION_CANCELLED"
	EventReservationCompleted EventKind = "RESERVATION_COMPLETED"
)

// Notification is an append-only feed record. Only the read flag mutates
// after construction.
type Notification struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) Describe() string {
	status := "Unread"
	if n.Read {
		status = "Read"
	}
	return fmt.Sprintf("[%s] %s\n  %s\n  ID: %s | Status: %s",
		n.CreatedAt.Format("2006-01-02 15:04:05"), n.Title, n.Message, n.ID, status)
}
