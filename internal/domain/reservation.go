package domain

import "fmt"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCancelled ReservationStatus = "Cancelled"
	ReservationCompleted ReservationStatus = "Completed"
)

// Reservation is a table booking with a deliberately open status graph: any
// status may follow any other, unlike the order state machine.
type Reservation struct {
	ID        string   `json:"id"`
	Customer  *Account `json:"customer,omitempty"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	PartySize int      `json:"party_size"`

	status ReservationStatus
}

func NewReservation(customer *Account, date, timeSlot string, partySize int) *Reservation {
	return &Reservation{
		Customer:  customer,
		Date:      date,
		Time:      timeSlot,
		PartySize: partySize,
		status:    ReservationPending,
	}
}

func (r *Reservation) SetStatus(s ReservationStatus) { r.status = s }

func (r *Reservation) Status() ReservationStatus { return r.status }

func (r *Reservation) Describe() string {
	customer := "-"
	if r.Customer != nil {
		customer = fmt.Sprintf("%s (%s)", r.Customer.Username, r.Customer.ID)
	}
	return fmt.Sprintf("Reservation %s [%s] customer %s, %s at %s, party of %d",
		r.ID, r.status, customer, r.Date, r.Time, r.PartySize)
}
