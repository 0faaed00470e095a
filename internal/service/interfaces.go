package service

import (
	"github.com/shopspring/decimal"

	"donburi-house/internal/domain"
)

type CatalogRepository interface {
	Add(f *domain.Food) (string, error)
	Remove(id string) error
	Find(id string) (*domain.Food, error)
	ListAll() []*domain.Food
}

type ComboRepository interface {
	Add(c *domain.Combo) (string, error)
	Remove(id string) error
	Find(id string) (*domain.Combo, error)
	ListAll() []*domain.Combo
}

type OrderRepository interface {
	Add(o *domain.Order) (string, error)
	Find(id string) (*domain.Order, error)
	ListAll() []*domain.Order
}

type ReservationRepository interface {
	Add(r *domain.Reservation) (string, error)
	Find(id string) (*domain.Reservation, error)
	ListAll() []*domain.Reservation
	ListByCustomer(accountID string) []*domain.Reservation
}

type Ledger interface {
	Record(p domain.Payment)
	All() []domain.Payment
	Count() int
	RecordRefund(orderID string, amount decimal.Decimal)
	Refunds() []domain.Refund
}

type AccountRepository interface {
	Add(a *domain.Account) (string, error)
	FindByUsername(username string) (*domain.Account, error)
	List() []*domain.Account
}

// Notifier is the emission seam the notification bus implements.
type Notifier interface {
	Send(kind domain.EventKind, title, message string) *domain.Notification
	SendOrderConfirmed(orderID string)
	SendOrderUpdate(orderID string, status domain.OrderStatus)
	SendNewCombo(name string, discount decimal.Decimal)
	SendPromotion(message string)
}
