package service

import (
	"fmt"
	"log/slog"

	"donburi-house/internal/domain"
)

type OrderService struct {
	repo      OrderRepository
	catalog   CatalogRepository
	combos    ComboRepository
	ledger    Ledger
	notifier  Notifier
	qrEncoder QRGenerator
	log       *slog.Logger
}

func NewOrderService(repo OrderRepository, catalog CatalogRepository, combos ComboRepository,
	ledger Ledger, notifier Notifier, qr QRGenerator, log *slog.Logger) *OrderService {
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{
		repo:      repo,
		catalog:   catalog,
		combos:    combos,
		ledger:    ledger,
		notifier:  notifier,
		qrEncoder: qr,
		log:       log,
	}
}

// Create places a new pending order. The confirmation notification fires at
// creation: an order is considered confirmed the instant it exists.
func (s *OrderService) Create(customer *domain.Account) (*domain.Order, error) {
	o := domain.NewOrder(customer)
	if _, err := s.repo.Add(o); err != nil {
		return nil, err
	}
	s.notifier.SendOrderConfirmed(o.ID)
	s.log.Info("order created", "order_id", o.ID)
	return o, nil
}

func (s *OrderService) AddFood(orderID, foodID string) error {
	o, err := s.repo.Find(orderID)
	if err != nil {
		return err
	}
	f, err := s.catalog.Find(foodID)
	if err != nil {
		return fmt.Errorf("food %s: %w", foodID, domain.ErrInvalidReference)
	}
	return o.AddFood(f)
}

// AddCombo stores a value copy of the live combo, locking its current price
// into the order.
func (s *OrderService) AddCombo(orderID, comboID string) error {
	o, err := s.repo.Find(orderID)
	if err != nil {
		return err
	}
	c, err := s.combos.Find(comboID)
	if err != nil {
		return fmt.Errorf("combo %s: %w", comboID, domain.ErrInvalidReference)
	}
	return o.AddCombo(c.Snapshot())
}

func (s *OrderService) SetStatus(orderID string, status domain.OrderStatus) error {
	o, err := s.repo.Find(orderID)
	if err != nil {
		return err
	}
	if err := o.Transition(status); err != nil {
		return err
	}

	switch status {
	case domain.StatusPreparing:
		s.notifier.SendOrderUpdate(o.ID, status)
	case domain.StatusCompleted:
		s.notifier.SendOrderUpdate(o.ID, status)
		if s.qrEncoder != nil {
			if png, err := s.qrEncoder.Generate(o.ID); err == nil {
				o.PickupQR = png
			}
		}
	case domain.StatusCancelled:
		if p := o.Payment(); p != nil {
			s.ledger.RecordRefund(o.ID, p.Amount())
			s.log.Info("refund issued", "order_id", o.ID, "amount", p.Amount().StringFixed(2))
		}
	}
	s.log.Info("order status changed", "order_id", o.ID, "status", string(status))
	return nil
}

// Pay runs the collaborator-level sufficiency check, attaches the payment
// and records it in the ledger. Only cash can be short: card and wallet
// payments are taken at the order total.
func (s *OrderService) Pay(orderID string, p domain.Payment) error {
	o, err := s.repo.Find(orderID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("payment: %w", domain.ErrInvalidReference)
	}
	if p.Method() == domain.MethodCash && p.Amount().LessThan(o.Total()) {
		return fmt.Errorf("cash %s below order total %s: %w",
			p.Amount().StringFixed(2), o.Total().StringFixed(2), domain.ErrInsufficientFunds)
	}
	o.SetPayment(p)
	s.ledger.Record(p)
	s.log.Info("payment recorded", "order_id", o.ID, "method", string(p.Method()), "amount", p.Amount().StringFixed(2))
	return nil
}

func (s *OrderService) Get(orderID string) (*domain.Order, error) {
	return s.repo.Find(orderID)
}

func (s *OrderService) List() []*domain.Order {
	return s.repo.ListAll()
}
