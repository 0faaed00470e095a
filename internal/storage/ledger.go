package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"donburi-house/internal/domain"
)

// PaymentLedger is the append-only audit trail of issued payments. Refunds
// are recorded alongside the payments; nothing is ever removed or reversed.
type PaymentLedger struct {
	payments []domain.Payment
	refunds  []domain.Refund

	now func() time.Time
}

func NewPaymentLedger() *PaymentLedger {
	return &PaymentLedger{now: time.Now}
}

func (l *PaymentLedger) Record(p domain.Payment) {
	if p == nil {
		return
	}
	l.payments = append(l.payments, p)
}

func (l *PaymentLedger) All() []domain.Payment {
	out := make([]domain.Payment, len(l.payments))
	copy(out, l.payments)
	return out
}

func (l *PaymentLedger) Count() int { return len(l.payments) }

func (l *PaymentLedger) RecordRefund(orderID string, amount decimal.Decimal) {
	l.refunds = append(l.refunds, domain.Refund{
		OrderID:  orderID,
		Amount:   amount,
		IssuedAt: l.now(),
	})
}

func (l *PaymentLedger) Refunds() []domain.Refund {
	out := make([]domain.Refund, len(l.refunds))
	copy(out, l.refunds)
	return out
}
