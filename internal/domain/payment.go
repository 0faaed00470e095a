package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash    PaymentMethod = "Cash"
	MethodCredit  PaymentMethod = "Credit"
	MethodEWallet PaymentMethod = "e-Wallet"
)

// Payment describes how an order was paid. Implementations are immutable
// value types constructed once and never mutated.
type Payment interface {
	Method() PaymentMethod
	Amount() decimal.Decimal
	Describe() string
}

type CashPayment struct {
	amount   decimal.Decimal
	currency string
}

func NewCashPayment(amount decimal.Decimal, currency string) CashPayment {
	return CashPayment{amount: amount, currency: currency}
}

func (p CashPayment) Method() PaymentMethod   { return MethodCash }
func (p CashPayment) Amount() decimal.Decimal { return p.amount }
func (p CashPayment) Currency() string        { return p.currency }

func (p CashPayment) Describe() string {
	return fmt.Sprintf("Payment via Cash: $%s (%s)", p.amount.StringFixed(2), p.currency)
}

// CreditPayment retains only the last four digits of the card number; the
// full number is never stored.
type CreditPayment struct {
	amount decimal.Decimal
	last4  string
}

func NewCreditPayment(amount decimal.Decimal, cardNumber string) CreditPayment {
	last4 := ""
	if len(cardNumber) >= 4 {
		last4 = cardNumber[len(cardNumber)-4:]
	}
	return CreditPayment{amount: amount, last4: last4}
}

func (p CreditPayment) Method() PaymentMethod   { return MethodCredit }
func (p CreditPayment) Amount() decimal.Decimal { return p.amount }
func (p CreditPayment) Last4() string           { return p.last4 }

func (p CreditPayment) Describe() string {
	if p.last4 == "" {
		return fmt.Sprintf("Payment via Credit Card: $%s (invalid card)", p.amount.StringFixed(2))
	}
	return fmt.Sprintf("Payment via Credit Card: $%s (card ****%s)", p.amount.StringFixed(2), p.last4)
}

type EWalletPayment struct {
	amount   decimal.Decimal
	provider string
}

func NewEWalletPayment(amount decimal.Decimal, provider string) EWalletPayment {
	return EWalletPayment{amount: amount, provider: provider}
}

func (p EWalletPayment) Method() PaymentMethod   { return MethodEWallet }
func (p EWalletPayment) Amount() decimal.Decimal { return p.amount }
func (p EWalletPayment) Provider() string        { return p.provider }

func (p EWalletPayment) Describe() string {
	return fmt.Sprintf("Payment via e-Wallet: $%s (%s)", p.amount.StringFixed(2), p.provider)
}

// Refund records the compensating action issued when a paid order is
// cancelled. The ledger's payment list itself stays append-only; refunds are
// tracked alongside, not reversed out.
type Refund struct {
	OrderID  string          `json:"order_id"`
	Amount   decimal.Decimal `json:"amount"`
	IssuedAt time.Time       `json:"issued_at"`
}
