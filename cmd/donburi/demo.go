package main

import (
	"fmt"

	"donburi-house/internal/domain"
)

// runDemo walks the whole lifecycle once: seed the menu, place and pay an
// order, cancel it for a refund, and dump the ledger and notification feed.
func runDemo(a *app) error {
	fmt.Println("===== Donburi House Demo =====")

	if err := a.seed(); err != nil {
		return err
	}

	fmt.Println("\n--- Menu ---")
	for _, f := range a.catalog.List() {
		fmt.Println(f.Describe())
	}
	for _, c := range a.combos.List() {
		fmt.Println(c.Describe())
	}

	order, err := a.orders.Create(a.guest)
	if err != nil {
		return err
	}
	if err := a.orders.AddFood(order.ID, "F002"); err != nil {
		return err
	}
	if err := a.orders.AddCombo(order.ID, "C001"); err != nil {
		return err
	}
	fmt.Println("\n--- Order ---")
	fmt.Println(order.Describe())

	payment := domain.NewEWalletPayment(order.Total(), "Momo")
	if err := a.orders.Pay(order.ID, payment); err != nil {
		return err
	}
	fmt.Println("\nPayment successful using e-Wallet (Momo)")
	fmt.Println(order.Describe())

	fmt.Println("\n--- Cancelling Order ---")
	if err := a.orders.SetStatus(order.ID, domain.StatusCancelled); err != nil {
		return err
	}
	for _, r := range a.ledger.Refunds() {
		fmt.Printf("Refunded $%s for order %s\n", r.Amount.StringFixed(2), r.OrderID)
	}

	fmt.Println("\n--- Payment History ---")
	for _, p := range a.ledger.All() {
		fmt.Println(p.Describe())
	}

	fmt.Println("\n--- Notifications ---")
	for _, n := range a.bus.All() {
		fmt.Println(n.Describe())
	}

	fmt.Println("\n===== Demo Complete =====")
	return nil
}
