package main

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"donburi-house/config"
	"donburi-house/internal/domain"
	"donburi-house/internal/notify"
	"donburi-house/internal/service"
	"donburi-house/internal/storage"
)

// app bundles the process-wide stores and services. Everything is wired by
// injection; there is no ambient global state.
type app struct {
	cfg config.Config
	log *slog.Logger

	bus          *notify.Bus
	ledger       *storage.PaymentLedger
	catalog      *service.CatalogService
	combos       *service.ComboService
	orders       *service.OrderService
	reservations *service.ReservationService
	accounts     *service.AccountService

	// guest is the signed-in customer driving the guest menu; currentOrder
	// is their open order, created lazily.
	guest        *domain.Account
	currentOrder *domain.Order
}

func newApp(cfg config.Config, log *slog.Logger, sink notify.Sink) *app {
	if sink == nil && cfg.KafkaBroker != "" {
		sink = notify.NewKafkaSink(config.NewKafkaWriter(cfg.KafkaBroker, cfg.NotifyTopic))
	}

	bus := notify.NewBus(cfg.PushEnabled, sink)
	catalogStore := storage.NewCatalogStore()
	comboStore := storage.NewComboStore()
	orderBook := storage.NewOrderBook()
	reservationBook := storage.NewReservationBook()
	ledger := storage.NewPaymentLedger()
	registry := storage.NewAccountRegistry()

	reservations := service.NewReservationService(reservationBook, bus)
	reservations.NotifyCompleted = cfg.NotifyReservationCompleted

	return &app{
		cfg:          cfg,
		log:          log,
		bus:          bus,
		ledger:       ledger,
		catalog:      service.NewCatalogService(catalogStore),
		combos:       service.NewComboService(comboStore, catalogStore, bus),
		orders:       service.NewOrderService(orderBook, catalogStore, comboStore, ledger, bus, service.PickupQRGenerator{}, log),
		reservations: reservations,
		accounts:     service.NewAccountService(registry, log),
	}
}

// seed loads the sample menu, a lunch combo and the default accounts, then
// signs in the first guest.
func (a *app) seed() error {
	if _, err := a.accounts.RegisterStaff("admin", "123"); err != nil {
		return err
	}
	if _, err := a.accounts.RegisterGuest("Alice", "pass123"); err != nil {
		return err
	}
	if _, err := a.accounts.RegisterGuest("Bob", "abc123"); err != nil {
		return err
	}

	ramen, err := a.catalog.Add("Tonkotsu Ramen", decimal.RequireFromString("12.50"),
		domain.Ramen{Broth: "Tonkotsu", Noodle: "Thin"})
	if err != nil {
		return err
	}
	if _, err := a.catalog.Add("Chicken Katsu Don", decimal.RequireFromString("10.00"),
		domain.RiceDon{RiceType: "White Rice", Protein: "Chicken"}); err != nil {
		return err
	}
	cola, err := a.catalog.Add("Coca-Cola", decimal.RequireFromString("2.50"),
		domain.Drink{Volume: "12 oz"})
	if err != nil {
		return err
	}
	if _, err := a.catalog.Add("Edamame", decimal.RequireFromString("4.00"),
		domain.SideDish{DishType: "Appetizer", Vegetarian: true}); err != nil {
		return err
	}
	if _, err := a.catalog.Add("Ajitama Egg", decimal.RequireFromString("1.50"),
		domain.Topping{Category: "Egg"}); err != nil {
		return err
	}

	combo, err := a.combos.Create("Lunch Combo", 0.10)
	if err != nil {
		return err
	}
	if err := a.combos.AddItem(combo.ID, ramen.ID); err != nil {
		return err
	}
	if err := a.combos.AddItem(combo.ID, cola.ID); err != nil {
		return err
	}

	guest, err := a.accounts.Authenticate("Alice", "pass123")
	if err != nil {
		return err
	}
	a.guest = guest
	return nil
}

// openOrder returns the guest's current order, creating one on first use.
func (a *app) openOrder() (*domain.Order, error) {
	if a.currentOrder != nil {
		status := a.currentOrder.Status()
		if status == domain.StatusPending || status == domain.StatusPreparing {
			return a.currentOrder, nil
		}
	}
	o, err := a.orders.Create(a.guest)
	if err != nil {
		return nil, err
	}
	a.currentOrder = o
	return o, nil
}
