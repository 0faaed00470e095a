package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"donburi-house/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenGuest
	screenStaff
	screenPicker
)

type menuItem struct {
	label string
	run   func(m *model)
}

type pickerItem struct {
	id    string
	label string
}

// model is the menu-driven collaborator: it only parses key presses, calls
// the services and renders their display data.
type model struct {
	app    *app
	screen screen
	cursor int
	output string

	homeItems  []menuItem
	guestItems []menuItem
	staffItems []menuItem

	pickerTitle string
	pickerItems []pickerItem
	onPick      func(id string) string
	pickerFrom  screen
}

func newModel(a *app) model {
	m := model{app: a, screen: screenHome}
	m.homeItems = []menuItem{
		{label: fmt.Sprintf("Guest menu (%s)", a.guest.Username), run: func(m *model) {
			m.screen = screenGuest
			m.cursor = 0
			m.output = ""
		}},
		{label: "Staff menu (admin)", run: func(m *model) {
			m.screen = screenStaff
			m.cursor = 0
			m.output = ""
		}},
	}
	m.guestItems = guestMenu(a)
	m.staffItems = staffMenu(a)
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}
	case "esc":
		switch m.screen {
		case screenPicker:
			m.screen = m.pickerFrom
		case screenGuest, screenStaff:
			m.screen = screenHome
		}
		m.cursor = 0
	case "enter":
		if m.screen == screenPicker {
			if len(m.pickerItems) > 0 {
				m.output = m.onPick(m.pickerItems[m.cursor].id)
			}
			m.screen = m.pickerFrom
			m.cursor = 0
			break
		}
		items := m.items()
		if len(items) > 0 {
			items[m.cursor].run(&m)
		}
	}
	return m, nil
}

func (m model) items() []menuItem {
	switch m.screen {
	case screenGuest:
		return m.guestItems
	case screenStaff:
		return m.staffItems
	case screenPicker:
		picker := make([]menuItem, len(m.pickerItems))
		for i, p := range m.pickerItems {
			picker[i] = menuItem{label: p.label}
		}
		return picker
	}
	return m.homeItems
}

func (m model) View() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, "Donburi House")
	if unread := m.app.bus.UnreadCount(); unread > 0 {
		fmt.Fprintf(b, "[%d unread notifications]\n", unread)
	}
	fmt.Fprintln(b)

	title := "Main Menu"
	switch m.screen {
	case screenGuest:
		title = "Guest Menu"
	case screenStaff:
		title = "Staff Menu"
	case screenPicker:
		title = m.pickerTitle
	}
	fmt.Fprintf(b, "%s:\n", title)
	for i, item := range m.items() {
		marker := " "
		if i == m.cursor {
			marker = ">"
		}
		fmt.Fprintf(b, " %s %s\n", marker, item.label)
	}
	if len(m.items()) == 0 {
		fmt.Fprintln(b, "  (nothing to choose)")
	}
	if m.output != "" {
		fmt.Fprintf(b, "\n%s\n", m.output)
	}
	fmt.Fprintln(b, "\nControls: up/down move, enter select, esc back, q quit")
	return b.String()
}

func (m *model) openPicker(title string, items []pickerItem, onPick func(id string) string) {
	m.pickerFrom = m.screen
	m.screen = screenPicker
	m.cursor = 0
	m.pickerTitle = title
	m.pickerItems = items
	m.onPick = onPick
}

func guestMenu(a *app) []menuItem {
	return []menuItem{
		{label: "Show Menu", run: func(m *model) {
			b := &strings.Builder{}
			for _, f := range a.catalog.List() {
				fmt.Fprintln(b, f.Describe())
			}
			for _, c := range a.combos.List() {
				fmt.Fprintln(b, c.Describe())
			}
			m.output = b.String()
		}},
		{label: "My Order", run: func(m *model) {
			o, err := a.openOrder()
			if err != nil {
				m.output = "error: " + err.Error()
				return
			}
			m.output = o.Describe()
		}},
		{label: "Add Item to Order", run: func(m *model) {
			items := make([]pickerItem, 0)
			for _, f := range a.catalog.List() {
				items = append(items, pickerItem{id: f.ID, label: f.Describe()})
			}
			m.openPicker("Choose an item", items, func(id string) string {
				o, err := a.openOrder()
				if err != nil {
					return "error: " + err.Error()
				}
				if err := a.orders.AddFood(o.ID, id); err != nil {
					return "error: " + err.Error()
				}
				return o.Describe()
			})
		}},
		{label: "Add Combo to Order", run: func(m *model) {
			items := make([]pickerItem, 0)
			for _, c := range a.combos.List() {
				items = append(items, pickerItem{id: c.ID,
					label: fmt.Sprintf("%s: %s ($%s)", c.ID, c.Name, c.Price().StringFixed(2))})
			}
			m.openPicker("Choose a combo", items, func(id string) string {
				o, err := a.openOrder()
				if err != nil {
					return "error: " + err.Error()
				}
				if err := a.orders.AddCombo(o.ID, id); err != nil {
					return "error: " + err.Error()
				}
				return o.Describe()
			})
		}},
		{label: "Pay Order", run: func(m *model) {
			methods := []pickerItem{
				{id: "cash", label: "Cash (exact amount, USD)"},
				{id: "credit", label: "Credit Card (****4242)"},
				{id: "ewallet", label: "e-Wallet (Momo)"},
			}
			m.openPicker("Choose a payment method", methods, func(id string) string {
				o := m.app.currentOrder
				if o == nil {
					return "No open order to pay."
				}
				var p domain.Payment
				switch id {
				case "cash":
					p = domain.NewCashPayment(o.Total(), "USD")
				case "credit":
					p = domain.NewCreditPayment(o.Total(), "4242424242424242")
				default:
					p = domain.NewEWalletPayment(o.Total(), "Momo")
				}
				if err := a.orders.Pay(o.ID, p); err != nil {
					return "error: " + err.Error()
				}
				return "Payment successful!\n" + o.Describe()
			})
		}},
		{label: "Cancel Order", run: func(m *model) {
			o := a.currentOrder
			if o == nil {
				m.output = "No open order."
				return
			}
			if err := a.orders.SetStatus(o.ID, domain.StatusCancelled); err != nil {
				m.output = "error: " + err.Error()
				return
			}
			m.output = "Order cancelled."
		}},
		{label: "Make a Reservation", run: func(m *model) {
			sizes := []pickerItem{
				{id: "2", label: "Table for 2"},
				{id: "4", label: "Table for 4"},
				{id: "6", label: "Table for 6"},
			}
			m.openPicker("Choose a party size (tomorrow 19:00)", sizes, func(id string) string {
				size := int(id[0] - '0')
				date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
				r, err := a.reservations.Create(a.guest, date, "19:00", size)
				if err != nil {
					return "error: " + err.Error()
				}
				return "Reservation created, waiting to confirm.\n" + r.Describe()
			})
		}},
		{label: "My Reservations", run: func(m *model) {
			list := a.reservations.ListByCustomer(a.guest.ID)
			if len(list) == 0 {
				m.output = "No reservations found."
				return
			}
			b := &strings.Builder{}
			for _, r := range list {
				fmt.Fprintln(b, r.Describe())
			}
			m.output = b.String()
		}},
		{label: "Cancel Reservation", run: func(m *model) {
			items := make([]pickerItem, 0)
			for _, r := range a.reservations.ListByCustomer(a.guest.ID) {
				if r.Status() == domain.ReservationPending || r.Status() == domain.ReservationConfirmed {
					items = append(items, pickerItem{id: r.ID, label: r.Describe()})
				}
			}
			m.openPicker("Choose a reservation to cancel", items, func(id string) string {
				if err := a.reservations.SetStatus(id, domain.ReservationCancelled); err != nil {
					return "error: " + err.Error()
				}
				return "Reservation cancelled."
			})
		}},
		{label: "View Notifications", run: func(m *model) {
			m.output = renderNotifications(a.bus.All())
		}},
		{label: "View Unread Notifications", run: func(m *model) {
			m.output = renderNotifications(a.bus.Unread())
		}},
		{label: "Mark All Read", run: func(m *model) {
			for _, n := range a.bus.Unread() {
				_ = a.bus.MarkRead(n.ID)
			}
			m.output = "All notifications marked as read."
		}},
		{label: "Notification Settings", run: func(m *model) {
			if a.bus.Enabled() {
				a.bus.Disable()
				m.output = "Push notifications disabled."
			} else {
				a.bus.Enable()
				m.output = "Push notifications enabled."
			}
		}},
	}
}

func staffMenu(a *app) []menuItem {
	return []menuItem{
		{label: "Show All Food", run: func(m *model) {
			b := &strings.Builder{}
			for _, f := range a.catalog.List() {
				fmt.Fprintln(b, f.Describe())
			}
			m.output = b.String()
		}},
		{label: "Show All Orders", run: func(m *model) {
			list := a.orders.List()
			if len(list) == 0 {
				m.output = "No orders yet."
				return
			}
			b := &strings.Builder{}
			for _, o := range list {
				fmt.Fprintln(b, o.Describe())
				fmt.Fprintln(b)
			}
			m.output = b.String()
		}},
		{label: "Advance Order Status", run: func(m *model) {
			items := make([]pickerItem, 0)
			for _, o := range a.orders.List() {
				if next, ok := nextOrderStatus(o.Status()); ok {
					items = append(items, pickerItem{id: o.ID,
						label: fmt.Sprintf("%s [%s -> %s] $%s", o.ID, o.Status(), next, o.Total().StringFixed(2))})
				}
			}
			m.openPicker("Choose an order to advance", items, func(id string) string {
				o, err := a.orders.Get(id)
				if err != nil {
					return "error: " + err.Error()
				}
				next, _ := nextOrderStatus(o.Status())
				if err := a.orders.SetStatus(id, next); err != nil {
					return "error: " + err.Error()
				}
				return fmt.Sprintf("Order %s is now %s.", id, next)
			})
		}},
		{label: "Cancel Order", run: func(m *model) {
			items := make([]pickerItem, 0)
			for _, o := range a.orders.List() {
				if o.CanTransition(domain.StatusCancelled) {
					items = append(items, pickerItem{id: o.ID,
						label: fmt.Sprintf("%s [%s] $%s", o.ID, o.Status(), o.Total().StringFixed(2))})
				}
			}
			m.openPicker("Choose an order to cancel", items, func(id string) string {
				if err := a.orders.SetStatus(id, domain.StatusCancelled); err != nil {
					return "error: " + err.Error()
				}
				return fmt.Sprintf("Order %s cancelled.", id)
			})
		}},
		{label: "All Reservations", run: func(m *model) {
			list := a.reservations.List()
			if len(list) == 0 {
				m.output = "No reservations found."
				return
			}
			b := &strings.Builder{}
			for _, r := range list {
				fmt.Fprintln(b, r.Describe())
			}
			m.output = b.String()
		}},
		{label: "Confirm Reservation", run: func(m *model) {
			items := make([]pickerItem, 0)
			for _, r := range a.reservations.List() {
				if r.Status() == domain.ReservationPending {
					items = append(items, pickerItem{id: r.ID, label: r.Describe()})
				}
			}
			m.openPicker("Choose a reservation to confirm", items, func(id string) string {
				if err := a.reservations.SetStatus(id, domain.ReservationConfirmed); err != nil {
					return "error: " + err.Error()
				}
				return fmt.Sprintf("Reservation %s confirmed.", id)
			})
		}},
		{label: "Complete Reservation", run: func(m *model) {
			items := make([]pickerItem, 0)
			for _, r := range a.reservations.List() {
				if r.Status() == domain.ReservationConfirmed {
					items = append(items, pickerItem{id: r.ID, label: r.Describe()})
				}
			}
			m.openPicker("Choose a reservation to complete", items, func(id string) string {
				if err := a.reservations.SetStatus(id, domain.ReservationCompleted); err != nil {
					return "error: " + err.Error()
				}
				return fmt.Sprintf("Reservation %s completed.", id)
			})
		}},
		{label: "Send Promotion", run: func(m *model) {
			promos := []pickerItem{
				{id: "Happy hour: 20% off drinks from 5-7pm!", label: "Happy hour: 20% off drinks"},
				{id: "Free ajitama egg with every ramen today!", label: "Free ajitama egg with ramen"},
				{id: "Weekend special: lunch combo all day!", label: "Weekend lunch combo special"},
			}
			m.openPicker("Choose a promotion to send", promos, func(id string) string {
				a.bus.SendPromotion(id)
				return "Promotion sent."
			})
		}},
		{label: "Payment History", run: func(m *model) {
			b := &strings.Builder{}
			fmt.Fprintf(b, "Payments recorded: %d\n", a.ledger.Count())
			for _, p := range a.ledger.All() {
				fmt.Fprintln(b, p.Describe())
			}
			for _, r := range a.ledger.Refunds() {
				fmt.Fprintf(b, "Refund: $%s for order %s\n", r.Amount.StringFixed(2), r.OrderID)
			}
			m.output = b.String()
		}},
		{label: "View Notifications", run: func(m *model) {
			m.output = renderNotifications(a.bus.All())
		}},
	}
}

func renderNotifications(list []*domain.Notification) string {
	if len(list) == 0 {
		return "No notifications available."
	}
	b := &strings.Builder{}
	for _, n := range list {
		fmt.Fprintln(b, n.Describe())
	}
	return b.String()
}

func nextOrderStatus(s domain.OrderStatus) (domain.OrderStatus, bool) {
	switch s {
	case domain.StatusPending:
		return domain.StatusPreparing, true
	case domain.StatusPreparing:
		return domain.StatusCompleted, true
	}
	return s, false
}
