package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donburi-house/internal/domain"
)

func TestComboService_CreateAnnouncesCombo(t *testing.T) {
	f := newFixture(t)

	combo, err := f.combos.Create("Lunch Combo", 0.10)
	require.NoError(t, err)
	assert.Equal(t, "C001", combo.ID)

	all := f.bus.All()
	require.Len(t, all, 1)
	assert.Equal(t, domain.EventNewCombo, all[0].Kind)
	assert.Contains(t, all[0].Message, "Lunch Combo")
}

func TestComboService_CreateRejectsBadInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.combos.Create("", 0.10)
	assert.Error(t, err)

	_, err = f.combos.Create("Too Good", 1.0)
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
}

func TestComboService_AddItemResolvesCatalog(t *testing.T) {
	f := newFixture(t)
	_, err := f.catalog.Add("Tonkotsu Ramen", decimal.RequireFromString("12.50"),
		domain.Ramen{Broth: "Tonkotsu", Noodle: "Thin"})
	require.NoError(t, err)

	combo, err := f.combos.Create("Lunch Combo", 0.10)
	require.NoError(t, err)

	require.NoError(t, f.combos.AddItem(combo.ID, "F001"))
	assert.True(t, combo.Price().Equal(decimal.RequireFromString("11.25")))

	assert.ErrorIs(t, f.combos.AddItem(combo.ID, "F999"), domain.ErrInvalidReference)
	assert.ErrorIs(t, f.combos.AddItem("C999", "F001"), domain.ErrNotFound)
}

func TestComboService_RemoveItemReprices(t *testing.T) {
	f := newFixture(t)
	_, err := f.catalog.Add("Tonkotsu Ramen", decimal.RequireFromString("12.50"),
		domain.Ramen{Broth: "Tonkotsu", Noodle: "Thin"})
	require.NoError(t, err)
	_, err = f.catalog.Add("Coca-Cola", decimal.RequireFromString("2.50"),
		domain.Drink{Volume: "12 oz"})
	require.NoError(t, err)

	combo, err := f.combos.Create("Lunch Combo", 0.10)
	require.NoError(t, err)
	require.NoError(t, f.combos.AddItem(combo.ID, "F001"))
	require.NoError(t, f.combos.AddItem(combo.ID, "F002"))
	require.NoError(t, f.combos.RemoveItem(combo.ID, "F002"))

	assert.True(t, combo.Price().Equal(decimal.RequireFromString("11.25")), "got %s", combo.Price())
}

func TestComboService_RemoveCombo(t *testing.T) {
	f := newFixture(t)
	combo, err := f.combos.Create("Lunch Combo", 0.10)
	require.NoError(t, err)

	require.NoError(t, f.combos.Remove(combo.ID))
	_, err = f.combos.Get(combo.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
