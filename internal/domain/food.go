package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type FoodKind string

const (
	KindRiceDon  FoodKind = "rice_don"
	KindRamen    FoodKind = "ramen"
	KindTopping  FoodKind = "topping"
	KindSideDish FoodKind = "side_dish"
	KindDrink    FoodKind = "drink"
)

// FoodDetails carries the attributes specific to one kind of menu item.
type FoodDetails interface {
	Kind() FoodKind
	Describe() string
}

// Food is a priced catalog item. The ID is assigned by the catalog store at
// add time; orders and combos hold non-owning references.
type Food struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Details FoodDetails     `json:"details"`
}

func NewFood(name string, price decimal.Decimal, details FoodDetails) *Food {
	return &Food{Name: name, Price: price, Details: details}
}

func (f *Food) Describe() string {
	return fmt.Sprintf("ID: %s, %s: %s, %s, Price: $%s",
		f.ID, kindLabel(f.Details.Kind()), f.Name, f.Details.Describe(), f.Price.StringFixed(2))
}

func kindLabel(k FoodKind) string {
	switch k {
	case KindRiceDon:
		return "Rice Don"
	case KindRamen:
		return "Ramen"
	case KindTopping:
		return "Topping"
	case KindSideDish:
		return "Side Dish"
	case KindDrink:
		return "Drink"
	}
	return "Food"
}

type RiceDon struct {
	RiceType string `json:"rice_type"`
	Protein  string `json:"protein"`
}

func (r RiceDon) Kind() FoodKind { return KindRiceDon }

func (r RiceDon) Describe() string {
	return fmt.Sprintf("Rice: %s, Protein: %s", r.RiceType, r.Protein)
}

type Ramen struct {
	Broth  string `json:"broth"`
	Noodle string `json:"noodle"`
}

func (r Ramen) Kind() FoodKind { return KindRamen }

func (r Ramen) Describe() string {
	return fmt.Sprintf("Broth: %s, Noodles: %s", r.Broth, r.Noodle)
}

type Topping struct {
	Category string `json:"category"`
}

func (t Topping) Kind() FoodKind { return KindTopping }

func (t Topping) Describe() string {
	return fmt.Sprintf("Category: %s", t.Category)
}

type SideDish struct {
	DishType   string `json:"dish_type"`
	Vegetarian bool   `json:"vegetarian"`
}

func (s SideDish) Kind() FoodKind { return KindSideDish }

func (s SideDish) Describe() string {
	veg := "No"
	if s.Vegetarian {
		veg = "Yes"
	}
	return fmt.Sprintf("Type: %s, Vegetarian: %s", s.DishType, veg)
}

type Drink struct {
	Volume string `json:"volume"`
}

func (d Drink) Kind() FoodKind { return KindDrink }

func (d Drink) Describe() string {
	return fmt.Sprintf("Volume: %s", d.Volume)
}
