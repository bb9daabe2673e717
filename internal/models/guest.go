package models

import "fmt"

// AgeCategory is the age group of a guest.
type AgeCategory string

const (
	// AgeAdult is the default category for every new guest.
	AgeAdult AgeCategory = "adult"

	// AgeChild is sent on the wire as "copil".
	AgeChild AgeCategory = "copil"
)

// Valid reports whether a is one of the selectable categories.
func (a AgeCategory) Valid() bool {
	return a == AgeAdult || a == AgeChild
}

// ParseAgeCategory converts a wire value into an AgeCategory.
func ParseAgeCategory(s string) (AgeCategory, error) {
	a := AgeCategory(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown age category %q", s)
	}
	return a, nil
}

// Menu is the menu choice of a guest.
type Menu string

const (
	// MenuMeat is the default menu for every new guest. Sent as "carne".
	MenuMeat Menu = "carne"

	// MenuVegetarian is the meat-free menu.
	MenuVegetarian Menu = "vegetarian"
)

// Valid reports whether m is one of the selectable menus.
func (m Menu) Valid() bool {
	return m == MenuMeat || m == MenuVegetarian
}

// ParseMenu converts a wire value into a Menu.
func ParseMenu(s string) (Menu, error) {
	m := Menu(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown menu %q", s)
	}
	return m, nil
}

// Guest represents one attending person on the RSVP form.
type Guest struct {
	// FirstName is free text. Required (non-empty after trim) at submission time.
	FirstName string `json:"firstName"`

	// LastName is free text. Required (non-empty after trim) at submission time.
	// New guests default to the first guest's last name when the roster grows.
	LastName string `json:"lastName"`

	// AgeCategory is adult or child.
	AgeCategory AgeCategory `json:"ageCategory"`

	// Menu is meat or vegetarian.
	Menu Menu `json:"menu"`
}

// BlankGuest returns a guest with empty names and the default selections.
func BlankGuest(lastName string) Guest {
	return Guest{
		LastName:    lastName,
		AgeCategory: AgeAdult,
		Menu:        MenuMeat,
	}
}

// Roster is the ordered list of guests of one RSVP.
// Insertion order is display order.
type Roster []Guest

// Clone returns a copy of r that shares no backing array with it.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}
