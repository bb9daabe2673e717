// Package roster keeps the list of guests in sync with the guest count.
package roster

import (
	"errors"
	"fmt"

	"github.com/mmynk/rsvp/internal/gesture"
	"github.com/mmynk/rsvp/internal/models"
)

// DefaultCount is the guest count of a fresh page view.
const DefaultCount = 2

var (
	ErrIndexOutOfRange = errors.New("guest index out of range")
	ErrUnknownField    = errors.New("unknown guest field")
	ErrInvalidValue    = errors.New("invalid field value")
)

// Field names one editable field of a guest.
type Field string

const (
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldAgeCategory Field = "ageCategory"
	FieldMenu        Field = "menu"
)

// New returns n blank guests with the default selections.
func New(n int) models.Roster {
	return Reconcile(nil, n)
}

// Reconcile resizes old to n guests (n is clamped to the count bounds).
//
// Guests that fit are kept unchanged, extra guests are dropped, and new guests
// are seeded as blank adults on the meat menu with the first guest's last name.
// The seeded last name is only a default: later edits of the first guest never
// reach guests that already exist. old is never modified.
func Reconcile(old models.Roster, n int) models.Roster {
	n = gesture.Clamp(n)

	surname := ""
	if len(old) > 0 {
		surname = old[0].LastName
	}

	out := make(models.Roster, n)
	for i := range out {
		if i < len(old) {
			out[i] = old[i]
			continue
		}
		out[i] = models.BlankGuest(surname)
	}
	return out
}

// UpdateField returns a copy of r with exactly one field of one guest replaced.
func UpdateField(r models.Roster, index int, field Field, value string) (models.Roster, error) {
	if index < 0 || index >= len(r) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(r))
	}

	out := r.Clone()
	g := &out[index]
	switch field {
	case FieldFirstName:
		g.FirstName = value
	case FieldLastName:
		g.LastName = value
	case FieldAgeCategory:
		a, err := models.ParseAgeCategory(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		g.AgeCategory = a
	case FieldMenu:
		m, err := models.ParseMenu(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		g.Menu = m
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}
