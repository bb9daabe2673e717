package roster

import (
	"fmt"
	"strings"

	"github.com/mmynk/rsvp/internal/models"
)

// FieldError points at one guest field that failed validation.
type FieldError struct {
	Index int   `json:"index"`
	Field Field `json:"field"`
}

// ValidationError lists every guest field that must be filled in before submitting.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		f := e.Fields[0]
		return fmt.Sprintf("guest %d: %s is required", f.Index+1, f.Field)
	}
	return fmt.Sprintf("%d guest names are missing", len(e.Fields))
}

// Has reports whether the field of guest index failed validation.
func (e *ValidationError) Has(index int, field Field) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Index == index && f.Field == field {
			return true
		}
	}
	return false
}

// Validate checks that every guest has a first and last name.
// Age category and menu are not checked; the selectors only offer valid values.
func Validate(r models.Roster) error {
	var fields []FieldError
	for i, g := range r {
		if strings.TrimSpace(g.FirstName) == "" {
			fields = append(fields, FieldError{Index: i, Field: FieldFirstName})
		}
		if strings.TrimSpace(g.LastName) == "" {
			fields = append(fields, FieldError{Index: i, Field: FieldLastName})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
