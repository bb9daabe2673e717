package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mmynk/rsvp/internal/gesture"
	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/roster"
	"github.com/mmynk/rsvp/internal/rsvp"
)

const maxFormBytes = 32 << 10

func guestInputName(i int, f roster.Field) string {
	return fmt.Sprintf("guest-%d-%s", i, f)
}

// decodeState reads the page state posted with every form action.
func decodeState(w http.ResponseWriter, r *http.Request) (*rsvp.State, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	s := &rsvp.State{
		ViewID: r.PostFormValue("view_id"),
		Status: models.SubmissionStatus(r.PostFormValue("status")),
	}
	if n, err := strconv.Atoi(r.PostFormValue("count")); err == nil {
		s.Count = n
	}

	for i := 0; i < gesture.MaxCount; i++ {
		if _, ok := r.PostForm[guestInputName(i, roster.FieldFirstName)]; !ok {
			break
		}
		s.Guests = append(s.Guests, models.Guest{
			FirstName:   r.PostFormValue(guestInputName(i, roster.FieldFirstName)),
			LastName:    r.PostFormValue(guestInputName(i, roster.FieldLastName)),
			AgeCategory: models.AgeCategory(r.PostFormValue(guestInputName(i, roster.FieldAgeCategory))),
			Menu:        models.Menu(r.PostFormValue(guestInputName(i, roster.FieldMenu))),
		})
	}

	s.Normalize()
	return s, nil
}

// action is one parsed form action, e.g. "step:1" or "update:0:menu:vegetarian".
type action struct {
	Name string
	Args []string
}

func parseAction(r *http.Request) action {
	raw := r.PostFormValue("action")
	if raw == "" {
		raw = r.PostFormValue("gesture")
	}
	parts := strings.SplitN(raw, ":", 4)
	return action{Name: parts[0], Args: parts[1:]}
}

func (a action) intArg(i int) (int, error) {
	if i >= len(a.Args) {
		return 0, fmt.Errorf("action %s: missing argument %d", a.Name, i)
	}
	n, err := strconv.Atoi(a.Args[i])
	if err != nil {
		return 0, fmt.Errorf("action %s: %w", a.Name, err)
	}
	return n, nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
