package roster

import "github.com/mmynk/rsvp/internal/models"

// Summary counts guests per age category and menu.
type Summary struct {
	Guests     int `json:"guests"`
	Adults     int `json:"adults"`
	Children   int `json:"children"`
	Meat       int `json:"meat"`
	Vegetarian int `json:"vegetarian"`
}

// Add accumulates the guests of r into s.
func (s *Summary) Add(r models.Roster) {
	for _, g := range r {
		s.Guests++
		switch g.AgeCategory {
		case models.AgeChild:
			s.Children++
		default:
			s.Adults++
		}
		switch g.Menu {
		case models.MenuVegetarian:
			s.Vegetarian++
		default:
			s.Meat++
		}
	}
}

// Summarize returns the counts for a single roster.
func Summarize(r models.Roster) Summary {
	var s Summary
	s.Add(r)
	return s
}
