package web

import (
	"time"

	"github.com/mmynk/rsvp/internal/models"
)

var bucharest = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Bucharest")
	if err != nil {
		return time.FixedZone("EET", 2*60*60)
	}
	return loc
}()

// DefaultEvents are the two invitation pages. They share the page and differ
// only in metadata.
func DefaultEvents() map[string]models.Event {
	date := time.Date(2026, time.March, 29, 16, 0, 0, 0, bucharest)
	base := models.Event{
		Description: "29 Martie 2026",
		Date:        date,
		Venue:       "Lakeside Flonta",
		MapURL:      "https://maps.google.com/?q=Lakeside+Flonta",
		ImageW:      1200,
		ImageH:      630,
		Locale:      "ro_RO",
		Copyright:   "© 2026 Răzvan & Kasiia Wedding",
	}

	kasiia := base
	kasiia.Slug = "kasiia"
	kasiia.Title = "Nunta Kasiia & Razvan"
	kasiia.Couple = [2]string{"Răzvan", "Kasiia"}
	kasiia.Image = "/static/Images/Thumbnail.jpeg"
	kasiia.ImageAlt = "Kasiia & Razvan"

	gemini := base
	gemini.Slug = "gemini"
	gemini.Title = "Nunta Răzvan & Kasiia"
	gemini.Couple = [2]string{"Răzvan", "Kasiia"}
	gemini.Image = "/static/Images/preview.jpeg"
	gemini.ImageAlt = "Răzvan & Kasiia"

	return map[string]models.Event{
		kasiia.Slug: kasiia,
		gemini.Slug: gemini,
	}
}

var months = [...]string{
	"Ianuarie", "Februarie", "Martie", "Aprilie", "Mai", "Iunie",
	"Iulie", "August", "Septembrie", "Octombrie", "Noiembrie", "Decembrie",
}

var weekdays = [...]string{
	"Duminică", "Luni", "Marți", "Miercuri", "Joi", "Vineri", "Sâmbătă",
}

func monthName(t time.Time) string   { return months[t.Month()-1] }
func weekdayName(t time.Time) string { return weekdays[t.Weekday()] }
