package models

import "time"

// Event holds the metadata of one invitation page.
// Two pages exist that differ only in this metadata.
type Event struct {
	// Slug is the route of the page (e.g. "kasiia").
	Slug string

	// Title is used for <title>, OpenGraph and Twitter cards.
	Title string

	// Description is the short page description (the event date).
	Description string

	// Couple holds the two names shown in the hero, in display order.
	Couple [2]string

	// Date is the start of the event in its local time zone.
	Date time.Time

	// Venue is the venue label and MapURL links to it.
	Venue  string
	MapURL string

	// Image is the hero and preview image path under /static.
	Image     string
	ImageAlt  string
	ImageW    int
	ImageH    int
	Locale    string
	Copyright string
}
