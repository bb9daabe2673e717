// Package models defines the core domain models for the RSVP site.
//
// # Page Models
//
// The following models describe one page view of the RSVP form:
//   - Guest: one attending person (a row of the roster)
//   - Roster: the ordered list of guests currently displayed and edited
//   - SubmissionStatus: the four-state flag of the submit flow
//
// The page keeps no identity for guests beyond their position in the roster.
// Index N is "guest N+1" for display only.
//
// # Event Models
//
//   - Event: the metadata of one invitation page (couple, date, venue, preview image)
//
// # Sheet Models
//
// The sheet stand-in stores what the external endpoint receives:
//   - Response: one accepted submission with its guests
//
// # Design Principles
//
// 1. **Closed enumerations**: age category and menu only take the values the selector controls offer
// 2. **Wire names follow the page**: JSON tags match the payload the external endpoint expects
// 3. **No pointers between models**: a Response embeds its guests by value
package models
