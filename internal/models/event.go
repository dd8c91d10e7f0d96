package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for event dates.
const DateLayout = "2006-01-02"

// Event represents an event booked by a client.
//
// All ID fields are unchecked references: ClientID points at a Client,
// Guests at Guest records and the per-role supplier lists at Supplier (or
// Caterer) records. None of them is verified on insert.
type Event struct {
	// ID is the event number (collection key).
	ID int `json:"event_id" bson:"event_id"`

	// Type is the kind of event (e.g., "Wedding", "Conference").
	Type  string `json:"type" bson:"type"`
	Theme string `json:"theme" bson:"theme"`

	// Date is the calendar date of the event, stored at midnight UTC.
	Date time.Time `json:"date" bson:"date"`

	// Time is free text as entered (usually "HH:MM"); it is not parsed.
	Time string `json:"time" bson:"time"`

	// Duration is the length of the event in hours.
	Duration float64 `json:"duration" bson:"duration"`

	VenueAddress string `json:"venue_address" bson:"venue_address"`
	ClientID     int    `json:"client_id" bson:"client_id"`

	// Guests is the ordered list of invited guest IDs.
	Guests []int `json:"guests" bson:"guests"`

	// Supplier assignments per role, each an ordered list of IDs.
	Caterers           []int `json:"caterers" bson:"caterers"`
	Cleaners           []int `json:"cleaners" bson:"cleaners"`
	Decorators         []int `json:"decorators" bson:"decorators"`
	Entertainers       []int `json:"entertainers" bson:"entertainers"`
	FurnitureSuppliers []int `json:"furniture_suppliers" bson:"furniture_suppliers"`

	// Invoice is a free-text invoice reference.
	Invoice string `json:"invoice" bson:"invoice"`
}

// Key returns the event ID.
func (e Event) Key() int { return e.ID }

// Details renders the event for display.
func (e Event) Details() string {
	return fmt.Sprintf("Type: %s, Theme: %s, Date: %s, Time: %s, "+
		"Duration: %s hours, Venue: %s, Client ID: %d, "+
		"Guests: %s, Catering: %s, Cleaning: %s, "+
		"Decorations: %s, Entertainment: %s, "+
		"Furniture: %s, Invoice: %s",
		e.Type, e.Theme, e.Date.Format(DateLayout), e.Time,
		formatDecimal(e.Duration), e.VenueAddress, e.ClientID,
		formatIDs(e.Guests), formatIDs(e.Caterers), formatIDs(e.Cleaners),
		formatIDs(e.Decorators), formatIDs(e.Entertainers),
		formatIDs(e.FurnitureSuppliers), e.Invoice)
}
