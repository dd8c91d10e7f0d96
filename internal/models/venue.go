package models

import "fmt"

// Venue represents a location where events are held.
type Venue struct {
	// ID is the venue number (collection key).
	ID int `json:"venue_id" bson:"venue_id"`

	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	Contact string `json:"contact" bson:"contact"`

	// MinGuests and MaxGuests bound the capacity. MinGuests <= MaxGuests
	// is not enforced.
	MinGuests int `json:"min_guests" bson:"min_guests"`
	MaxGuests int `json:"max_guests" bson:"max_guests"`
}

// Key returns the venue ID.
func (v Venue) Key() int { return v.ID }

// Details renders the venue for display.
func (v Venue) Details() string {
	return fmt.Sprintf("Name: %s, Address: %s, Contact: %s, Capacity: %d-%d guests",
		v.Name, v.Address, v.Contact, v.MinGuests, v.MaxGuests)
}
