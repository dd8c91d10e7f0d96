package models

import "fmt"

// Caterer is a supplier specialised in catering. Caterers live in their own
// collection with their own key space, separate from Supplier.
type Caterer struct {
	ID             int    `json:"caterer_id" bson:"caterer_id"`
	Name           string `json:"name" bson:"name"`
	Address        string `json:"address" bson:"address"`
	ContactDetails string `json:"contact_details" bson:"contact_details"`

	// Menu is a free-text description of what is served.
	Menu string `json:"menu" bson:"menu"`

	MinGuests int `json:"min_guests" bson:"min_guests"`
	MaxGuests int `json:"max_guests" bson:"max_guests"`
}

// Key returns the caterer ID.
func (c Caterer) Key() int { return c.ID }

// Details renders the caterer for display.
func (c Caterer) Details() string {
	return fmt.Sprintf("Name: %s, Address: %s, Contact: %s, Menu: %s, Min Guests: %d, Max Guests: %d",
		c.Name, c.Address, c.ContactDetails, c.Menu, c.MinGuests, c.MaxGuests)
}
