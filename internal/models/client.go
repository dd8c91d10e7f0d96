package models

import "fmt"

// Client represents a customer who organizes events.
type Client struct {
	ID             int     `json:"client_id" bson:"client_id"`
	Name           string  `json:"name" bson:"name"`
	Address        string  `json:"address" bson:"address"`
	ContactDetails string  `json:"contact_details" bson:"contact_details"`
	Budget         float64 `json:"budget" bson:"budget"`
}

func (c Client) Key() int { return c.ID }

// Details renders the client for display.
func (c Client) Details() string {
	return fmt.Sprintf("Name: %s, Address: %s, Contact: %s, Budget: $%s",
		c.Name, c.Address, c.ContactDetails, formatDecimal(c.Budget))
}
