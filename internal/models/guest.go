package models

import "fmt"

// Guest represents a person attending an event.
type Guest struct {
	ID             int    `json:"guest_id" bson:"guest_id"`
	Name           string `json:"name" bson:"name"`
	Address        string `json:"address" bson:"address"`
	ContactDetails string `json:"contact_details" bson:"contact_details"`
}

func (g Guest) Key() int { return g.ID }

func (g Guest) Details() string {
	return fmt.Sprintf("Name: %s, Address: %s, Contact: %s", g.Name, g.Address, g.ContactDetails)
}
