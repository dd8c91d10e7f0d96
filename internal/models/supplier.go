package models

import "fmt"

// Supplier represents a provider of a service for events
// (cleaning, decorations, entertainment, furniture, ...).
type Supplier struct {
	ID int `json:"supplier_id" bson:"supplier_id"`

	Name string `json:"name" bson:"name"`

	// Service describes what the supplier provides. Free text.
	Service string `json:"service" bson:"service"`

	ContactDetails string `json:"contact_details" bson:"contact_details"`
}

func (s Supplier) Key() int { return s.ID }

func (s Supplier) Details() string {
	return fmt.Sprintf("Name: %s, Service: %s, Contact: %s", s.Name, s.Service, s.ContactDetails)
}
