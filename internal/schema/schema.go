package schema

import (
	"fmt"
	"time"

	"github.com/mmynk/eventdesk/internal/models"
)

// Form holds the raw text entered for a record, keyed by Field.Name.
// Missing fields read as empty text.
type Form map[string]string

// Schema describes how one record kind is entered.
type Schema[R any] struct {
	// Kind is the collection name, e.g. "employees".
	Kind string
	// Title is the singular display name, e.g. "Employee".
	Title string
	// Fields lists the inputs in form order; the first is the key.
	Fields []Field
	build  func(*reader) R
}

// KeyField returns the field holding the record key.
func (s Schema[R]) KeyField() Field { return s.Fields[0] }

// Build parses the form into a record. The first field that fails to parse
// is reported as an *InvalidInputError.
func (s Schema[R]) Build(form Form) (R, error) {
	r := &reader{form: form, fields: s.Fields}
	rec := s.build(r)
	if r.err != nil {
		var zero R
		return zero, r.err
	}
	return rec, nil
}

// ParseKey parses a raw key as entered for lookup or delete.
func (s Schema[R]) ParseKey(raw string) (int, error) {
	return ParseID(s.KeyField().Label, raw)
}

// reader pulls typed values out of a form and keeps the first error.
type reader struct {
	form   Form
	fields []Field
	err    error
}

func (r *reader) field(name string, kind FieldKind) Field {
	for _, f := range r.fields {
		if f.Name == name {
			if f.Kind != kind {
				panic(fmt.Sprintf("schema: field %q is %s, read as %s", name, f.Kind, kind))
			}
			return f
		}
	}
	panic(fmt.Sprintf("schema: unknown field %q", name))
}

func (r *reader) text(name string) string {
	r.field(name, Text)
	return r.form[name]
}

func (r *reader) id(name string) int {
	f := r.field(name, ID)
	if r.err != nil {
		return 0
	}
	v, err := ParseID(f.Label, r.form[name])
	r.err = err
	return v
}

func (r *reader) integer(name string) int {
	f := r.field(name, Int)
	if r.err != nil {
		return 0
	}
	v, err := ParseInt(f.Label, r.form[name])
	r.err = err
	return v
}

func (r *reader) decimal(name string) float64 {
	f := r.field(name, Decimal)
	if r.err != nil {
		return 0
	}
	v, err := ParseDecimal(f.Label, r.form[name])
	r.err = err
	return v
}

func (r *reader) date(name string) time.Time {
	f := r.field(name, Date)
	if r.err != nil {
		return time.Time{}
	}
	v, err := ParseDate(f.Label, r.form[name])
	r.err = err
	return v
}

func (r *reader) ids(name string) []int {
	f := r.field(name, IDList)
	if r.err != nil {
		return nil
	}
	v, err := ParseIDList(f.Label, r.form[name])
	r.err = err
	return v
}

// Employees is the schema for models.Employee.
var Employees = Schema[models.Employee]{
	Kind:  "employees",
	Title: "Employee",
	Fields: []Field{
		{Name: "employee_id", Label: "Employee ID", Kind: ID},
		{Name: "name", Label: "Name", Kind: Text},
		{Name: "department", Label: "Department", Kind: Text},
		{Name: "job_title", Label: "Job Title", Kind: Text},
		{Name: "basic_salary", Label: "Basic Salary", Kind: Decimal},
		{Name: "manager_id", Label: "Manager ID", Kind: ID},
	},
	build: func(r *reader) models.Employee {
		return models.Employee{
			ID:          r.id("employee_id"),
			Name:        r.text("name"),
			Department:  r.text("department"),
			JobTitle:    r.text("job_title"),
			BasicSalary: r.decimal("basic_salary"),
			ManagerID:   r.id("manager_id"),
		}
	},
}

// Events is the schema for models.Event.
var Events = Schema[models.Event]{
	Kind:  "events",
	Title: "Event",
	Fields: []Field{
		{Name: "event_id", Label: "Event ID", Kind: ID},
		{Name: "type", Label: "Type", Kind: Text},
		{Name: "theme", Label: "Theme", Kind: Text},
		{Name: "date", Label: "Date (YYYY-MM-DD)", Kind: Date},
		{Name: "time", Label: "Time (HH:MM)", Kind: Text},
		{Name: "duration", Label: "Duration (hours)", Kind: Decimal},
		{Name: "venue_address", Label: "Venue Address", Kind: Text},
		{Name: "client_id", Label: "Client ID", Kind: ID},
		{Name: "guests", Label: "Guest IDs (comma-separated)", Kind: IDList},
		{Name: "caterers", Label: "Caterer IDs (comma-separated)", Kind: IDList},
		{Name: "cleaners", Label: "Cleaner IDs (comma-separated)", Kind: IDList},
		{Name: "decorators", Label: "Decorator IDs (comma-separated)", Kind: IDList},
		{Name: "entertainers", Label: "Entertainer IDs (comma-separated)", Kind: IDList},
		{Name: "furniture_suppliers", Label: "Furniture Supplier IDs (comma-separated)", Kind: IDList},
		{Name: "invoice", Label: "Invoice", Kind: Text},
	},
	build: func(r *reader) models.Event {
		return models.Event{
			ID:                 r.id("event_id"),
			Type:               r.text("type"),
			Theme:              r.text("theme"),
			Date:               r.date("date"),
			Time:               r.text("time"),
			Duration:           r.decimal("duration"),
			VenueAddress:       r.text("venue_address"),
			ClientID:           r.id("client_id"),
			Guests:             r.ids("guests"),
			Caterers:           r.ids("caterers"),
			Cleaners:           r.ids("cleaners"),
			Decorators:         r.ids("decorators"),
			Entertainers:       r.ids("entertainers"),
			FurnitureSuppliers: r.ids("furniture_suppliers"),
			Invoice:            r.text("invoice"),
		}
	},
}

// Clients is the schema for models.Client.
var Clients = Schema[models.Client]{
	Kind:  "clients",
	Title: "Client",
	Fields: []Field{
		{Name: "client_id", Label: "Client ID", Kind: ID},
		{Name: "name", Label: "Name", Kind: Text},
		{Name: "address", Label: "Address", Kind: Text},
		{Name: "contact_details", Label: "Contact Details", Kind: Text},
		{Name: "budget", Label: "Budget", Kind: Decimal},
	},
	build: func(r *reader) models.Client {
		return models.Client{
			ID:             r.id("client_id"),
			Name:           r.text("name"),
			Address:        r.text("address"),
			ContactDetails: r.text("contact_details"),
			Budget:         r.decimal("budget"),
		}
	},
}

// Guests is the schema for models.Guest.
var Guests = Schema[models.Guest]{
	Kind:  "guests",
	Title: "Guest",
	Fields: []Field{
		{Name: "guest_id", Label: "Guest ID", Kind: ID},
		{Name: "name", Label: "Name", Kind: Text},
		{Name: "address", Label: "Address", Kind: Text},
		{Name: "contact_details", Label: "Contact Details", Kind: Text},
	},
	build: func(r *reader) models.Guest {
		return models.Guest{
			ID:             r.id("guest_id"),
			Name:           r.text("name"),
			Address:        r.text("address"),
			ContactDetails: r.text("contact_details"),
		}
	},
}

// Suppliers is the schema for models.Supplier.
var Suppliers = Schema[models.Supplier]{
	Kind:  "suppliers",
	Title: "Supplier",
	Fields: []Field{
		{Name: "supplier_id", Label: "Supplier ID", Kind: ID},
		{Name: "name", Label: "Name", Kind: Text},
		{Name: "service", Label: "Service", Kind: Text},
		{Name: "contact_details", Label: "Contact Details", Kind: Text},
	},
	build: func(r *reader) models.Supplier {
		return models.Supplier{
			ID:             r.id("supplier_id"),
			Name:           r.text("name"),
			Service:        r.text("service"),
			ContactDetails: r.text("contact_details"),
		}
	},
}

// Venues is the schema for models.Venue.
var Venues = Schema[models.Venue]{
	Kind:  "venues",
	Title: "Venue",
	Fields: []Field{
		{Name: "venue_id", Label: "Venue ID", Kind: ID},
		{Name: "name", Label: "Name", Kind: Text},
		{Name: "address", Label: "Address", Kind: Text},
		{Name: "contact", Label: "Contact", Kind: Text},
		{Name: "min_guests", Label: "Min Guests", Kind: Int},
		{Name: "max_guests", Label: "Max Guests", Kind: Int},
	},
	build: func(r *reader) models.Venue {
		return models.Venue{
			ID:        r.id("venue_id"),
			Name:      r.text("name"),
			Address:   r.text("address"),
			Contact:   r.text("contact"),
			MinGuests: r.integer("min_guests"),
			MaxGuests: r.integer("max_guests"),
		}
	},
}

// Caterers is the schema for models.Caterer.
var Caterers = Schema[models.Caterer]{
	Kind:  "caterers",
	Title: "Caterer",
	Fields: []Field{
		{Name: "caterer_id", Label: "Caterer ID", Kind: ID},
		{Name: "name", Label: "Name", Kind: Text},
		{Name: "address", Label: "Address", Kind: Text},
		{Name: "contact_details", Label: "Contact Details", Kind: Text},
		{Name: "menu", Label: "Menu", Kind: Text},
		{Name: "min_guests", Label: "Min Guests", Kind: Int},
		{Name: "max_guests", Label: "Max Guests", Kind: Int},
	},
	build: func(r *reader) models.Caterer {
		return models.Caterer{
			ID:             r.id("caterer_id"),
			Name:           r.text("name"),
			Address:        r.text("address"),
			ContactDetails: r.text("contact_details"),
			Menu:           r.text("menu"),
			MinGuests:      r.integer("min_guests"),
			MaxGuests:      r.integer("max_guests"),
		}
	},
}
