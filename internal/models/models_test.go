package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole value keeps .0", 50000, "50000.0"},
		{"zero", 0, "0.0"},
		{"fraction", 2.5, "2.5"},
		{"negative", -12.75, "-12.75"},
		{"shortest digits", 0.1, "0.1"},
		{"large switches to exponent", 1e16, "1e+16"},
		{"small switches to exponent", 0.00001, "1e-05"},
		{"infinity", math.Inf(1), "inf"},
		{"not a number", math.NaN(), "nan"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatDecimal(tc.in))
		})
	}
}

func TestDetails(t *testing.T) {
	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		record interface{ Details() string }
		want   string
	}{
		{
			name:   "employee",
			record: Employee{ID: 1, Name: "Ana", Department: "Sales", JobTitle: "Rep", BasicSalary: 50000.0, ManagerID: 0},
			want:   "Ana, Sales, Rep, Salary: $50000.0, Manager ID: 0",
		},
		{
			name: "event",
			record: Event{
				ID: 7, Type: "Wedding", Theme: "Garden", Date: date, Time: "14:00", Duration: 5,
				VenueAddress: "1 Main St", ClientID: 3, Guests: []int{1, 2, 3},
				Caterers: []int{4}, Cleaners: nil, Decorators: []int{5, 6}, Invoice: "INV-1",
			},
			want: "Type: Wedding, Theme: Garden, Date: 2024-06-01, Time: 14:00, Duration: 5.0 hours, " +
				"Venue: 1 Main St, Client ID: 3, Guests: 1, 2, 3, Catering: 4, Cleaning: , " +
				"Decorations: 5, 6, Entertainment: , Furniture: , Invoice: INV-1",
		},
		{
			name:   "client",
			record: Client{ID: 99, Name: "Acme", Address: "2 High St", ContactDetails: "acme@example.com", Budget: 12500.5},
			want:   "Name: Acme, Address: 2 High St, Contact: acme@example.com, Budget: $12500.5",
		},
		{
			name:   "guest",
			record: Guest{ID: 1, Name: "Bo", Address: "3 Low Rd", ContactDetails: "555-2222"},
			want:   "Name: Bo, Address: 3 Low Rd, Contact: 555-2222",
		},
		{
			name:   "supplier",
			record: Supplier{ID: 2, Name: "Shiny", Service: "Cleaning", ContactDetails: "555-3333"},
			want:   "Name: Shiny, Service: Cleaning, Contact: 555-3333",
		},
		{
			name:   "venue",
			record: Venue{ID: 5, Name: "Hall A", Address: "1 Main St", Contact: "555-1111", MinGuests: 10, MaxGuests: 200},
			want:   "Name: Hall A, Address: 1 Main St, Contact: 555-1111, Capacity: 10-200 guests",
		},
		{
			name:   "caterer",
			record: Caterer{ID: 4, Name: "Feast", Address: "9 Oak Ave", ContactDetails: "555-4444", Menu: "Tapas", MinGuests: 20, MaxGuests: 150},
			want:   "Name: Feast, Address: 9 Oak Ave, Contact: 555-4444, Menu: Tapas, Min Guests: 20, Max Guests: 150",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.record.Details())
		})
	}
}

func TestMinGuestsAboveMaxIsAccepted(t *testing.T) {
	v := Venue{ID: 1, Name: "Odd", MinGuests: 300, MaxGuests: 10}
	assert.Equal(t, "Name: Odd, Address: , Contact: , Capacity: 300-10 guests", v.Details())
}
