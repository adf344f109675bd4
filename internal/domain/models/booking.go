package models

import "backoffice/internal/pricing"

// Booking captures a package booking header. Traveler counts are stored as
// entered on the form; turning them into integers is the aggregator's job so
// an unparseable value can be surfaced instead of silently becoming zero.
type Booking struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	PackageType   string `json:"package_type"` // umrah / hajj / ticketing
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	AgentID       int64  `json:"agent_id,omitempty"`

	AdultsRaw   string `json:"adults"`
	ChildrenRaw string `json:"children"`
	InfantsRaw  string `json:"infants"`

	DepartureDate string `json:"departure_date"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// BookingSelections holds everything the customer picked on the form.
type BookingSelections struct {
	Hotels    []pricing.HotelSelection   `json:"hotels"`
	Transport []pricing.ServiceSelection `json:"transport"`
	Food      []pricing.ServiceSelection `json:"food"`
	Ziarat    []pricing.ServiceSelection `json:"ziarat"`
	Visa      pricing.ServiceSelection   `json:"visa"`
	Flight    pricing.ServiceSelection   `json:"flight"`
}

// BookingDetail is a booking plus its selections.
type BookingDetail struct {
	Booking
	Selections BookingSelections `json:"selections"`
}

// BookingUpdate supports PATCH-style updates via key presence.
type BookingUpdate struct {
	CustomerName  *string
	CustomerPhone *string
	Status        *string
	Notes         *string
	DepartureDate *string
}
