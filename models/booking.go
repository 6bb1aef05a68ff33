package models

import "time"

// Booking represents a booking record as held by the client.
// The currency is snapshotted from the service at quote time and stays fixed
// even if the catalog price definition changes later. Once a booking reaches
// a terminal status it is immutable.
type Booking struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"ownerId"`
	SitterID         string    `json:"sitterId"`
	ServiceID        string    `json:"serviceId"`
	Date             string    `json:"date"`                // "YYYY-MM-DD"
	StartTime        string    `json:"startTime,omitempty"` // "HH:MM", hourly services only
	EndTime          string    `json:"endTime,omitempty"`   // "HH:MM", hourly services only
	DurationUnits    float64   `json:"duration"`            // hours or days depending on the service
	PetIDs           []string  `json:"petIds"`
	PricePerUnit     float64   `json:"pricePerUnit"`
	TotalPrice       float64   `json:"totalPrice"`
	Currency         Currency  `json:"currency"`
	Status           string    `json:"status"`
	SpecialRequests  string    `json:"specialRequests,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// BookingRequest is the payload collected by the booking form before a quote
// is computed and the booking is submitted.
type BookingRequest struct {
	SitterID         string  `json:"sitterId" validate:"required"`
	ServiceID        string  `json:"service" validate:"required"`
	Pets             []Pet   `json:"pets" validate:"required,min=1,dive"`
	Date             string  `json:"date" validate:"required"`
	StartTime        string  `json:"startTime,omitempty"`
	EndTime          string  `json:"endTime,omitempty"`
	Days             int     `json:"days,omitempty"` // daily/fixed services, defaults to 1
	SpecialRequests  string  `json:"specialRequests,omitempty"`
	EmergencyContact string  `json:"emergencyContact,omitempty"`
}

// BookingPayload is the wire shape sent to the bookings endpoint.
type BookingPayload struct {
	SitterID         string  `json:"sitterId"`
	Service          string  `json:"service"`
	Pets             []Pet   `json:"pets"`
	Date             string  `json:"date"`
	StartTime        *string `json:"startTime"`
	EndTime          *string `json:"endTime"`
	Duration         float64 `json:"duration"`
	ServiceUnit      string  `json:"serviceUnit"`
	Price            float64 `json:"price"`
	SpecialRequests  string  `json:"specialRequests"`
	EmergencyContact string  `json:"emergencyContact"`
}
