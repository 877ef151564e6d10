package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID         int64
	Reference  string
	UserID     int64
	FlightID   int64
	PriceCents int64
	Status     BookingStatus
	Passengers []Passenger
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Passenger struct {
	ID             int64
	BookingID      int64
	Name           string
	Age            int
	PassportNumber string
}
