package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
)

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightStatusScheduled, FlightStatusDelayed, FlightStatusCancelled:
		return true
	}
	return false
}

type Flight struct {
	ID                   int64
	Name                 string
	AirplaneID           int64
	SourceAirportID      int64
	DestinationAirportID int64
	DepartureTime        time.Time
	ArrivalTime          time.Time
	Status               FlightStatus
	TotalSeats           int
	AvailableSeats       int
	PriceCents           int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
