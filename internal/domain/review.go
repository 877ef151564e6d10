package domain

import "time"

type Review struct {
	ID        int64
	UserID    int64
	FlightID  int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}
