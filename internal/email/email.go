package email

import (
	"context"
	"log"

	"github.com/avelhart/skybooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("notify user %d: booking %s %s (flight %d)", event.UserID, event.Reference, event.Type, event.FlightID)
	return nil
}
