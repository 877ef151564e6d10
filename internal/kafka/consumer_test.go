package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/avelhart/skybooking/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsumer(t *testing.T) {
	consumer := NewConsumer(config.KafkaConfig{
		Brokers:            []string{"localhost:9092"},
		NotificationsTopic: "booking-notifications",
		GroupID:            "worker",
	})
	assert.NotNil(t, consumer)
	assert.NoError(t, consumer.Close())
}

func TestDecodeBookingEvent(t *testing.T) {
	payload, err := json.Marshal(BookingEvent{
		Type:       "booking_cancelled",
		Reference:  "BK-1",
		BookingID:  1,
		FlightID:   7,
		UserID:     42,
		PriceCents: 20000,
		Status:     "CANCELLED",
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	event, err := decodeBookingEvent(payload)
	require.NoError(t, err)
	assert.Equal(t, "booking_cancelled", event.Type)
	assert.Equal(t, int64(20000), event.PriceCents)
}

func TestDecodeBookingEvent_Malformed(t *testing.T) {
	_, err := decodeBookingEvent([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecodeBookingEvent_MissingReference(t *testing.T) {
	_, err := decodeBookingEvent([]byte(`{"type":"booking_created"}`))
	assert.Error(t, err)
}
