package commands

import (
	"context"
	"encoding/json"
	"time"

	"bay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	topicBookingConfirmed = "booking_confirmed"
	topicBookingCancelled = "booking_cancelled"
	topicRefundFailed     = "refund_failed"
)

func enqueueBookingJob(ctx context.Context, tx shared.Tx, topic string, bookingID uuid.UUID, extra map[string]any, now time.Time) error {
	payload := map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	}
	for k, v := range extra {
		payload[k] = v
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, "email", topic, body, now)
}
