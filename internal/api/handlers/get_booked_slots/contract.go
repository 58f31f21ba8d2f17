package get_booked_slots

import (
	"context"
	"time"
)

type AvailabilityService interface {
	BookedSlots(ctx context.Context, date time.Time) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
