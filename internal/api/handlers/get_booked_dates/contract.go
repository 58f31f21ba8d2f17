package get_booked_dates

import (
	"context"

	"github.com/zemzen/booking-service/internal/service/availability"
)

type AvailabilityService interface {
	FullyBookedDates(ctx context.Context) (availability.FullyBooked, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
