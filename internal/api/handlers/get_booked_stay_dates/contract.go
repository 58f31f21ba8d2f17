package get_booked_stay_dates

import (
	"context"
	"time"
)

type AvailabilityService interface {
	BookedStayDates(ctx context.Context) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
