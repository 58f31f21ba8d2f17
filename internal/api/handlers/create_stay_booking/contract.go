package create_stay_booking

import (
	"context"

	createStayBooking "github.com/zemzen/booking-service/internal/usecase/create_stay_booking"
)

type CreateStayBookingUseCase interface {
	Execute(ctx context.Context, req *createStayBooking.Request) (*createStayBooking.Response, error)
	MinNights() int
	MaxNights() int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
