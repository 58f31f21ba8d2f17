package availability

import (
	"context"
	"time"

	"github.com/zemzen/booking-service/internal/domain"
)

// SlotBookingRepository интерфейс репозитория wellness-бронирований
type SlotBookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.SlotBooking, error)
	GetAll(ctx context.Context) ([]*domain.SlotBooking, error)
}

// StayBookingRepository интерфейс репозитория проживаний
type StayBookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.StayBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
