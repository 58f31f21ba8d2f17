package importer

import (
	"context"

	"github.com/zemzen/booking-service/internal/domain"
)

// SlotBookingRepository интерфейс репозитория wellness-бронирований
type SlotBookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.SlotBooking, error)
	Create(ctx context.Context, booking *domain.SlotBooking) (*domain.SlotBooking, error)
}

// StayBookingRepository интерфейс репозитория проживаний
type StayBookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.StayBooking, error)
	Create(ctx context.Context, stay *domain.StayBooking) (*domain.StayBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
