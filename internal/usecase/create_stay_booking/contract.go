package create_stay_booking

import (
	"context"

	"github.com/zemzen/booking-service/internal/domain"
)

// StayBookingRepository интерфейс репозитория проживаний
type StayBookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.StayBooking, error)
	Create(ctx context.Context, stay *domain.StayBooking) (*domain.StayBooking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SideEffects уведомления после сохранения (почта, календарь)
type SideEffects interface {
	StayBooked(ctx context.Context, stay *domain.StayBooking) []string
}

// Metrics счетчики бизнес-событий
type Metrics interface {
	IncBookingsCreated(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
