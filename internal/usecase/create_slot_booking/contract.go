package create_slot_booking

import (
	"context"
	"time"

	"github.com/zemzen/booking-service/internal/domain"
)

// SlotBookingRepository интерфейс репозитория wellness-бронирований
type SlotBookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.SlotBooking, error)
	Create(ctx context.Context, booking *domain.SlotBooking) (*domain.SlotBooking, error)
}

// SideEffects уведомления после сохранения (почта, календарь).
// Возвращает предупреждения для клиента, ошибку не возвращает никогда.
type SideEffects interface {
	SlotBooked(ctx context.Context, booking *domain.SlotBooking) []string
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
