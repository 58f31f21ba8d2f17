package dispatch

import (
	"context"

	"github.com/zemzen/booking-service/internal/domain"
)

// Mailer отправка писем гостю и администратору
type Mailer interface {
	SendSlotConfirmation(ctx context.Context, booking *domain.SlotBooking) error
	SendStayConfirmation(ctx context.Context, stay *domain.StayBooking) error
}

// Calendar синхронизация с внешним календарем, возвращает ID события
type Calendar interface {
	AddSlotEvent(ctx context.Context, booking *domain.SlotBooking) (string, error)
	AddStayEvent(ctx context.Context, stay *domain.StayBooking) (string, error)
}

// Metrics счетчик неудачных побочных эффектов
type Metrics interface {
	IncSideEffectFailure(collaborator string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
