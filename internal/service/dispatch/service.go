package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/zemzen/booking-service/internal/domain"
)

const (
	collaboratorMailer   = "mailer"
	collaboratorCalendar = "calendar"

	// DefaultTimeout ограничение на все побочные эффекты одного бронирования
	DefaultTimeout = 15 * time.Second
)

// Предупреждения для клиента, бронирование при этом уже сохранено
const (
	WarnEmailFailed    = "Rezervácia je uložená, ale potvrdzovací email sa nepodarilo odoslať."
	WarnCalendarFailed = "Rezervácia je uložená, ale nepodarilo sa ju pridať do kalendára."
)

// Service выполняет уведомления после сохранения бронирования.
// Почта и календарь вызываются независимо: сбой одного не отменяет другой,
// и ни один сбой не откатывает запись.
type Service struct {
	mailer   Mailer
	calendar Calendar
	metrics  Metrics
	timeout  time.Duration
	logger   Logger
}

// NewService создает сервис. nil mailer или calendar означает, что интеграция выключена.
func NewService(mailer Mailer, calendar Calendar, metrics Metrics, timeout time.Duration, logger Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		mailer:   mailer,
		calendar: calendar,
		metrics:  metrics,
		timeout:  timeout,
		logger:   logger,
	}
}

// SlotBooked уведомления о бронировании слота
func (s *Service) SlotBooked(ctx context.Context, booking *domain.SlotBooking) []string {
	var sendMail func(ctx context.Context) error
	if s.mailer != nil {
		sendMail = func(ctx context.Context) error {
			return s.mailer.SendSlotConfirmation(ctx, booking)
		}
	}

	var addEvent func(ctx context.Context) (string, error)
	if s.calendar != nil {
		addEvent = func(ctx context.Context) (string, error) {
			return s.calendar.AddSlotEvent(ctx, booking)
		}
	}

	return s.run(ctx, "slot", booking.ID, sendMail, addEvent)
}

// StayBooked уведомления о бронировании проживания
func (s *Service) StayBooked(ctx context.Context, stay *domain.StayBooking) []string {
	var sendMail func(ctx context.Context) error
	if s.mailer != nil {
		sendMail = func(ctx context.Context) error {
			return s.mailer.SendStayConfirmation(ctx, stay)
		}
	}

	var addEvent func(ctx context.Context) (string, error)
	if s.calendar != nil {
		addEvent = func(ctx context.Context) (string, error) {
			return s.calendar.AddStayEvent(ctx, stay)
		}
	}

	return s.run(ctx, "stay", stay.ID, sendMail, addEvent)
}

func (s *Service) run(
	ctx context.Context,
	kind string,
	id int64,
	sendMail func(ctx context.Context) error,
	addEvent func(ctx context.Context) (string, error),
) []string {
	// Клиент мог уже отключиться, но письмо все равно должно уйти
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	var (
		wg          sync.WaitGroup
		mailFailed  bool
		eventFailed bool
	)

	if sendMail != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sendMail(ctx); err != nil {
				s.logger.Error("Dispatch: failed to send email for %s booking id=%d: %v", kind, id, err)
				s.metrics.IncSideEffectFailure(collaboratorMailer)
				mailFailed = true
				return
			}
			s.logger.Info("Dispatch: email sent for %s booking id=%d", kind, id)
		}()
	}

	if addEvent != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eventID, err := addEvent(ctx)
			if err != nil {
				s.logger.Error("Dispatch: failed to add calendar event for %s booking id=%d: %v", kind, id, err)
				s.metrics.IncSideEffectFailure(collaboratorCalendar)
				eventFailed = true
				return
			}
			s.logger.Info("Dispatch: calendar event %s created for %s booking id=%d", eventID, kind, id)
		}()
	}

	wg.Wait()

	warnings := make([]string, 0)
	if mailFailed {
		warnings = append(warnings, WarnEmailFailed)
	}
	if eventFailed {
		warnings = append(warnings, WarnCalendarFailed)
	}
	return warnings
}
