package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/zemzen/booking-service/internal/domain"
)

// Service запросы доступности поверх снимка данных из репозиториев.
// Сама логика в engine.go, сервис только загружает данные.
type Service struct {
	slotRepo SlotBookingRepository
	stayRepo StayBookingRepository
	policy   domain.BookingPolicy
	logger   Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	slotRepo SlotBookingRepository,
	stayRepo StayBookingRepository,
	policy domain.BookingPolicy,
	logger Logger,
) *Service {
	return &Service{
		slotRepo: slotRepo,
		stayRepo: stayRepo,
		policy:   policy,
		logger:   logger,
	}
}

// BookedSlots занятые слоты на дату
func (s *Service) BookedSlots(ctx context.Context, date time.Time) ([]string, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := domain.Day(date)
	bookings, err := s.slotRepo.GetByDate(ctx, day)
	if err != nil {
		s.logger.Error("BookedSlots: repository error for date=%s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: BookedSlots - repository error: %v", ErrInternal, err)
	}

	slots := ListBookedSlots(bookings, day)
	s.logger.Info("BookedSlots: date=%s, booked=%d", day.Format(domain.DateFormat), len(slots))
	return slots, nil
}

// FullyBookedDates дни, где заняты все слоты, и занятые слоты по каждому дню
func (s *Service) FullyBookedDates(ctx context.Context) (FullyBooked, error) {
	bookings, err := s.slotRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("FullyBookedDates: repository error: %v", err)
		return FullyBooked{}, fmt.Errorf("%w: FullyBookedDates - repository error: %v", ErrInternal, err)
	}

	summary := ListFullyBookedDates(bookings, s.policy.SlotsPerDay())
	s.logger.Info("FullyBookedDates: bookings=%d, days=%d, fully_booked=%d",
		len(bookings), len(summary.PerDate), len(summary.Dates))
	return summary, nil
}

// BookedStayDates занятые дни проживаний
func (s *Service) BookedStayDates(ctx context.Context) ([]time.Time, error) {
	stays, err := s.stayRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("BookedStayDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: BookedStayDates - repository error: %v", ErrInternal, err)
	}

	days := ListBookedStayDates(stays)
	s.logger.Info("BookedStayDates: stays=%d, booked_days=%d", len(stays), len(days))
	return days, nil
}
