package create_slot_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zemzen/booking-service/internal/domain"
	slotRepo "github.com/zemzen/booking-service/internal/infra/storage/slotbooking"
	"github.com/zemzen/booking-service/internal/service/availability"
)

// UseCase use case для бронирования wellness-слота
type UseCase struct {
	slotRepo    SlotBookingRepository
	sideEffects SideEffects
	metrics     Metrics
	policy      domain.BookingPolicy
	logger      Logger
	now         func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotBookingRepository,
	sideEffects SideEffects,
	metrics Metrics,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		sideEffects: sideEffects,
		metrics:     metrics,
		policy:      policy,
		logger:      logger,
		now:         time.Now,
	}
}

// Execute выполняет use case бронирования слота.
// Проверка конфликта делается по снимку бронирований на дату, а гонку двух
// одновременных запросов разрешает уникальный индекс (booking_date, timeslot).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)
	uc.logger.Info("CreateSlotBooking: email=%s, date=%s, timeslot=%s, package=%s",
		req.Email, req.Date, req.Timeslot, req.Package)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.policy); err != nil {
		uc.logger.Warn("CreateSlotBooking: validation failed: %v", err)
		return nil, err
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateSlotBooking: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if err := checkBookingWindow(date, uc.policy, uc.policy.Today(uc.now())); err != nil {
		uc.logger.Warn("CreateSlotBooking: %v", err)
		return nil, err
	}

	booking := &domain.SlotBooking{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Date:     date,
		Timeslot: req.Timeslot,
		Package:  req.Package,
		Notes:    req.Notes,
	}

	// 2. Проверяем конфликт с уже сохраненными бронированиями на эту дату
	existing, err := uc.slotRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("CreateSlotBooking: failed to get bookings for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if err := availability.CheckSlotConflict(existing, booking); err != nil {
		uc.logger.Warn("CreateSlotBooking: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrSlotTaken, err)
	}

	// 3. Сохраняем
	created, err := uc.slotRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateSlotBooking: lost race for date=%s, timeslot=%s",
				date.Format(domain.DateFormat), req.Timeslot)
			return nil, fmt.Errorf("%w: %w", ErrSlotTaken,
				&availability.SlotConflictError{Date: date, Timeslot: req.Timeslot})
		}
		uc.logger.Error("CreateSlotBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingsCreated(string(domain.KindSlot))
	uc.logger.Info("CreateSlotBooking: successfully created booking id=%d", created.ID)

	// 4. Уведомления. Их сбой не отменяет сохраненное бронирование
	warnings := uc.sideEffects.SlotBooked(ctx, created)

	return &Response{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		Phone:     created.Phone,
		Date:      created.Date,
		Timeslot:  created.Timeslot,
		Package:   created.Package,
		Notes:     created.Notes,
		CreatedAt: created.CreatedAt,
		Warnings:  warnings,
	}, nil
}
