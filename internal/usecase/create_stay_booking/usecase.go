package create_stay_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zemzen/booking-service/internal/domain"
	stayRepo "github.com/zemzen/booking-service/internal/infra/storage/staybooking"
	"github.com/zemzen/booking-service/internal/service/availability"
	"github.com/zemzen/booking-service/pkg/pgerrors"
)

// UseCase use case для бронирования проживания
type UseCase struct {
	stayRepo    StayBookingRepository
	txManager   TransactionManager
	sideEffects SideEffects
	metrics     Metrics
	policy      domain.BookingPolicy
	logger      Logger
	now         func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	stayRepo StayBookingRepository,
	txManager TransactionManager,
	sideEffects SideEffects,
	metrics Metrics,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		stayRepo:    stayRepo,
		txManager:   txManager,
		sideEffects: sideEffects,
		metrics:     metrics,
		policy:      policy,
		logger:      logger,
		now:         time.Now,
	}
}

// MinNights минимальная длина проживания
func (uc *UseCase) MinNights() int {
	return uc.policy.MinStayNights
}

// MaxNights максимальная длина проживания
func (uc *UseCase) MaxNights() int {
	return uc.policy.MaxStayNights
}

// Execute выполняет use case бронирования проживания.
// Чтение существующих проживаний, проверка пересечения и запись идут в одной
// SERIALIZABLE транзакции: из двух пересекающихся параллельных запросов один
// получит ошибку сериализации.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)
	uc.logger.Info("CreateStayBooking: email=%s, start=%s, end=%s", req.Email, req.Start, req.End)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateStayBooking: validation failed: %v", err)
		return nil, err
	}

	start, end, err := parseRange(req, uc.policy, uc.policy.Today(uc.now()))
	if err != nil {
		uc.logger.Warn("CreateStayBooking: validation failed: %v", err)
		return nil, err
	}

	stay := &domain.StayBooking{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		StartDate: start,
		EndDate:   end,
		Notes:     req.Notes,
	}

	var result *domain.StayBooking

	// 2. Проверка пересечений и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.stayRepo.GetAll(txCtx)
		if err != nil {
			return fmt.Errorf("failed to get stays: %w", err)
		}

		if err := availability.CheckStayConflict(existing, stay); err != nil {
			uc.logger.Warn("CreateStayBooking: %v", err)
			return fmt.Errorf("%w: %w", ErrStayConflict, err)
		}

		created, err := uc.stayRepo.Create(txCtx, stay)
		if err != nil {
			return fmt.Errorf("failed to create stay: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrStayConflict):
			return nil, err
		case errors.Is(err, stayRepo.ErrSerialization), pgerrors.IsSerializationFailure(err):
			uc.logger.Warn("CreateStayBooking: concurrent booking for %s - %s: %v",
				start.Format(domain.DateFormat), end.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentBooking, err)
		default:
			uc.logger.Error("CreateStayBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncBookingsCreated(string(domain.KindStay))
	uc.logger.Info("CreateStayBooking: successfully created stay id=%d, nights=%d", result.ID, result.Nights())

	// 3. Уведомления после коммита
	warnings := uc.sideEffects.StayBooked(ctx, result)

	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		Email:     result.Email,
		Phone:     result.Phone,
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		Nights:    result.Nights(),
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
		Warnings:  warnings,
	}, nil
}
