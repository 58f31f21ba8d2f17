package importer

import (
	"context"
	"fmt"

	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/internal/service/availability"
)

// Report итог импорта
type Report struct {
	SlotsImported int
	SlotsSkipped  int // уже занятые (дата, слот)
	StaysImported int
	StaysSkipped  int // пересекаются с уже сохраненными
}

// Service переносит исторические выгрузки в базу.
// Записи, конфликтующие с уже сохраненными, пропускаются, поэтому повторный запуск безопасен.
type Service struct {
	slotRepo SlotBookingRepository
	stayRepo StayBookingRepository
	dryRun   bool
	logger   Logger
}

// NewService создает сервис импорта. В режиме dryRun ничего не пишет.
func NewService(slotRepo SlotBookingRepository, stayRepo StayBookingRepository, dryRun bool, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		stayRepo: stayRepo,
		dryRun:   dryRun,
		logger:   logger,
	}
}

// ImportSlots импортирует wellness-бронирования
func (s *Service) ImportSlots(ctx context.Context, bookings []*domain.SlotBooking, report *Report) error {
	existing, err := s.slotRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("importer: failed to load slot bookings: %w", err)
	}

	for _, b := range bookings {
		if err := availability.CheckSlotConflict(existing, b); err != nil {
			s.logger.Warn("Import: skip slot booking %s (%s): %v", b.Email, b.Timeslot, err)
			report.SlotsSkipped++
			continue
		}

		if !s.dryRun {
			if _, err := s.slotRepo.Create(ctx, b); err != nil {
				return fmt.Errorf("importer: failed to create slot booking %s %s: %w",
					b.Date.Format(domain.DateFormat), b.Timeslot, err)
			}
		}

		existing = append(existing, b)
		report.SlotsImported++
	}

	return nil
}

// ImportStays импортирует проживания
func (s *Service) ImportStays(ctx context.Context, stays []*domain.StayBooking, report *Report) error {
	existing, err := s.stayRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("importer: failed to load stays: %w", err)
	}

	for _, stay := range stays {
		if err := availability.CheckStayConflict(existing, stay); err != nil {
			s.logger.Warn("Import: skip stay %s: %v", stay.Email, err)
			report.StaysSkipped++
			continue
		}

		if !s.dryRun {
			if _, err := s.stayRepo.Create(ctx, stay); err != nil {
				return fmt.Errorf("importer: failed to create stay %s - %s: %w",
					stay.StartDate.Format(domain.DateFormat), stay.EndDate.Format(domain.DateFormat), err)
			}
		}

		existing = append(existing, stay)
		report.StaysImported++
	}

	return nil
}
