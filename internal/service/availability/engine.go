package availability

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zemzen/booking-service/internal/domain"
)

// ErrConflict общий признак конфликта бронирований, проверяется через errors.Is
var ErrConflict = errors.New("availability: booking conflict")

// SlotConflictError слот (Date, Timeslot) уже занят
type SlotConflictError struct {
	Date     time.Time
	Timeslot string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("availability: timeslot %s on %s is already booked",
		e.Timeslot, e.Date.Format(domain.DateFormat))
}

func (e *SlotConflictError) Is(target error) bool {
	return target == ErrConflict
}

// StayConflictError запрошенное проживание пересекается с существующими по дням Days
type StayConflictError struct {
	Days []time.Time
}

func (e *StayConflictError) Error() string {
	days := make([]string, len(e.Days))
	for i, d := range e.Days {
		days[i] = d.Format(domain.DateFormat)
	}
	return fmt.Sprintf("availability: stay overlaps existing bookings on %s", strings.Join(days, ", "))
}

func (e *StayConflictError) Is(target error) bool {
	return target == ErrConflict
}

// FullyBooked сводка по занятым дням
type FullyBooked struct {
	Dates   []time.Time            // дни, где заняты все слоты, по возрастанию
	PerDate map[time.Time][]string // все занятые слоты по дням, в порядке записей
}

// CheckSlotConflict конфликт только при точном совпадении дня и метки слота
func CheckSlotConflict(existing []*domain.SlotBooking, proposed *domain.SlotBooking) error {
	day := domain.Day(proposed.Date)
	for _, b := range existing {
		if b.Timeslot == proposed.Timeslot && domain.Day(b.Date).Equal(day) {
			return &SlotConflictError{Date: day, Timeslot: proposed.Timeslot}
		}
	}
	return nil
}

// ListBookedSlots различные занятые метки на дату, отсортированные
func ListBookedSlots(existing []*domain.SlotBooking, date time.Time) []string {
	day := domain.Day(date)
	seen := make(map[string]struct{})
	result := make([]string, 0)

	for _, b := range existing {
		if !domain.Day(b.Date).Equal(day) {
			continue
		}
		if _, ok := seen[b.Timeslot]; ok {
			continue
		}
		seen[b.Timeslot] = struct{}{}
		result = append(result, b.Timeslot)
	}

	sort.Strings(result)
	return result
}

// ListFullyBookedDates группирует бронирования по дням.
// День полностью занят, если количество РАЗЛИЧНЫХ меток >= slotsPerDay.
func ListFullyBookedDates(existing []*domain.SlotBooking, slotsPerDay int) FullyBooked {
	perDate := make(map[time.Time][]string)
	distinct := make(map[time.Time]map[string]struct{})

	for _, b := range existing {
		day := domain.Day(b.Date)
		perDate[day] = append(perDate[day], b.Timeslot)
		if distinct[day] == nil {
			distinct[day] = make(map[string]struct{})
		}
		distinct[day][b.Timeslot] = struct{}{}
	}

	dates := make([]time.Time, 0)
	for day, labels := range distinct {
		if len(labels) >= slotsPerDay {
			dates = append(dates, day)
		}
	}
	sortDays(dates)

	return FullyBooked{Dates: dates, PerDate: perDate}
}

// CheckStayConflict сравнивает дни полуинтервала [start, end) предложенного проживания
// с объединением дней существующих проживаний. Стыковка "выезд = заезд" не конфликт.
func CheckStayConflict(existing []*domain.StayBooking, proposed *domain.StayBooking) error {
	booked := bookedDays(existing)

	var overlap []time.Time
	for _, day := range CoveredDays(proposed.StartDate, proposed.EndDate) {
		if _, ok := booked[day]; ok {
			overlap = append(overlap, day)
		}
	}

	if len(overlap) > 0 {
		return &StayConflictError{Days: overlap}
	}
	return nil
}

// ListBookedStayDates все занятые дни (без дней выезда), по возрастанию
func ListBookedStayDates(existing []*domain.StayBooking) []time.Time {
	booked := bookedDays(existing)

	result := make([]time.Time, 0, len(booked))
	for day := range booked {
		result = append(result, day)
	}
	sortDays(result)
	return result
}

// CoveredDays дни полуинтервала [start, end)
func CoveredDays(start, end time.Time) []time.Time {
	last := domain.Day(end)
	days := make([]time.Time, 0)
	for d := domain.Day(start); d.Before(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func bookedDays(stays []*domain.StayBooking) map[time.Time]struct{} {
	booked := make(map[time.Time]struct{})
	for _, s := range stays {
		for _, day := range CoveredDays(s.StartDate, s.EndDate) {
			booked[day] = struct{}{}
		}
	}
	return booked
}

func sortDays(days []time.Time) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
}
