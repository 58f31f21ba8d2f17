package domain

import "time"

// BookingPolicy правила бронирования, задаются в конфигурации
type BookingPolicy struct {
	Timeslots      []string       // все метки слотов дня
	MinStayNights  int            // минимальная длина проживания в ночах
	MaxStayNights  int            // максимальная длина проживания в ночах
	MaxAdvanceDays int            // на сколько дней вперед можно бронировать
	Location       *time.Location // часовой пояс, в котором считается "сегодня"; nil = UTC
}

// SlotsPerDay количество слотов, при котором день считается полностью занятым
func (p BookingPolicy) SlotsPerDay() int {
	return len(p.Timeslots)
}

// IsKnownTimeslot проверяет, что метка входит в список слотов
func (p BookingPolicy) IsKnownTimeslot(label string) bool {
	for _, ts := range p.Timeslots {
		if ts == label {
			return true
		}
	}
	return false
}

// Today текущий календарный день в часовом поясе заведения
func (p BookingPolicy) Today(now time.Time) time.Time {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	return Day(now.In(loc))
}

// LastBookableDay последний день, на который еще принимаются бронирования
func (p BookingPolicy) LastBookableDay(today time.Time) time.Time {
	return Day(today).AddDate(0, 0, p.MaxAdvanceDays)
}

// DefaultBookingPolicy значения по умолчанию
func DefaultBookingPolicy() BookingPolicy {
	timeslots := make([]string, len(DefaultTimeslots))
	copy(timeslots, DefaultTimeslots)
	return BookingPolicy{
		Timeslots:      timeslots,
		MinStayNights:  DefaultMinStayNights,
		MaxStayNights:  DefaultMaxStayNights,
		MaxAdvanceDays: DefaultMaxAdvanceDays,
	}
}
