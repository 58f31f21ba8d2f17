package domain

import "time"

// BookingKind вид бронирования, используется в метриках и логах
type BookingKind string

const (
	KindSlot BookingKind = "slot"
	KindStay BookingKind = "stay"
)

// SlotBooking бронирование wellness-процедуры на фиксированный временной слот дня.
// Пара (Date, Timeslot) уникальна.
type SlotBooking struct {
	ID       int64
	Name     string
	Email    string
	Phone    *string
	Date     time.Time // календарный день, полночь UTC
	Timeslot string    // метка слота, например "14:30-16:30"
	Package  string
	Notes    *string

	CreatedAt time.Time
}

// StayBooking бронирование проживания на полуинтервал дней [StartDate, EndDate).
// День выезда свободен для следующего гостя.
type StayBooking struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	StartDate time.Time // день заезда (включительно)
	EndDate   time.Time // день выезда (не включается)
	Notes     *string

	CreatedAt time.Time
}

// Nights количество ночей проживания
func (s *StayBooking) Nights() int {
	return DaysBetween(s.StartDate, s.EndDate)
}
