package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTimeslot возвращается, если метка слота не в формате "HH:MM-HH:MM"
var ErrInvalidTimeslot = errors.New("invalid timeslot label")

const clockFormat = "15:04"

// Clock время суток по настенным часам
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// Timeslot разобранная метка временного слота, например "14:30-16:30"
type Timeslot struct {
	Label string
	Start Clock
	End   Clock
}

// ParseTimeslot разбирает метку вида "HH:MM-HH:MM" (пробелы вокруг дефиса допускаются)
func ParseTimeslot(label string) (Timeslot, error) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return Timeslot{}, fmt.Errorf("%w: %q", ErrInvalidTimeslot, label)
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return Timeslot{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeslot, label, err)
	}

	end, err := parseClock(parts[1])
	if err != nil {
		return Timeslot{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeslot, label, err)
	}

	if end.minutes() <= start.minutes() {
		return Timeslot{}, fmt.Errorf("%w: %q: end must be after start", ErrInvalidTimeslot, label)
	}

	return Timeslot{Label: label, Start: start, End: end}, nil
}

// StartOn момент начала слота в указанный день по часам пояса loc.
// Время собирается из часов и минут, а не прибавляется к полуночи:
// в дни перехода на летнее/зимнее время сутки длятся 23 или 25 часов.
func (t Timeslot) StartOn(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Start.Hour, t.Start.Minute, 0, 0, loc)
}

// Duration длительность слота по метке
func (t Timeslot) Duration() time.Duration {
	return time.Duration(t.End.minutes()-t.Start.minutes()) * time.Minute
}

func parseClock(s string) (Clock, error) {
	parsed, err := time.Parse(clockFormat, strings.TrimSpace(s))
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}
