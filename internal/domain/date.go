package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDateFormat дата не в формате DD/MM/YYYY или YYYY-MM-DD
var ErrInvalidDateFormat = errors.New("invalid date format")

// Day отбрасывает время и приводит дату к полуночи UTC.
// Все сравнения дней в сервисе выполняются над значениями Day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate принимает DD/MM/YYYY (формат сайта) или YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DisplayDateFormat, DateFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

// FormatDisplayDate DD/MM/YYYY
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateFormat)
}

// DaysBetween количество календарных дней от start до end (может быть отрицательным).
// Считается по Unix-секундам полуночей UTC: time.Duration ограничен ~292 годами.
func DaysBetween(start, end time.Time) int {
	return int((Day(end).Unix() - Day(start).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
