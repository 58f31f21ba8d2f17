package create_slot_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zemzen/booking-service/internal/domain"
)

// normalizeRequest обрезает пробелы, пустые опциональные поля превращает в nil
func normalizeRequest(req *Request) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Date = strings.TrimSpace(req.Date)
	req.Timeslot = strings.TrimSpace(req.Timeslot)
	req.Package = strings.TrimSpace(req.Package)
	req.Phone = trimOptional(req.Phone)
	req.Notes = trimOptional(req.Notes)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, policy domain.BookingPolicy) error {
	if req.Name == "" || req.Email == "" || req.Date == "" || req.Package == "" || req.Timeslot == "" {
		return fmt.Errorf("%w: name, email, date, package and timeslot are required", ErrInvalidInput)
	}

	if err := validateEmail(req.Email); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if utf8.RuneCountInString(req.Package) > domain.MaxPackageLength {
		return fmt.Errorf("%w: package is longer than %d characters", ErrInvalidInput, domain.MaxPackageLength)
	}

	if req.Phone != nil && utf8.RuneCountInString(*req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if !policy.IsKnownTimeslot(req.Timeslot) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeslot, req.Timeslot)
	}

	return nil
}

// checkBookingWindow день должен лежать в [today, today+MaxAdvanceDays]
func checkBookingWindow(date time.Time, policy domain.BookingPolicy, today time.Time) error {
	if date.Before(today) {
		return fmt.Errorf("%w: %s", ErrDateInPast, date.Format(domain.DateFormat))
	}
	if last := policy.LastBookableDay(today); date.After(last) {
		return fmt.Errorf("%w: %s, last bookable day is %s", ErrTooFarAhead,
			date.Format(domain.DateFormat), last.Format(domain.DateFormat))
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// validateEmail принимает только голый адрес: он уходит в RCPT TO без разбора
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email %q: %v", email, err)
	}
	if addr.Address != email {
		return fmt.Errorf("email %q must be a plain address", email)
	}
	return nil
}
