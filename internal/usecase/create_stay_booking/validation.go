package create_stay_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zemzen/booking-service/internal/domain"
)

func normalizeRequest(req *Request) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Start = strings.TrimSpace(req.Start)
	req.End = strings.TrimSpace(req.End)
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if notes == "" {
			req.Notes = nil
		} else {
			req.Notes = &notes
		}
	}
}

// validateRequest проверяет обязательные поля
func validateRequest(req *Request) error {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Start == "" || req.End == "" {
		return fmt.Errorf("%w: name, email, phone, start and end are required", ErrInvalidInput)
	}

	if err := validateEmail(req.Email); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if utf8.RuneCountInString(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// parseRange разбирает даты, проверяет окно бронирования относительно today и длину проживания
func parseRange(req *Request, policy domain.BookingPolicy, today time.Time) (time.Time, time.Time, error) {
	start, err := domain.ParseDate(req.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q", ErrInvalidDate, req.Start)
	}

	end, err := domain.ParseDate(req.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q", ErrInvalidDate, req.End)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s - %s", ErrInvalidRange,
			start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	}

	if start.Before(today) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrDateInPast, start.Format(domain.DateFormat))
	}

	if last := policy.LastBookableDay(today); start.After(last) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s, last bookable day is %s", ErrTooFarAhead,
			start.Format(domain.DateFormat), last.Format(domain.DateFormat))
	}

	nights := domain.DaysBetween(start, end)
	if nights < policy.MinStayNights {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d nights, minimum is %d", ErrStayTooShort, nights, policy.MinStayNights)
	}
	if nights > policy.MaxStayNights {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d nights, maximum is %d", ErrStayTooLong, nights, policy.MaxStayNights)
	}

	return start, end, nil
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
