package legacy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zemzen/booking-service/internal/domain"
)

// RowError ошибка разбора конкретной строки, строка пропускается
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Синонимы колонок в исторических выгрузках
var columnAliases = map[string]string{
	"start":        "start_date",
	"end":          "end_date",
	"booking_date": "date",
	"time":         "timeslot",
	"slot":         "timeslot",
	"balicek":      "package",
	"balíček":      "package",
}

// ReadSlotBookings читает выгрузку wellness-бронирований
// (Name, Email, Phone, Date, Timeslot, Package, Notes).
func ReadSlotBookings(r io.Reader) ([]*domain.SlotBooking, []RowError, error) {
	var bookings []*domain.SlotBooking

	rowErrs, err := readRows(r, []string{"name", "email", "date", "timeslot", "package"}, func(row record) error {
		date, err := domain.ParseDate(row.get("date"))
		if err != nil {
			return fmt.Errorf("%w: date %q", ErrInvalidRow, row.get("date"))
		}

		b := &domain.SlotBooking{
			Name:     row.get("name"),
			Email:    row.get("email"),
			Phone:    optional(row.get("phone")),
			Date:     date,
			Timeslot: row.get("timeslot"),
			Package:  row.get("package"),
			Notes:    optional(row.get("notes")),
		}
		if b.Name == "" || b.Email == "" || b.Timeslot == "" {
			return fmt.Errorf("%w: name, email and timeslot are required", ErrInvalidRow)
		}

		bookings = append(bookings, b)
		return nil
	})

	return bookings, rowErrs, err
}

// ReadStayBookings читает выгрузку проживаний
// (Name, Email, Phone, Start Date, End Date, Notes).
func ReadStayBookings(r io.Reader) ([]*domain.StayBooking, []RowError, error) {
	var stays []*domain.StayBooking

	rowErrs, err := readRows(r, []string{"name", "email", "start_date", "end_date"}, func(row record) error {
		start, err := domain.ParseDate(row.get("start_date"))
		if err != nil {
			return fmt.Errorf("%w: start date %q", ErrInvalidRow, row.get("start_date"))
		}

		end, err := domain.ParseDate(row.get("end_date"))
		if err != nil {
			return fmt.Errorf("%w: end date %q", ErrInvalidRow, row.get("end_date"))
		}

		if !end.After(start) {
			return fmt.Errorf("%w: end date %s is not after start date %s", ErrInvalidRow,
				end.Format(domain.DateFormat), start.Format(domain.DateFormat))
		}

		s := &domain.StayBooking{
			Name:      row.get("name"),
			Email:     row.get("email"),
			Phone:     row.get("phone"),
			StartDate: start,
			EndDate:   end,
			Notes:     optional(row.get("notes")),
		}
		if s.Name == "" || s.Email == "" {
			return fmt.Errorf("%w: name and email are required", ErrInvalidRow)
		}

		stays = append(stays, s)
		return nil
	})

	return stays, rowErrs, err
}

type record struct {
	index  map[string]int
	fields []string
}

func (r record) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return cleanValue(r.fields[i])
}

func readRows(r io.Reader, required []string, fn func(row record) error) ([]RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: header: %v", ErrRead, err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[normalizeHeader(h)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var rowErrs []RowError
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return rowErrs, fmt.Errorf("%w: %v", ErrRead, err)
			}
			rowErrs = append(rowErrs, RowError{Line: parseErr.Line, Err: fmt.Errorf("%w: %v", ErrInvalidRow, err)})
			continue
		}
		if isBlank(fields) {
			continue
		}
		line, _ := reader.FieldPos(0)

		if err := fn(record{index: index, fields: fields}); err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
		}
	}

	return rowErrs, nil
}

// normalizeHeader "Start Date", "start_date", "\"START DATE\"" -> "start_date"
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(cleanValue(h))
	h = strings.Join(strings.FieldsFunc(h, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "_")
	if alias, ok := columnAliases[h]; ok {
		return alias
	}
	return h
}

// cleanValue убирает пробелы и лишние кавычки, оставшиеся от ручного редактирования выгрузок
func cleanValue(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"'`))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
