package get_booked_dates

import (
	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/internal/service/availability"
)

// BookedDatesResponse HTTP response model
type BookedDatesResponse struct {
	DisabledDates []string            `json:"disabledDates"` // "DD/MM/YYYY", хронологически
	FullyBooked   map[string][]string `json:"fullyBooked"`   // все занятые слоты по дням
}

// FromFullyBooked конвертирует сводку в HTTP response
func FromFullyBooked(summary availability.FullyBooked) *BookedDatesResponse {
	resp := &BookedDatesResponse{
		DisabledDates: make([]string, 0, len(summary.Dates)),
		FullyBooked:   make(map[string][]string, len(summary.PerDate)),
	}

	for _, d := range summary.Dates {
		resp.DisabledDates = append(resp.DisabledDates, domain.FormatDisplayDate(d))
	}
	for d, slots := range summary.PerDate {
		resp.FullyBooked[domain.FormatDisplayDate(d)] = slots
	}

	return resp
}
