package get_booked_stay_dates

import (
	"net/http"

	"github.com/zemzen/booking-service/internal/api/handlers"
	"github.com/zemzen/booking-service/internal/domain"
)

// BookedStayDatesResponse HTTP response model
type BookedStayDatesResponse struct {
	Booked []string `json:"booked"`
}

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booked-stay-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days, err := h.service.BookedStayDates(r.Context())
	if err != nil {
		h.logger.Error("GET /booked-stay-dates - Failed to get booked stay dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	booked := make([]string, 0, len(days))
	for _, d := range days {
		booked = append(booked, domain.FormatDisplayDate(d))
	}

	handlers.RespondJSON(w, http.StatusOK, BookedStayDatesResponse{Booked: booked})
}
