package get_booked_dates

import (
	"net/http"

	"github.com/zemzen/booking-service/internal/api/handlers"
)

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

// Handle GET /api/v1/booked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.FullyBookedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /booked-dates - Failed to get booked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromFullyBooked(summary))
}
