package get_booked_slots

import (
	"net/http"

	"github.com/zemzen/booking-service/internal/api/handlers"
	"github.com/zemzen/booking-service/internal/domain"
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

// Handle GET /api/v1/booked-timeslots?date=YYYY-MM-DD
// Без даты или с неразборчивой датой отвечает пустым списком: календарь на сайте
// запрашивает слоты до того, как гость выбрал день.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondJSON(w, http.StatusOK, []string{})
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /booked-timeslots - Invalid date %q: %v", dateStr, err)
		handlers.RespondJSON(w, http.StatusOK, []string{})
		return
	}

	slots, err := h.service.BookedSlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /booked-timeslots - Failed to get booked slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slots)
}
