package create_stay_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/zemzen/booking-service/internal/api/handlers"
	"github.com/zemzen/booking-service/internal/api/middleware"
	"github.com/zemzen/booking-service/internal/domain"
	createStayBooking "github.com/zemzen/booking-service/internal/usecase/create_stay_booking"
)

const (
	msgCreated            = "Rezervácia bola úspešne uložená!"
	msgInvalidRequestBody = "Neplatné telo požiadavky"
	msgRequiredFields     = "Všetky polia sú povinné"
	msgInvalidDate        = "Neplatný formát dátumu"
	msgInvalidRange       = "Dátum odchodu musí byť neskôr ako dátum príchodu"
	msgStayTooShortFormat = "Pobyt musí mať minimálne %d noci"
	msgStayTooLongFormat  = "Pobyt môže mať maximálne %d nocí"
	msgDateInPast         = "Nie je možné rezervovať termín v minulosti."
	msgTooFarAhead        = "Tento termín zatiaľ nie je možné rezervovať."
	msgStayConflict       = "Zvolený termín sa prekrýva s inou rezerváciou."
	msgConcurrentBooking  = "Tento termín sa práve rezervuje. Skúste to prosím znova."
)

type Handler struct {
	useCase CreateStayBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateStayBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	var req CreateStayBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stays [%s] - Invalid request body: %v", reqID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createStayBooking.ErrStayConflict):
			h.logger.Warn("POST /stays [%s] - Stay conflict: %v", reqID, err)
			handlers.RespondConflict(w, msgStayConflict)

		case errors.Is(err, createStayBooking.ErrConcurrentBooking):
			h.logger.Warn("POST /stays [%s] - Concurrent booking: start=%s, end=%s", reqID, req.Start, req.End)
			handlers.RespondConflict(w, msgConcurrentBooking)

		case errors.Is(err, createStayBooking.ErrStayTooShort):
			h.logger.Warn("POST /stays [%s] - Stay too short: start=%s, end=%s", reqID, req.Start, req.End)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgStayTooShortFormat, h.useCase.MinNights()))

		case errors.Is(err, createStayBooking.ErrStayTooLong):
			h.logger.Warn("POST /stays [%s] - Stay too long: start=%s, end=%s", reqID, req.Start, req.End)
			handlers.RespondBadRequest(w, fmt.Sprintf(msgStayTooLongFormat, h.useCase.MaxNights()))

		case errors.Is(err, createStayBooking.ErrDateInPast):
			h.logger.Warn("POST /stays [%s] - Start in the past: start=%s", reqID, req.Start)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createStayBooking.ErrTooFarAhead):
			h.logger.Warn("POST /stays [%s] - Start beyond booking window: start=%s", reqID, req.Start)
			handlers.RespondBadRequest(w, msgTooFarAhead)

		case errors.Is(err, createStayBooking.ErrInvalidRange):
			h.logger.Warn("POST /stays [%s] - Invalid range: start=%s, end=%s", reqID, req.Start, req.End)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createStayBooking.ErrInvalidDate):
			h.logger.Warn("POST /stays [%s] - Invalid date: start=%q, end=%q", reqID, req.Start, req.End)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createStayBooking.ErrInvalidInput):
			h.logger.Warn("POST /stays [%s] - Invalid input: %v", reqID, err)
			handlers.RespondBadRequest(w, msgRequiredFields)

		default:
			h.logger.Error("POST /stays [%s] - Failed to create stay: start=%s, end=%s, error=%v", reqID, req.Start, req.End, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stays [%s] - Stay created successfully: stay_id=%d, %s - %s, warnings=%d", reqID,
		result.ID, domain.FormatDisplayDate(result.StartDate), domain.FormatDisplayDate(result.EndDate), len(result.Warnings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
