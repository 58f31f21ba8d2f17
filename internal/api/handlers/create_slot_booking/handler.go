package create_slot_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/zemzen/booking-service/internal/api/handlers"
	"github.com/zemzen/booking-service/internal/api/middleware"
	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/internal/service/availability"
	createSlotBooking "github.com/zemzen/booking-service/internal/usecase/create_slot_booking"
)

const (
	msgCreated            = "Rezervácia bola úspešne uložená!"
	msgInvalidRequestBody = "Neplatné telo požiadavky"
	msgRequiredFields     = "Všetky polia sú povinné"
	msgInvalidDate        = "Neplatný formát dátumu"
	msgUnknownTimeslot    = "Neznámy časový slot"
	msgDateInPast         = "Nie je možné rezervovať termín v minulosti."
	msgTooFarAhead        = "Tento termín zatiaľ nie je možné rezervovať."
	msgSlotTakenFormat    = "Čas %s je už zarezervovaný pre %s."
	msgSlotTakenNoDetails = "Zvolený čas je už zarezervovaný."
)

type Handler struct {
	useCase CreateSlotBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateSlotBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	var req CreateSlotBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings [%s] - Invalid request body: %v", reqID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createSlotBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings [%s] - Slot taken: date=%s, timeslot=%s", reqID, req.Date, req.Timeslot)
			handlers.RespondConflict(w, slotTakenMessage(err))

		case errors.Is(err, createSlotBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings [%s] - Invalid date: %q", reqID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createSlotBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings [%s] - Date in the past: %q", reqID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createSlotBooking.ErrTooFarAhead):
			h.logger.Warn("POST /bookings [%s] - Date beyond booking window: %q", reqID, req.Date)
			handlers.RespondBadRequest(w, msgTooFarAhead)

		case errors.Is(err, createSlotBooking.ErrUnknownTimeslot):
			h.logger.Warn("POST /bookings [%s] - Unknown timeslot: %q", reqID, req.Timeslot)
			handlers.RespondBadRequest(w, msgUnknownTimeslot)

		case errors.Is(err, createSlotBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings [%s] - Invalid input: %v", reqID, err)
			handlers.RespondBadRequest(w, msgRequiredFields)

		default:
			h.logger.Error("POST /bookings [%s] - Failed to create booking: date=%s, timeslot=%s, error=%v", reqID,
				req.Date, req.Timeslot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings [%s] - Booking created successfully: booking_id=%d, date=%s, timeslot=%s, warnings=%d", reqID,
		result.ID, domain.FormatDisplayDate(result.Date), result.Timeslot, len(result.Warnings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func slotTakenMessage(err error) string {
	var conflict *availability.SlotConflictError
	if errors.As(err, &conflict) {
		return fmt.Sprintf(msgSlotTakenFormat, conflict.Timeslot, domain.FormatDisplayDate(conflict.Date))
	}
	return msgSlotTakenNoDetails
}
