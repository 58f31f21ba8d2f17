package create_slot_booking

import (
	"time"

	"github.com/zemzen/booking-service/internal/domain"
	createSlotBooking "github.com/zemzen/booking-service/internal/usecase/create_slot_booking"
)

// CreateSlotBookingRequest HTTP request model
type CreateSlotBookingRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Date     string  `json:"date"` // "01/11/2025"
	Package  string  `json:"package"`
	Timeslot string  `json:"timeslot"` // "17:00-19:00"
	Notes    *string `json:"notes,omitempty"`
}

// SlotBookingResponse HTTP response model
type SlotBookingResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Date      string  `json:"date"`
	Timeslot  string  `json:"timeslot"`
	Package   string  `json:"package"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// CreatedResponse ответ 201
type CreatedResponse struct {
	Message  string              `json:"message"`
	Booking  SlotBookingResponse `json:"booking"`
	Warnings []string            `json:"warnings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSlotBookingRequest) ToUseCaseRequest() *createSlotBooking.Request {
	return &createSlotBooking.Request{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Date:     r.Date,
		Timeslot: r.Timeslot,
		Package:  r.Package,
		Notes:    r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSlotBooking.Response) *CreatedResponse {
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &CreatedResponse{
		Message: msgCreated,
		Booking: SlotBookingResponse{
			ID:        resp.ID,
			Name:      resp.Name,
			Email:     resp.Email,
			Phone:     resp.Phone,
			Date:      domain.FormatDisplayDate(resp.Date),
			Timeslot:  resp.Timeslot,
			Package:   resp.Package,
			Notes:     resp.Notes,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
		Warnings: warnings,
	}
}
