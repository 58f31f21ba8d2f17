package create_stay_booking

import (
	"time"

	"github.com/zemzen/booking-service/internal/domain"
	createStayBooking "github.com/zemzen/booking-service/internal/usecase/create_stay_booking"
)

// CreateStayBookingRequest HTTP request model
type CreateStayBookingRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	Start string  `json:"start"` // "05/11/2025"
	End   string  `json:"end"`   // "08/11/2025", день выезда
	Notes *string `json:"notes,omitempty"`
}

// StayBookingResponse HTTP response model
type StayBookingResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Nights    int     `json:"nights"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// CreatedResponse ответ 201
type CreatedResponse struct {
	Message  string              `json:"message"`
	Stay     StayBookingResponse `json:"stay"`
	Warnings []string            `json:"warnings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateStayBookingRequest) ToUseCaseRequest() *createStayBooking.Request {
	return &createStayBooking.Request{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Start: r.Start,
		End:   r.End,
		Notes: r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createStayBooking.Response) *CreatedResponse {
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &CreatedResponse{
		Message: msgCreated,
		Stay: StayBookingResponse{
			ID:        resp.ID,
			Name:      resp.Name,
			Email:     resp.Email,
			Phone:     resp.Phone,
			Start:     domain.FormatDisplayDate(resp.StartDate),
			End:       domain.FormatDisplayDate(resp.EndDate),
			Nights:    resp.Nights,
			Notes:     resp.Notes,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
		Warnings: warnings,
	}
}
