package get_booked_dates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zemzen/booking-service/internal/service/availability"
	"github.com/zemzen/booking-service/pkg/logger"
)

type fakeService struct {
	summary availability.FullyBooked
	err     error
}

func (f *fakeService) FullyBookedDates(context.Context) (availability.FullyBooked, error) {
	return f.summary, f.err
}

func TestHandle(t *testing.T) {
	nov20 := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	dec5 := time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)
	all := []string{"14:30-16:30", "17:00-19:00", "19:30-21:30"}

	svc := &fakeService{summary: availability.FullyBooked{
		Dates: []time.Time{nov20, jan2},
		PerDate: map[time.Time][]string{
			nov20: all,
			jan2:  all,
			dec5:  {"14:30-16:30"},
		},
	}}

	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/booked-dates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"disabledDates": ["20/11/2025", "02/01/2026"],
		"fullyBooked": {
			"20/11/2025": ["14:30-16:30", "17:00-19:00", "19:30-21:30"],
			"02/01/2026": ["14:30-16:30", "17:00-19:00", "19:30-21:30"],
			"05/12/2025": ["14:30-16:30"]
		}
	}`, rec.Body.String())
}

func TestHandleEmpty(t *testing.T) {
	h := NewHandler(&fakeService{summary: availability.FullyBooked{Dates: []time.Time{}}}, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/booked-dates", nil))

	assert.JSONEq(t, `{"disabledDates": [], "fullyBooked": {}}`, rec.Body.String())
}

func TestHandleError(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/booked-dates", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
