package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/pkg/logger"
)

type fakeSlotRepo struct {
	bookings  []*domain.SlotBooking
	err       error
	askedDate time.Time
}

func (f *fakeSlotRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.SlotBooking, error) {
	f.askedDate = date
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.SlotBooking
	for _, b := range f.bookings {
		if b.Date.Equal(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeSlotRepo) GetAll(_ context.Context) ([]*domain.SlotBooking, error) {
	return f.bookings, f.err
}

type fakeStayRepo struct {
	stays []*domain.StayBooking
	err   error
}

func (f *fakeStayRepo) GetAll(_ context.Context) ([]*domain.StayBooking, error) {
	return f.stays, f.err
}

func TestServiceBookedSlots(t *testing.T) {
	slots := &fakeSlotRepo{bookings: []*domain.SlotBooking{
		slot("01/11/2025", "14:30-16:30"),
		slot("01/11/2025", "17:00-19:00"),
		slot("20/11/2025", "17:00-19:00"),
	}}
	svc := NewService(slots, &fakeStayRepo{}, domain.DefaultBookingPolicy(), logger.NewNop())

	got, err := svc.BookedSlots(context.Background(), time.Date(2025, 11, 1, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"14:30-16:30", "17:00-19:00"}, got)
	assert.Equal(t, day("01/11/2025"), slots.askedDate)
}

func TestServiceBookedSlotsErrors(t *testing.T) {
	svc := NewService(&fakeSlotRepo{err: errors.New("connection refused")}, &fakeStayRepo{},
		domain.DefaultBookingPolicy(), logger.NewNop())

	_, err := svc.BookedSlots(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.BookedSlots(context.Background(), day("01/11/2025"))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestServiceFullyBookedDatesUsesPolicy(t *testing.T) {
	slots := &fakeSlotRepo{bookings: []*domain.SlotBooking{
		slot("01/11/2025", "14:30-16:30"),
		slot("01/11/2025", "17:00-19:00"),
	}}

	policy := domain.BookingPolicy{Timeslots: []string{"14:30-16:30", "17:00-19:00"}, MinStayNights: 3}
	svc := NewService(slots, &fakeStayRepo{}, policy, logger.NewNop())

	got, err := svc.FullyBookedDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day("01/11/2025")}, got.Dates)
}

func TestServiceBookedStayDates(t *testing.T) {
	stays := &fakeStayRepo{stays: []*domain.StayBooking{stay("05/11/2025", "07/11/2025")}}
	svc := NewService(&fakeSlotRepo{}, stays, domain.DefaultBookingPolicy(), logger.NewNop())

	got, err := svc.BookedStayDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day("05/11/2025"), day("06/11/2025")}, got)

	stays.err = errors.New("timeout")
	_, err = svc.BookedStayDates(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
