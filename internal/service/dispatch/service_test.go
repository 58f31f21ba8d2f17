package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/pkg/logger"
)

type fakeMailer struct {
	err   error
	slots int
	stays int
}

func (f *fakeMailer) SendSlotConfirmation(context.Context, *domain.SlotBooking) error {
	f.slots++
	return f.err
}

func (f *fakeMailer) SendStayConfirmation(context.Context, *domain.StayBooking) error {
	f.stays++
	return f.err
}

type fakeCalendar struct {
	err   error
	slots int
	stays int
	ctxOK bool
}

func (f *fakeCalendar) AddSlotEvent(ctx context.Context, _ *domain.SlotBooking) (string, error) {
	f.slots++
	f.ctxOK = ctx.Err() == nil
	return "evt-1", f.err
}

func (f *fakeCalendar) AddStayEvent(context.Context, *domain.StayBooking) (string, error) {
	f.stays++
	return "evt-2", f.err
}

type fakeMetrics struct {
	mu       sync.Mutex
	failures map[string]int
}

func (f *fakeMetrics) IncSideEffectFailure(collaborator string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures == nil {
		f.failures = make(map[string]int)
	}
	f.failures[collaborator]++
}

func TestSlotBookedAllSucceed(t *testing.T) {
	mailer := &fakeMailer{}
	calendar := &fakeCalendar{}
	m := &fakeMetrics{}
	svc := NewService(mailer, calendar, m, time.Second, logger.NewNop())

	warnings := svc.SlotBooked(context.Background(), &domain.SlotBooking{ID: 1})
	assert.Empty(t, warnings)
	assert.Equal(t, 1, mailer.slots)
	assert.Equal(t, 1, calendar.slots)
	assert.Empty(t, m.failures)
}

func TestFailuresAreIndependent(t *testing.T) {
	t.Run("mailer fails, calendar still called", func(t *testing.T) {
		mailer := &fakeMailer{err: errors.New("smtp: 535 authentication failed")}
		calendar := &fakeCalendar{}
		m := &fakeMetrics{}
		svc := NewService(mailer, calendar, m, time.Second, logger.NewNop())

		warnings := svc.StayBooked(context.Background(), &domain.StayBooking{ID: 7})
		assert.Equal(t, []string{WarnEmailFailed}, warnings)
		assert.Equal(t, 1, calendar.stays)
		assert.Equal(t, 1, m.failures[collaboratorMailer])
	})

	t.Run("calendar fails, mail still sent", func(t *testing.T) {
		mailer := &fakeMailer{}
		calendar := &fakeCalendar{err: errors.New("googleapi: 403")}
		m := &fakeMetrics{}
		svc := NewService(mailer, calendar, m, time.Second, logger.NewNop())

		warnings := svc.SlotBooked(context.Background(), &domain.SlotBooking{ID: 2})
		assert.Equal(t, []string{WarnCalendarFailed}, warnings)
		assert.Equal(t, 1, mailer.slots)
		assert.Equal(t, 1, m.failures[collaboratorCalendar])
	})

	t.Run("both fail", func(t *testing.T) {
		svc := NewService(&fakeMailer{err: errors.New("a")}, &fakeCalendar{err: errors.New("b")},
			&fakeMetrics{}, time.Second, logger.NewNop())

		warnings := svc.SlotBooked(context.Background(), &domain.SlotBooking{ID: 3})
		assert.Equal(t, []string{WarnEmailFailed, WarnCalendarFailed}, warnings)
	})
}

func TestDisabledCollaborators(t *testing.T) {
	svc := NewService(nil, nil, &fakeMetrics{}, 0, logger.NewNop())

	assert.Empty(t, svc.SlotBooked(context.Background(), &domain.SlotBooking{ID: 1}))
	assert.Empty(t, svc.StayBooked(context.Background(), &domain.StayBooking{ID: 1}))
	assert.Equal(t, DefaultTimeout, svc.timeout)
}

func TestCanceledRequestContextStillDispatches(t *testing.T) {
	calendar := &fakeCalendar{}
	svc := NewService(nil, calendar, &fakeMetrics{}, time.Second, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, svc.SlotBooked(ctx, &domain.SlotBooking{ID: 1}))
	assert.True(t, calendar.ctxOK)
}
