package create_stay_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemzen/booking-service/internal/domain"
	stayRepo "github.com/zemzen/booking-service/internal/infra/storage/staybooking"
	"github.com/zemzen/booking-service/internal/service/availability"
	"github.com/zemzen/booking-service/pkg/logger"
	"github.com/zemzen/booking-service/pkg/txmanager"
)

type fakeRepo struct {
	stays     []*domain.StayBooking
	getErr    error
	createErr error
}

func (f *fakeRepo) GetAll(_ context.Context) ([]*domain.StayBooking, error) {
	return f.stays, f.getErr
}

func (f *fakeRepo) Create(_ context.Context, stay *domain.StayBooking) (*domain.StayBooking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stay.ID = int64(len(f.stays) + 1)
	f.stays = append(f.stays, stay)
	return stay, nil
}

// fakeTx выполняет функцию сразу, commitErr имитирует ошибку COMMIT
type fakeTx struct {
	calls     int
	commitErr error
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type fakeSideEffects struct {
	calls []*domain.StayBooking
}

func (f *fakeSideEffects) StayBooked(_ context.Context, stay *domain.StayBooking) []string {
	f.calls = append(f.calls, stay)
	return nil
}

type fakeMetrics struct{ count int }

func (f *fakeMetrics) IncBookingsCreated(string) { f.count++ }

// today день, от которого считается окно бронирования в тестах
var today = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

func newUseCase(repo *fakeRepo, tx *fakeTx, effects *fakeSideEffects) *UseCase {
	uc := NewUseCase(repo, tx, effects, &fakeMetrics{}, domain.DefaultBookingPolicy(), logger.NewNop())
	uc.now = func() time.Time { return today }
	return uc
}

func request(start, end string) *Request {
	return &Request{
		Name:  "Peter Horváth",
		Email: "peter@example.com",
		Phone: "+421900111222",
		Start: start,
		End:   end,
	}
}

func TestExecuteMinimumNights(t *testing.T) {
	repo := &fakeRepo{}
	effects := &fakeSideEffects{}
	uc := newUseCase(repo, &fakeTx{}, effects)
	require.Equal(t, 3, uc.MinNights())

	_, err := uc.Execute(context.Background(), request("05/11/2025", "07/11/2025"))
	assert.ErrorIs(t, err, ErrStayTooShort)
	assert.Empty(t, repo.stays)

	resp, err := uc.Execute(context.Background(), request("05/11/2025", "08/11/2025"))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC), resp.StartDate)
	assert.Equal(t, time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC), resp.EndDate)
	assert.Len(t, effects.calls, 1)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "missing phone", req: func() *Request { r := request("05/11/2025", "10/11/2025"); r.Phone = ""; return r }(), wantErr: ErrInvalidInput},
		{name: "bad email", req: func() *Request { r := request("05/11/2025", "10/11/2025"); r.Email = "peter"; return r }(), wantErr: ErrInvalidInput},
		{name: "bad start", req: request("5.11.2025", "10/11/2025"), wantErr: ErrInvalidDate},
		{name: "bad end", req: request("05/11/2025", "10-11-2025"), wantErr: ErrInvalidDate},
		{name: "end before start", req: request("10/11/2025", "05/11/2025"), wantErr: ErrInvalidRange},
		{name: "same day", req: request("10/11/2025", "10/11/2025"), wantErr: ErrInvalidRange},
		{name: "display name email", req: func() *Request { r := request("05/11/2025", "10/11/2025"); r.Email = "Peter <peter@example.com>"; return r }(), wantErr: ErrInvalidInput},
		{name: "start in the past", req: request("28/09/2025", "02/10/2025"), wantErr: ErrDateInPast},
		{name: "start beyond window", req: request("02/10/2026", "06/10/2026"), wantErr: ErrTooFarAhead},
		{name: "stay too long", req: request("05/11/2025", "06/12/2025"), wantErr: ErrStayTooLong},
		{name: "end far in the future", req: request("05/11/2025", "31/12/9999"), wantErr: ErrStayTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx := &fakeTx{}
			uc := newUseCase(&fakeRepo{}, tx, &fakeSideEffects{})

			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestExecuteBookingWindowBounds(t *testing.T) {
	uc := newUseCase(&fakeRepo{}, &fakeTx{}, &fakeSideEffects{})
	require.Equal(t, 30, uc.MaxNights())

	// заезд сегодня, ровно 30 ночей
	resp, err := uc.Execute(context.Background(), request("01/10/2025", "31/10/2025"))
	require.NoError(t, err)
	assert.Equal(t, 30, resp.Nights)

	// последний день окна (сегодня + 365)
	_, err = uc.Execute(context.Background(), request("01/10/2026", "04/10/2026"))
	require.NoError(t, err)
}

func TestExecuteConflict(t *testing.T) {
	repo := &fakeRepo{}
	effects := &fakeSideEffects{}
	uc := newUseCase(repo, &fakeTx{}, effects)

	_, err := uc.Execute(context.Background(), request("05/11/2025", "10/11/2025"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), request("08/11/2025", "12/11/2025"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStayConflict)
	assert.ErrorIs(t, err, availability.ErrConflict)

	var conflict *availability.StayConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []time.Time{
		time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC),
	}, conflict.Days)

	// день выезда свободен для следующего гостя
	_, err = uc.Execute(context.Background(), request("10/11/2025", "15/11/2025"))
	require.NoError(t, err)

	assert.Len(t, repo.stays, 2)
	assert.Len(t, effects.calls, 2)
}

func TestExecuteConcurrentBooking(t *testing.T) {
	t.Run("serialization failure on insert", func(t *testing.T) {
		effects := &fakeSideEffects{}
		uc := newUseCase(&fakeRepo{createErr: stayRepo.ErrSerialization}, &fakeTx{}, effects)

		_, err := uc.Execute(context.Background(), request("05/11/2025", "10/11/2025"))
		assert.ErrorIs(t, err, ErrConcurrentBooking)
		assert.Empty(t, effects.calls)
	})

	t.Run("serialization failure on commit", func(t *testing.T) {
		commitErr := fmt.Errorf("%w: commit: %w", txmanager.ErrTransaction, &pq.Error{Code: "40001"})
		effects := &fakeSideEffects{}
		uc := newUseCase(&fakeRepo{}, &fakeTx{commitErr: commitErr}, effects)

		_, err := uc.Execute(context.Background(), request("05/11/2025", "10/11/2025"))
		assert.ErrorIs(t, err, ErrConcurrentBooking)
		assert.Empty(t, effects.calls)
	})
}

func TestExecuteInternalError(t *testing.T) {
	uc := newUseCase(&fakeRepo{getErr: stayRepo.ErrExecQuery}, &fakeTx{}, &fakeSideEffects{})

	_, err := uc.Execute(context.Background(), request("05/11/2025", "10/11/2025"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrConcurrentBooking)
}
