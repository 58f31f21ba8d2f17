package slotbooking

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/pkg/dbmetrics"
)

const (
	insertQuery = "INSERT INTO slot_bookings (name,email,phone,booking_date,timeslot,package,notes) " +
		"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at"
	selectColumns = "SELECT id, name, email, phone, booking_date, timeslot, package, notes, created_at FROM slot_bookings"
)

// dayArg совпадает с аргументом-датой независимо от представления локации
type dayArg time.Time

func (d dayArg) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	return ok && t.Equal(time.Time(d))
}

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepository(t)
	notes := "Výročie"
	createdAt := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertQuery).
		WithArgs("Jana", "jana@example.com", nil, dayArg(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)),
			"17:00-19:00", "Romantika", notes).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	booking, err := repo.Create(context.Background(), &domain.SlotBooking{
		Name:     "Jana",
		Email:    "jana@example.com",
		Date:     time.Date(2025, 11, 1, 15, 45, 0, 0, time.UTC),
		Timeslot: "17:00-19:00",
		Package:  "Romantika",
		Notes:    &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, createdAt, booking.CreatedAt)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), booking.Date)
}

func TestCreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unique violation", dbErr: &pq.Error{Code: "23505"}, wantErr: ErrSlotTaken},
		{name: "other postgres error", dbErr: &pq.Error{Code: "23502"}, wantErr: ErrExecQuery},
		{name: "connection error", dbErr: errors.New("connection reset"), wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			mock.ExpectQuery(insertQuery).WillReturnError(tt.dbErr)

			_, err := repo.Create(context.Background(), &domain.SlotBooking{
				Name:     "Jana",
				Email:    "jana@example.com",
				Date:     time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
				Timeslot: "17:00-19:00",
				Package:  "Klasik",
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetByDate(t *testing.T) {
	repo, mock := newRepository(t)
	day := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	phone := "+421900111222"

	mock.ExpectQuery(selectColumns+" WHERE booking_date = $1 ORDER BY timeslot ASC, id ASC").
		WithArgs(dayArg(day)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "booking_date", "timeslot", "package", "notes", "created_at",
		}).
			AddRow(int64(1), "Jana", "jana@example.com", nil, day, "10:00-12:00", "Klasik", nil, nil).
			AddRow(int64(2), "Peter", "peter@example.com", phone, day, "17:00-19:00", "Romantika", "Darček", day))

	bookings, err := repo.GetByDate(context.Background(), time.Date(2025, 11, 1, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Nil(t, bookings[0].Phone)
	assert.True(t, bookings[0].CreatedAt.IsZero())
	assert.Equal(t, "17:00-19:00", bookings[1].Timeslot)
	require.NotNil(t, bookings[1].Phone)
	assert.Equal(t, phone, *bookings[1].Phone)
	assert.Equal(t, day, bookings[1].Date)
}

func TestGetAllOrdersByDateAndSlot(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(selectColumns + " ORDER BY booking_date ASC, timeslot ASC, id ASC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "booking_date", "timeslot", "package", "notes", "created_at",
		}))

	bookings, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestGetAllScanError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(selectColumns + " ORDER BY booking_date ASC, timeslot ASC, id ASC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "booking_date", "timeslot", "package", "notes", "created_at",
		}).AddRow("not-a-number", "Jana", "jana@example.com", nil, time.Now(), "10:00-12:00", "Klasik", nil, nil))

	_, err := repo.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestCreateUsesTransactionFromContext(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	wrapped := dbmetrics.Wrap(db, nil)
	repo := NewRepository(wrapped)

	mock.ExpectBegin()
	mock.ExpectQuery(insertQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), nil))
	mock.ExpectRollback()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.Create(dbmetrics.WithTx(context.Background(), tx), &domain.SlotBooking{
		Name:     "Jana",
		Email:    "jana@example.com",
		Date:     time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		Timeslot: "17:00-19:00",
		Package:  "Klasik",
	})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
