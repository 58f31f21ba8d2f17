package staybooking

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
	insertQuery = "INSERT INTO stay_bookings (name,email,phone,start_date,end_date,notes) " +
		"VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at"
	selectQuery = "SELECT id, name, email, phone, start_date, end_date, notes, created_at FROM stay_bookings " +
		"ORDER BY start_date ASC, id ASC"
)

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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepository(t)
	createdAt := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertQuery).
		WithArgs("Peter", "peter@example.com", "+421900111222",
			dayArg(date(2025, 11, 5)), dayArg(date(2025, 11, 8)), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), createdAt))

	stay, err := repo.Create(context.Background(), &domain.StayBooking{
		Name:      "Peter",
		Email:     "peter@example.com",
		Phone:     "+421900111222",
		StartDate: time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), stay.ID)
	assert.Equal(t, createdAt, stay.CreatedAt)
	assert.Equal(t, date(2025, 11, 5), stay.StartDate)
	assert.Equal(t, date(2025, 11, 8), stay.EndDate)
	assert.Equal(t, 3, stay.Nights())
}

func TestCreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "serialization failure", dbErr: &pq.Error{Code: "40001"}, wantErr: ErrSerialization},
		{name: "unique violation is not retried", dbErr: &pq.Error{Code: "23505"}, wantErr: ErrExecQuery},
		{name: "connection error", dbErr: errors.New("connection reset"), wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			mock.ExpectQuery(insertQuery).WillReturnError(tt.dbErr)

			_, err := repo.Create(context.Background(), &domain.StayBooking{
				Name:      "Peter",
				Email:     "peter@example.com",
				Phone:     "+421900111222",
				StartDate: date(2025, 11, 5),
				EndDate:   date(2025, 11, 8),
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetAll(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(selectQuery).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "start_date", "end_date", "notes", "created_at",
		}).
			AddRow(int64(1), "Peter", "peter@example.com", "+421900111222", date(2025, 11, 5), date(2025, 11, 8), nil, nil).
			AddRow(int64(2), "Jana", "jana@example.com", "+421900333444", date(2025, 11, 8), date(2025, 11, 10), "Pes", nil))

	stays, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, stays, 2)
	assert.Nil(t, stays[0].Notes)
	require.NotNil(t, stays[1].Notes)
	assert.Equal(t, "Pes", *stays[1].Notes)
	assert.Equal(t, date(2025, 11, 8), stays[1].StartDate)
	assert.Equal(t, 2, stays[1].Nights())
}

func TestGetAllErrors(t *testing.T) {
	t.Run("serialization failure", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery(selectQuery).WillReturnError(&pq.Error{Code: "40001"})

		_, err := repo.GetAll(context.Background())
		assert.ErrorIs(t, err, ErrSerialization)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery(selectQuery).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "email", "phone", "start_date", "end_date", "notes", "created_at",
			}).
				AddRow(int64(1), "Peter", "peter@example.com", "", date(2025, 11, 5), date(2025, 11, 8), nil, nil).
				RowError(0, errors.New("network")))

		_, err := repo.GetAll(context.Background())
		assert.ErrorIs(t, err, ErrScanRow)
	})
}
