package slotbooking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/pkg/dbmetrics"
	"github.com/zemzen/booking-service/pkg/pgerrors"
	"github.com/zemzen/booking-service/pkg/psqlbuilder"
)

const table = "slot_bookings"

var columns = []string{
	"id",
	"name",
	"email",
	"phone",
	"booking_date",
	"timeslot",
	"package",
	"notes",
	"created_at",
}

// Repository репозиторий wellness-бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Уникальный индекс (booking_date, timeslot) защищает от двойного бронирования
// при параллельных запросах: проигравший получает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.SlotBooking) (*domain.SlotBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"email",
			"phone",
			"booking_date",
			"timeslot",
			"package",
			"notes",
		).
		Values(
			booking.Name,
			booking.Email,
			booking.Phone,
			domain.Day(booking.Date),
			booking.Timeslot,
			booking.Package,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.Date = domain.Day(booking.Date)
	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByDate бронирования на конкретный день
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.SlotBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"booking_date": domain.Day(date)}).
		OrderBy("timeslot ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetAll все бронирования, по дате
func (r *Repository) GetAll(ctx context.Context) ([]*domain.SlotBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("booking_date ASC", "timeslot ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.SlotBooking, error) {
	bookings := make([]*domain.SlotBooking, 0)

	for rows.Next() {
		var booking domain.SlotBooking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.Date,
			&booking.Timeslot,
			&booking.Package,
			&booking.Notes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.Date = domain.Day(booking.Date)
		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
