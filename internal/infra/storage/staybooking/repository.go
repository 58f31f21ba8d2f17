package staybooking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zemzen/booking-service/internal/domain"
	"github.com/zemzen/booking-service/pkg/dbmetrics"
	"github.com/zemzen/booking-service/pkg/pgerrors"
	"github.com/zemzen/booking-service/pkg/psqlbuilder"
)

const table = "stay_bookings"

// Repository репозиторий проживаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет проживание.
// Проверку пересечений делает вызывающий код; при вызове внутри
// txManager.DoSerializable конкурентная запись приводит к ErrSerialization.
func (r *Repository) Create(ctx context.Context, stay *domain.StayBooking) (*domain.StayBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"email",
			"phone",
			"start_date",
			"end_date",
			"notes",
		).
		Values(
			stay.Name,
			stay.Email,
			stay.Phone,
			domain.Day(stay.StartDate),
			domain.Day(stay.EndDate),
			stay.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&stay.ID, &createdAt)
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return nil, ErrSerialization
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	stay.StartDate = domain.Day(stay.StartDate)
	stay.EndDate = domain.Day(stay.EndDate)
	stay.CreatedAt = createdAt.Time

	return stay, nil
}

// GetAll все проживания, по дате заезда
func (r *Repository) GetAll(ctx context.Context) ([]*domain.StayBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"start_date",
		"end_date",
		"notes",
		"created_at",
	).
		From(table).
		OrderBy("start_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return nil, ErrSerialization
		}
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stays := make([]*domain.StayBooking, 0)
	for rows.Next() {
		var stay domain.StayBooking
		var createdAt sql.NullTime

		err := rows.Scan(
			&stay.ID,
			&stay.Name,
			&stay.Email,
			&stay.Phone,
			&stay.StartDate,
			&stay.EndDate,
			&stay.Notes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		stay.StartDate = domain.Day(stay.StartDate)
		stay.EndDate = domain.Day(stay.EndDate)
		stay.CreatedAt = createdAt.Time

		stays = append(stays, &stay)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return stays, nil
}
