package boat

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BCM-BookingService/pkg/psqlbuilder"
)

var boatColumns = []string{
	"id",
	"name",
	"location",
	"type",
	"capacity",
	"price",
	"description",
	"amenities",
	"image_url",
	"owner_id",
	"owner_name",
	"owner_email",
	"rating",
	"reviews_count",
	"start_hour",
	"end_hour",
	"slot_length_hours",
	"min_hours",
	"booked_slots",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с лодками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория лодок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую лодку
func (r *Repository) Create(ctx context.Context, boat *domain.Boat) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("boats").
		Columns(
			"id",
			"name",
			"location",
			"type",
			"capacity",
			"price",
			"description",
			"amenities",
			"image_url",
			"owner_id",
			"owner_name",
			"owner_email",
			"rating",
			"reviews_count",
			"start_hour",
			"end_hour",
			"slot_length_hours",
			"min_hours",
		).
		Values(
			boat.ID,
			boat.Name,
			boat.Location,
			boat.Type,
			boat.Capacity,
			boat.Price,
			boat.Description,
			pq.Array(boat.Amenities),
			boat.ImageURL,
			boat.OwnerID,
			boat.OwnerName,
			boat.OwnerEmail,
			boat.Rating,
			boat.ReviewsCount,
			boat.Rule.StartHour,
			boat.Rule.EndHour,
			boat.Rule.SlotLengthHours,
			boat.Rule.MinHours,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	boat.CreatedAt = createdAt.Time
	boat.UpdatedAt = updatedAt.Time

	return boat, nil
}

// GetByID получает лодку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(boatColumns...).
		From("boats").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	boat, err := r.scanBoat(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan boat: %v", ErrScanRow, err)
	}

	return boat, nil
}

// List получает все лодки, сначала новые
func (r *Repository) List(ctx context.Context) ([]*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(boatColumns...).
		From("boats").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	boats := make([]*domain.Boat, 0)
	for rows.Next() {
		boat, err := r.scanBoat(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		boats = append(boats, boat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return boats, nil
}

// UpdateRating записывает пересчитанный агрегат отзывов на лодку
func (r *Repository) UpdateRating(ctx context.Context, id string, rating float64, reviewsCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("boats").
		Set("rating", rating).
		Set("reviews_count", reviewsCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRating - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBoatNotFound
	}

	return nil
}

// AddBookedSlot добавляет слот в вспомогательную карту booked_slots лодки.
// Карта не авторитетна (доступность всегда выводится из подтверждённых
// бронирований); слот не дублируется при повторной записи.
func (r *Repository) AddBookedSlot(ctx context.Context, id, date, slot string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("boats").
		Set("booked_slots", squirrel.Expr(
			`jsonb_set(
				COALESCE(booked_slots, '{}'::jsonb),
				ARRAY[?::text],
				CASE
					WHEN jsonb_exists(COALESCE(booked_slots -> ?, '[]'::jsonb), ?::text)
						THEN booked_slots -> ?
					ELSE COALESCE(booked_slots -> ?, '[]'::jsonb) || to_jsonb(?::text)
				END
			)`,
			date, date, slot, date, date, slot,
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddBookedSlot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AddBookedSlot - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AddBookedSlot - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBoatNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBoat(row rowScanner) (*domain.Boat, error) {
	var boat domain.Boat
	var amenities pq.StringArray
	var bookedSlotsRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&boat.ID,
		&boat.Name,
		&boat.Location,
		&boat.Type,
		&boat.Capacity,
		&boat.Price,
		&boat.Description,
		&amenities,
		&boat.ImageURL,
		&boat.OwnerID,
		&boat.OwnerName,
		&boat.OwnerEmail,
		&boat.Rating,
		&boat.ReviewsCount,
		&boat.Rule.StartHour,
		&boat.Rule.EndHour,
		&boat.Rule.SlotLengthHours,
		&boat.Rule.MinHours,
		&bookedSlotsRaw,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	boat.Amenities = amenities
	boat.CreatedAt = createdAt.Time
	boat.UpdatedAt = updatedAt.Time

	if len(bookedSlotsRaw) > 0 {
		if err := json.Unmarshal(bookedSlotsRaw, &boat.BookedSlots); err != nil {
			return nil, fmt.Errorf("unmarshal booked_slots: %w", err)
		}
	}

	return &boat, nil
}
