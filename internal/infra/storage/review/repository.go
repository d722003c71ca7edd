package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BCM-BookingService/pkg/psqlbuilder"
)

// Код PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var reviewColumns = []string{
	"id",
	"boat_id",
	"boat_name",
	"owner_id",
	"user_id",
	"user_name",
	"stars",
	"review_text",
	"created_at",
}

// Repository репозиторий для работы с отзывами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"id",
			"boat_id",
			"boat_name",
			"owner_id",
			"user_id",
			"user_name",
			"stars",
			"review_text",
		).
		Values(
			review.ID,
			review.BoatID,
			review.BoatName,
			review.OwnerID,
			review.UserID,
			review.UserName,
			review.Stars,
			review.Text,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time

	return review, nil
}

// ExistsByBoatAndUser сообщает, оставлял ли пользователь отзыв на лодку
func (r *Repository) ExistsByBoatAndUser(ctx context.Context, boatID, userID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reviews").
		Where(squirrel.Eq{"boat_id": boatID, "user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBoatAndUser - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByBoatAndUser - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// AggregateByBoat возвращает сумму звёзд и количество отзывов лодки.
// Пересчёт с нуля при каждом отзыве - O(количество отзывов), осознанно.
func (r *Repository) AggregateByBoat(ctx context.Context, boatID string) (sum float64, count int, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(stars), 0)", "COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"boat_id": boatID}).
		ToSql()

	if err != nil {
		return 0, 0, fmt.Errorf("%w: AggregateByBoat - build select query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&sum, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: AggregateByBoat - scan: %v", ErrScanRow, err)
	}

	return sum, count, nil
}

// ListByBoat получает отзывы лодки, сначала новые
func (r *Repository) ListByBoat(ctx context.Context, boatID string) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"boat_id": boatID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBoat - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBoat - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		var createdAt sql.NullTime

		err := rows.Scan(
			&review.ID,
			&review.BoatID,
			&review.BoatName,
			&review.OwnerID,
			&review.UserID,
			&review.UserName,
			&review.Stars,
			&review.Text,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBoat - scan row: %v", ErrScanRow, err)
		}

		review.CreatedAt = createdAt.Time
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBoat - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
