package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BCM-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"boat_id",
	"boat_name",
	"booking_date",
	"slot",
	"user_id",
	"owner_id",
	"owner_email",
	"amount",
	"currency",
	"status",
	"checkout_session_id",
	"payment_intent_id",
	"customer_email",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert записывает бронирование по детерминированному ID.
// Merge-семантика: повторная запись того же бронирования (redelivery
// вебхука, гонка push/pull путей) перезаписывает те же поля теми же
// значениями из авторитетной сессии - операция идемпотентна по построению,
// отдельной проверки "уже обработано" не требуется.
func (r *Repository) Upsert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"boat_id",
			"boat_name",
			"booking_date",
			"slot",
			"user_id",
			"owner_id",
			"owner_email",
			"amount",
			"currency",
			"status",
			"checkout_session_id",
			"payment_intent_id",
			"customer_email",
		).
		Values(
			booking.ID,
			booking.BoatID,
			booking.BoatName,
			booking.Date,
			booking.Slot,
			booking.UserID,
			booking.OwnerID,
			booking.OwnerEmail,
			booking.Amount,
			booking.Currency,
			booking.Status,
			booking.CheckoutSessionID,
			booking.PaymentIntentID,
			booking.CustomerEmail,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			boat_name = EXCLUDED.boat_name,
			owner_id = EXCLUDED.owner_id,
			owner_email = EXCLUDED.owner_email,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			checkout_session_id = EXCLUDED.checkout_session_id,
			payment_intent_id = EXCLUDED.payment_intent_id,
			customer_email = EXCLUDED.customer_email,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя, сначала новые
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByBoatAndDate получает подтверждённые бронирования лодки на дату,
// отсортированные по слоту. Источник истины для проекции доступности.
func (r *Repository) GetByBoatAndDate(ctx context.Context, boatID string, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"boat_id":      boatID,
			"booking_date": date,
			"status":       domain.StatusConfirmed,
		}).
		OrderBy("slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBoatAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBoatAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByBoat получает все подтверждённые бронирования лодки, сначала новые.
// Используется владельцем для просмотра брони по своей лодке.
func (r *Repository) GetByBoat(ctx context.Context, boatID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"boat_id": boatID,
			"status":  domain.StatusConfirmed,
		}).
		OrderBy("booking_date DESC, slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBoat - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBoat - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// HasConfirmedForUser сообщает, есть ли у пользователя хотя бы одно
// подтверждённое бронирование этой лодки. Гейт для отправки отзыва.
func (r *Repository) HasConfirmedForUser(ctx context.Context, boatID, userID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"boat_id": boatID,
			"user_id": userID,
			"status":  domain.StatusConfirmed,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasConfirmedForUser - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasConfirmedForUser - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BoatID,
		&booking.BoatName,
		&booking.Date,
		&booking.Slot,
		&booking.UserID,
		&booking.OwnerID,
		&booking.OwnerEmail,
		&booking.Amount,
		&booking.Currency,
		&booking.Status,
		&booking.CheckoutSessionID,
		&booking.PaymentIntentID,
		&booking.CustomerEmail,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
