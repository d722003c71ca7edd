package confirm_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/internal/integrations/stripeclient"
)

// fakeBookingRepo хранит бронирования в памяти с upsert-семантикой БД
type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	upserts  int
	err      error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (f *fakeBookingRepo) Upsert(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upserts++

	stored, exists := f.bookings[booking.ID]
	if exists {
		updated := *booking
		updated.CreatedAt = stored.CreatedAt
		updated.UpdatedAt = time.Now()
		f.bookings[booking.ID] = &updated
		return &updated, nil
	}

	created := *booking
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings[booking.ID] = &created
	return &created, nil
}

type fakeBoatRepo struct {
	markers []string
	err     error
}

func (f *fakeBoatRepo) AddBookedSlot(_ context.Context, id, date, slot string) error {
	if f.err != nil {
		return f.err
	}
	f.markers = append(f.markers, id+"|"+date+"|"+slot)
	return nil
}

type fakePublisher struct {
	keys []string
	err  error
}

func (f *fakePublisher) PublishJSON(_ context.Context, key string, _ any) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func paidSession() *stripeclient.CheckoutSession {
	return &stripeclient.CheckoutSession{
		ID:            "cs_test_123",
		PaymentStatus: "paid",
		Status:        "complete",
		Metadata: map[string]string{
			domain.MetaBoatID:     "boat-1",
			domain.MetaBoatName:   "Northern Star",
			domain.MetaDate:       "2026-07-15",
			domain.MetaSlot:       "09:00-13:00",
			domain.MetaUserID:     "user-abc",
			domain.MetaOwnerID:    "owner-xyz",
			domain.MetaOwnerEmail: "owner@example.com",
		},
		AmountTotal:     45000,
		Currency:        "cad",
		PaymentIntentID: "pi_test_123",
		CustomerEmail:   "payer@example.com",
	}
}

func TestExecute_WritesConfirmedBooking(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	boatRepo := &fakeBoatRepo{}
	publisher := &fakePublisher{}
	uc := NewUseCase(bookingRepo, boatRepo, publisher, nopLogger{})

	resp, err := uc.Execute(context.Background(), paidSession())
	require.NoError(t, err)

	assert.Equal(t, "boat-1__2026-07-15__09:00-13:00__user-abc", resp.BookingID)
	assert.Equal(t, 450.0, resp.Amount)
	assert.Equal(t, "cad", resp.Currency)

	stored := bookingRepo.bookings[resp.BookingID]
	require.NotNil(t, stored)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Equal(t, "cs_test_123", stored.CheckoutSessionID)
	assert.Equal(t, "pi_test_123", stored.PaymentIntentID)
	assert.Equal(t, "owner-xyz", stored.OwnerID)

	assert.Equal(t, []string{"boat-1|2026-07-15|09:00-13:00"}, boatRepo.markers)
	assert.Equal(t, []string{"booking.confirmed"}, publisher.keys)
}

// Передоставка события и параллельный verify сходятся в одну запись
func TestExecute_Idempotent(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	uc := NewUseCase(bookingRepo, &fakeBoatRepo{}, nil, nopLogger{})

	first, err := uc.Execute(context.Background(), paidSession())
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), paidSession())
	require.NoError(t, err)

	assert.Equal(t, first.BookingID, second.BookingID)
	assert.Len(t, bookingRepo.bookings, 1)
	assert.Equal(t, 2, bookingRepo.upserts)
}

// Повторная оплата того же intent под другой сессией перезаписывает
// ту же запись, а не создаёт дубль
func TestExecute_SameIntentDifferentSession(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	uc := NewUseCase(bookingRepo, &fakeBoatRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), paidSession())
	require.NoError(t, err)

	other := paidSession()
	other.ID = "cs_test_456"
	resp, err := uc.Execute(context.Background(), other)
	require.NoError(t, err)

	assert.Len(t, bookingRepo.bookings, 1)
	assert.Equal(t, "cs_test_456", bookingRepo.bookings[resp.BookingID].CheckoutSessionID)
}

func TestExecute_UnpaidSession(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	uc := NewUseCase(bookingRepo, &fakeBoatRepo{}, nil, nopLogger{})

	session := paidSession()
	session.PaymentStatus = "unpaid"
	session.Status = "open"

	_, err := uc.Execute(context.Background(), session)
	assert.ErrorIs(t, err, ErrNotPaid)
	assert.Empty(t, bookingRepo.bookings)
}

// Статус complete без payment_status=paid тоже считается оплаченным
func TestExecute_CompleteWithoutPaidStatus(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), &fakeBoatRepo{}, nil, nopLogger{})

	session := paidSession()
	session.PaymentStatus = "no_payment_required"
	session.Status = "complete"

	_, err := uc.Execute(context.Background(), session)
	assert.NoError(t, err)
}

func TestExecute_MalformedMetadata(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	uc := NewUseCase(bookingRepo, &fakeBoatRepo{}, nil, nopLogger{})

	session := paidSession()
	delete(session.Metadata, domain.MetaUserID)

	_, err := uc.Execute(context.Background(), session)
	assert.ErrorIs(t, err, ErrMalformedIntent)
	assert.Empty(t, bookingRepo.bookings)
}

func TestExecute_UnparseableDate(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), &fakeBoatRepo{}, nil, nopLogger{})

	session := paidSession()
	session.Metadata[domain.MetaDate] = "July 15, 2026"

	_, err := uc.Execute(context.Background(), session)
	assert.ErrorIs(t, err, ErrMalformedIntent)
}

func TestExecute_StorageFailure(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	bookingRepo.err = errors.New("connection reset")
	uc := NewUseCase(bookingRepo, &fakeBoatRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), paidSession())
	assert.ErrorIs(t, err, ErrStorage)
}

// Ошибки маркера слота и публикации события не ломают реконсиляцию
func TestExecute_BestEffortSideEffects(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	boatRepo := &fakeBoatRepo{err: errors.New("jsonb update failed")}
	publisher := &fakePublisher{err: errors.New("broker down")}
	uc := NewUseCase(bookingRepo, boatRepo, publisher, nopLogger{})

	resp, err := uc.Execute(context.Background(), paidSession())
	require.NoError(t, err)
	assert.NotNil(t, bookingRepo.bookings[resp.BookingID])
}

func TestExecute_DefaultCurrency(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), &fakeBoatRepo{}, nil, nopLogger{})

	session := paidSession()
	session.Currency = ""

	resp, err := uc.Execute(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, resp.Currency)
}
