package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	boatstore "github.com/m04kA/BCM-BookingService/internal/infra/storage/boat"
)

type fakeBoatRepo struct {
	boat *domain.Boat
	err  error
}

func (f *fakeBoatRepo) GetByID(_ context.Context, _ string) (*domain.Boat, error) {
	return f.boat, f.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByBoatAndDate(_ context.Context, _ string, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func newTestBoat() *domain.Boat {
	return &domain.Boat{
		ID: "boat-1",
		Rule: domain.AvailabilityRule{
			StartHour:       9,
			EndHour:         22,
			SlotLengthHours: 4,
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
}

func TestExecute_AllSlotsFree(t *testing.T) {
	uc := NewUseCase(&fakeBoatRepo{boat: newTestBoat()}, &fakeBookingRepo{}, nopLogger{})
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), Request{BoatID: "boat-1", Date: "2026-07-15"})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00-13:00", "13:00-17:00", "17:00-21:00"}, resp.AvailableSlots)
	assert.Empty(t, resp.BookedSlots)
}

func TestExecute_BookedSlotsExcluded(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{Slot: "13:00-17:00", Status: domain.StatusConfirmed},
	}}

	uc := NewUseCase(&fakeBoatRepo{boat: newTestBoat()}, bookingRepo, nopLogger{})
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), Request{BoatID: "boat-1", Date: "2026-07-15"})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00-13:00", "17:00-21:00"}, resp.AvailableSlots)
	assert.Equal(t, []string{"13:00-17:00"}, resp.BookedSlots)
}

func TestExecute_BoatMarkersMerged(t *testing.T) {
	// Маркер на карточке учитывается, дубликаты с бронированиями не множатся
	boat := newTestBoat()
	boat.BookedSlots = map[string][]string{
		"2026-07-15": {"09:00-13:00", "13:00-17:00"},
	}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{Slot: "13:00-17:00", Status: domain.StatusConfirmed},
	}}

	uc := NewUseCase(&fakeBoatRepo{boat: boat}, bookingRepo, nopLogger{})
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), Request{BoatID: "boat-1", Date: "2026-07-15"})
	require.NoError(t, err)

	assert.Equal(t, []string{"17:00-21:00"}, resp.AvailableSlots)
	assert.ElementsMatch(t, []string{"09:00-13:00", "13:00-17:00"}, resp.BookedSlots)
}

func TestExecute_PastDateHasNoAvailability(t *testing.T) {
	uc := NewUseCase(&fakeBoatRepo{boat: newTestBoat()}, &fakeBookingRepo{}, nopLogger{})
	uc.now = fixedNow

	resp, err := uc.Execute(context.Background(), Request{BoatID: "boat-1", Date: "2026-06-30"})
	require.NoError(t, err)

	assert.Empty(t, resp.AvailableSlots)
}

func TestExecute_BoatNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBoatRepo{err: boatstore.ErrBoatNotFound}, &fakeBookingRepo{}, nopLogger{})
	uc.now = fixedNow

	_, err := uc.Execute(context.Background(), Request{BoatID: "missing", Date: "2026-07-15"})
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := NewUseCase(&fakeBoatRepo{boat: newTestBoat()}, &fakeBookingRepo{}, nopLogger{})
	uc.now = fixedNow

	cases := []Request{
		{BoatID: "", Date: "2026-07-15"},
		{BoatID: "boat-1", Date: ""},
		{BoatID: "boat-1", Date: "15.07.2026"},
	}
	for _, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "request %+v", req)
	}
}
