package boats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	boatstore "github.com/m04kA/BCM-BookingService/internal/infra/storage/boat"
	"github.com/m04kA/BCM-BookingService/internal/service/boats/models"
	"github.com/m04kA/BCM-BookingService/pkg/ptr"
)

type fakeBoatRepo struct {
	created *domain.Boat
	boats   []*domain.Boat
}

func (f *fakeBoatRepo) Create(_ context.Context, boat *domain.Boat) (*domain.Boat, error) {
	f.created = boat
	return boat, nil
}

func (f *fakeBoatRepo) GetByID(_ context.Context, id string) (*domain.Boat, error) {
	for _, b := range f.boats {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, boatstore.ErrBoatNotFound
}

func (f *fakeBoatRepo) List(_ context.Context) ([]*domain.Boat, error) {
	return f.boats, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_AppliesDefaultRule(t *testing.T) {
	repo := &fakeBoatRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateBoatRequest{
		Name:    "Northern Star",
		OwnerID: "owner-xyz",
		Price:   450,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.DefaultStartHour, resp.StartHour)
	assert.Equal(t, domain.DefaultEndHour, resp.EndHour)
	assert.Equal(t, domain.DefaultSlotLengthHours, resp.SlotLengthHours)
	assert.Equal(t, domain.DefaultMinHours, resp.MinHours)
}

func TestCreate_CustomRule(t *testing.T) {
	repo := &fakeBoatRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateBoatRequest{
		Name:            "Harbour Queen",
		OwnerID:         "owner-xyz",
		Price:           600,
		StartHour:       ptr.Ptr(10),
		EndHour:         ptr.Ptr(18),
		SlotLengthHours: ptr.Ptr(2),
		MinHours:        ptr.Ptr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.StartHour)
	assert.Equal(t, 18, resp.EndHour)
	assert.Equal(t, 2, resp.SlotLengthHours)
	assert.Equal(t, domain.AvailabilityRule{StartHour: 10, EndHour: 18, SlotLengthHours: 2, MinHours: 2},
		repo.created.Rule)
}

func TestGetByID(t *testing.T) {
	repo := &fakeBoatRepo{boats: []*domain.Boat{{ID: "boat-1", Name: "Northern Star"}}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "boat-1")
	require.NoError(t, err)
	assert.Equal(t, "Northern Star", resp.Name)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestCreate_Invalid(t *testing.T) {
	svc := NewService(&fakeBoatRepo{}, nopLogger{})

	cases := []*models.CreateBoatRequest{
		{OwnerID: "owner-xyz", Price: 450},            // no name
		{Name: "Boat", Price: 450},                    // no owner
		{Name: "Boat", OwnerID: "owner-xyz", Price: -1},
		// Правило не даёт ни одного слота
		{Name: "Boat", OwnerID: "owner-xyz", Price: 450, StartHour: ptr.Ptr(20), EndHour: ptr.Ptr(9)},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "request %+v", req)
	}
}
