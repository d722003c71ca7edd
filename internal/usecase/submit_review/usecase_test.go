package submit_review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	reviewstore "github.com/m04kA/BCM-BookingService/internal/infra/storage/review"
)

// fakeReviewRepo хранит отзывы в памяти с уникальностью пары (boat, user)
type fakeReviewRepo struct {
	reviews []*domain.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	for _, r := range f.reviews {
		if r.BoatID == review.BoatID && r.UserID == review.UserID {
			return nil, reviewstore.ErrAlreadyExists
		}
	}
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeReviewRepo) ExistsByBoatAndUser(_ context.Context, boatID, userID string) (bool, error) {
	for _, r := range f.reviews {
		if r.BoatID == boatID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) AggregateByBoat(_ context.Context, boatID string) (float64, int, error) {
	var sum float64
	var count int
	for _, r := range f.reviews {
		if r.BoatID == boatID {
			sum += float64(r.Stars)
			count++
		}
	}
	return sum, count, nil
}

type fakeBoatRepo struct {
	boat         *domain.Boat
	rating       float64
	reviewsCount int
}

func (f *fakeBoatRepo) GetByID(_ context.Context, _ string) (*domain.Boat, error) {
	return f.boat, nil
}

func (f *fakeBoatRepo) UpdateRating(_ context.Context, _ string, rating float64, reviewsCount int) error {
	f.rating = rating
	f.reviewsCount = reviewsCount
	return nil
}

type fakeBookingRepo struct {
	hasBooking bool
}

func (f *fakeBookingRepo) HasConfirmedForUser(_ context.Context, _, _ string) (bool, error) {
	return f.hasBooking, nil
}

// fakeTxManager выполняет fn без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(boat *domain.Boat, hasBooking bool) (*UseCase, *fakeReviewRepo, *fakeBoatRepo) {
	reviewRepo := &fakeReviewRepo{}
	boatRepo := &fakeBoatRepo{boat: boat}
	bookingRepo := &fakeBookingRepo{hasBooking: hasBooking}
	uc := NewUseCase(boatRepo, bookingRepo, reviewRepo, fakeTxManager{}, nopLogger{})
	return uc, reviewRepo, boatRepo
}

func testBoat() *domain.Boat {
	return &domain.Boat{ID: "boat-1", Name: "Northern Star", OwnerID: "owner-xyz"}
}

func TestExecute_SubmitsReviewAndRecomputesRating(t *testing.T) {
	uc, reviewRepo, boatRepo := newTestUseCase(testBoat(), true)

	first, err := uc.Execute(context.Background(), Request{
		BoatID: "boat-1", UserID: "user-a", UserName: "Alice", Stars: 5, Text: "Great trip",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, first.Rating)
	assert.Equal(t, 1, first.ReviewsCount)

	second, err := uc.Execute(context.Background(), Request{
		BoatID: "boat-1", UserID: "user-b", UserName: "Bob", Stars: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, second.Rating)
	assert.Equal(t, 2, second.ReviewsCount)

	assert.Len(t, reviewRepo.reviews, 2)
	assert.Equal(t, 4.0, boatRepo.rating)
	assert.Equal(t, 2, boatRepo.reviewsCount)
}

func TestExecute_InvalidStars(t *testing.T) {
	uc, reviewRepo, _ := newTestUseCase(testBoat(), true)

	for _, stars := range []int{0, 6, -1} {
		_, err := uc.Execute(context.Background(), Request{
			BoatID: "boat-1", UserID: "user-a", Stars: stars,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "stars %d", stars)
	}
	assert.Empty(t, reviewRepo.reviews)
}

func TestExecute_OwnerCannotReview(t *testing.T) {
	uc, reviewRepo, _ := newTestUseCase(testBoat(), true)

	_, err := uc.Execute(context.Background(), Request{
		BoatID: "boat-1", UserID: "owner-xyz", Stars: 5,
	})
	assert.ErrorIs(t, err, ErrOwnReview)
	assert.Empty(t, reviewRepo.reviews)
}

func TestExecute_RequiresConfirmedBooking(t *testing.T) {
	uc, reviewRepo, _ := newTestUseCase(testBoat(), false)

	_, err := uc.Execute(context.Background(), Request{
		BoatID: "boat-1", UserID: "user-a", Stars: 4,
	})
	assert.ErrorIs(t, err, ErrNoConfirmedBooking)
	assert.Empty(t, reviewRepo.reviews)
}

func TestExecute_DuplicateReview(t *testing.T) {
	uc, reviewRepo, _ := newTestUseCase(testBoat(), true)

	_, err := uc.Execute(context.Background(), Request{
		BoatID: "boat-1", UserID: "user-a", Stars: 5,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), Request{
		BoatID: "boat-1", UserID: "user-a", Stars: 1,
	})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Len(t, reviewRepo.reviews, 1)
}

// Гонка двух параллельных отзывов одного пользователя упирается
// в ограничение уникальности БД и мапится на ErrAlreadyReviewed
func TestExecute_UniqueConstraintRace(t *testing.T) {
	reviewRepo := &fakeReviewRepo{reviews: []*domain.Review{
		{BoatID: "boat-1", UserID: "user-a", Stars: 5},
	}}
	boatRepo := &fakeBoatRepo{boat: testBoat()}
	uc := NewUseCase(boatRepo, &fakeBookingRepo{hasBooking: true}, &raceReviewRepo{inner: reviewRepo}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), Request{
		BoatID: "boat-1", UserID: "user-a", Stars: 4,
	})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

// raceReviewRepo имитирует гонку: проверка существования проходит,
// но вставка натыкается на ограничение уникальности
type raceReviewRepo struct {
	inner *fakeReviewRepo
}

func (r *raceReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	return r.inner.Create(ctx, review)
}

func (r *raceReviewRepo) ExistsByBoatAndUser(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *raceReviewRepo) AggregateByBoat(ctx context.Context, boatID string) (float64, int, error) {
	return r.inner.AggregateByBoat(ctx, boatID)
}
