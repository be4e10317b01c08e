package review

import (
	"context"
	"math"

	"github.com/Tai-brother/UthMentor/internal/models"
)

type Repository interface {
	GetMentorByID(
		ctx context.Context,
		id uint,
	) (*models.Mentor, error)

	GetMemberByUser(
		ctx context.Context,
		userID uint,
	) (*models.Member, error)

	HasReview(
		ctx context.Context,
		memberID uint,
		mentorID uint,
	) (bool, error)

	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	ListByMentor(
		ctx context.Context,
		mentorID uint,
	) ([]models.Review, error)

	// AverageRating returns the raw mean; 0 for a mentor without reviews.
	AverageRating(
		ctx context.Context,
		mentorID uint,
	) (float64, error)
}

// RatingSource serves the (possibly cached) rounded average rating.
type RatingSource interface {
	AverageRating(
		ctx context.Context,
		mentorID uint,
	) (float64, error)
}

// RatingCache is a RatingSource whose entries can be dropped after a
// new review lands.
type RatingCache interface {
	RatingSource

	Invalidate(
		ctx context.Context,
		mentorID uint,
	) error
}

// Round1 rounds a mean rating to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
