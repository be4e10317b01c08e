package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Tai-brother/UthMentor/internal/domain/review"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetMentorByID(
	ctx context.Context,
	id uint,
) (*models.Mentor, error) {

	var m models.Mentor
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("mentor_not_found")
		}
		return nil, err
	}
	return &m, nil
}

func (r *ReviewGormRepository) GetMemberByUser(
	ctx context.Context,
	userID uint,
) (*models.Member, error) {

	var m models.Member
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&m).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("member_not_found")
		}
		return nil, err
	}
	return &m, nil
}

func (r *ReviewGormRepository) HasReview(
	ctx context.Context,
	memberID uint,
	mentorID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("member_id = ? AND mentor_id = ?", memberID, mentorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewGormRepository) ListByMentor(
	ctx context.Context,
	mentorID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Where("mentor_id = ?", mentorID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) AverageRating(
	ctx context.Context,
	mentorID uint,
) (float64, error) {

	var avg *float64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("AVG(rating)").
		Where("mentor_id = ?", mentorID).
		Scan(&avg).Error; err != nil {
		return 0, err
	}

	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
