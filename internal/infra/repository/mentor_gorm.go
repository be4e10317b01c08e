package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/Tai-brother/UthMentor/internal/domain/mentor"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
)

type MentorGormRepository struct {
	db *gorm.DB
}

func NewMentorGormRepository(db *gorm.DB) *MentorGormRepository {
	return &MentorGormRepository{db: db}
}

// InTx rebinds the repository to a single gorm transaction so the
// onboarding approval's four writes commit or roll back together.
func (r *MentorGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&MentorGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Mentor Request
// --------------------------------------------------

func (r *MentorGormRepository) GetRequestByID(
	ctx context.Context,
	id uint,
) (*models.MentorRequest, error) {

	var req models.MentorRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Field").
		First(&req, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("mentor_request_not_found")
		}
		return nil, err
	}
	return &req, nil
}

func (r *MentorGormRepository) CreateRequest(
	ctx context.Context,
	req *models.MentorRequest,
) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *MentorGormRepository) SaveRequest(
	ctx context.Context,
	req *models.MentorRequest,
) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *MentorGormRepository) ListRequests(
	ctx context.Context,
) ([]models.MentorRequest, error) {

	var reqs []models.MentorRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Field").
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// --------------------------------------------------
// Mentor
// --------------------------------------------------

func (r *MentorGormRepository) MentorExistsForUser(
	ctx context.Context,
	userID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Mentor{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MentorGormRepository) GetMentorByID(
	ctx context.Context,
	id uint,
) (*models.Mentor, error) {

	var m models.Mentor
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Preload("User").
		First(&m, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("mentor_not_found")
		}
		return nil, err
	}
	return &m, nil
}

func (r *MentorGormRepository) GetMentorByUser(
	ctx context.Context,
	userID uint,
) (*models.Mentor, error) {

	var m models.Mentor
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Preload("User").
		Where("user_id = ?", userID).
		First(&m).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("mentor_not_found")
		}
		return nil, err
	}
	return &m, nil
}

func (r *MentorGormRepository) CreateMentor(
	ctx context.Context,
	m *models.Mentor,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MentorGormRepository) SaveMentor(
	ctx context.Context,
	m *models.Mentor,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MentorGormRepository) SearchMentors(
	ctx context.Context,
	name string,
	field string,
	page int,
	size int,
) ([]models.Mentor, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Mentor{}).
		Preload("Field").
		Preload("User").
		Joins("LEFT JOIN fields ON fields.id = mentors.field_id")

	if name = strings.TrimSpace(name); name != "" {
		q = q.Where("LOWER(mentors.full_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if field = strings.TrimSpace(field); field != "" {
		q = q.Where("LOWER(fields.name) LIKE ?", "%"+strings.ToLower(field)+"%")
	}

	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}

	var mentors []models.Mentor
	if err := q.
		Order("mentors.full_name ASC").
		Offset(page * size).
		Limit(size).
		Find(&mentors).Error; err != nil {
		return nil, err
	}
	return mentors, nil
}

func (r *MentorGormRepository) ListMentors(
	ctx context.Context,
) ([]models.Mentor, error) {

	var mentors []models.Mentor
	if err := r.db.WithContext(ctx).
		Preload("Field").
		Preload("User").
		Order("full_name ASC").
		Find(&mentors).Error; err != nil {
		return nil, err
	}
	return mentors, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *MentorGormRepository) PromoteUser(
	ctx context.Context,
	userID uint,
	role string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", role).Error
}

// --------------------------------------------------
// Field
// --------------------------------------------------

func (r *MentorGormRepository) GetFieldByID(
	ctx context.Context,
	id uint,
) (*models.Field, error) {

	var f models.Field
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("field_not_found")
		}
		return nil, err
	}
	return &f, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *MentorGormRepository) GetScheduleByMentor(
	ctx context.Context,
	mentorID uint,
) (*models.Schedule, error) {

	var s models.Schedule
	if err := r.db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		First(&s).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("schedule_not_found")
		}
		return nil, err
	}
	return &s, nil
}

func (r *MentorGormRepository) CreateSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *MentorGormRepository) SaveSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Compile-time check
var _ domain.Repository = (*MentorGormRepository)(nil)
