package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/Tai-brother/UthMentor/internal/domain/appointment"
	schedule "github.com/Tai-brother/UthMentor/internal/domain/schedule"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
)

const pgUniqueViolation = "23505"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Mentor
// --------------------------------------------------

func (r *AppointmentGormRepository) GetMentorByID(
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

func (r *AppointmentGormRepository) GetMentorByUser(
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

// --------------------------------------------------
// Schedule
// --------------------------------------------------

// GetScheduleForWeekday loads the mentor's schedule and keeps it only if
// its weekday set contains the requested day. Days are stored as a
// comma-joined name list, so the membership check happens here rather
// than in SQL.
func (r *AppointmentGormRepository) GetScheduleForWeekday(
	ctx context.Context,
	mentorID uint,
	day time.Weekday,
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

	if !schedule.ContainsDay(s.DaysOfWeek, day) {
		return nil, httperr.ErrNotFound("schedule_not_found")
	}

	return &s, nil
}

// --------------------------------------------------
// Slot exclusivity
// --------------------------------------------------

func (r *AppointmentGormRepository) SlotTaken(
	ctx context.Context,
	mentorID uint,
	date string,
	hm string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"mentor_id = ? AND date = ? AND time = ?",
			mentorID, date, hm,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// The unique index on (mentor_id, date, time) is the real
		// guard; the pre-check only narrows the race window.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return httperr.ErrConflict("slot_already_booked")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Member
// --------------------------------------------------

func (r *AppointmentGormRepository) GetMemberByUser(
	ctx context.Context,
	userID uint,
) (*models.Member, error) {

	var m models.Member
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&m).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AppointmentGormRepository) CreateMemberPromoting(
	ctx context.Context,
	member *models.Member,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", member.UserID).
			Update("role", models.RoleMember).Error
	})
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *AppointmentGormRepository) HasReview(
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

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByMentor(
	ctx context.Context,
	mentorID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Mentor").
		Preload("Mentor.User").
		Preload("Mentor.Field").
		Where("mentor_id = ?", mentorID).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByMember(
	ctx context.Context,
	memberID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Mentor").
		Preload("Mentor.User").
		Preload("Mentor.Field").
		Where("member_id = ?", memberID).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Mentor").
		Preload("Mentor.User").
		Preload("Mentor.Field").
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
