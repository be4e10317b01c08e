package appointment

import (
	"context"
	"time"

	"github.com/Tai-brother/UthMentor/internal/models"
)

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

type Repository interface {
	// -------- Mentor --------
	GetMentorByID(
		ctx context.Context,
		id uint,
	) (*models.Mentor, error)

	GetMentorByUser(
		ctx context.Context,
		userID uint,
	) (*models.Mentor, error)

	// -------- Schedule --------
	GetScheduleForWeekday(
		ctx context.Context,
		mentorID uint,
		day time.Weekday,
	) (*models.Schedule, error)

	// -------- Slot exclusivity --------
	SlotTaken(
		ctx context.Context,
		mentorID uint,
		date string,
		hm string,
	) (bool, error)

	// CreateAppointment must translate a duplicate (mentor, date, time)
	// key into a Conflict business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Member --------
	GetMemberByUser(
		ctx context.Context,
		userID uint,
	) (*models.Member, error)

	// CreateMemberPromoting creates the member and flips the owning
	// user's role to MEMBER in one transaction.
	CreateMemberPromoting(
		ctx context.Context,
		member *models.Member,
	) error

	// -------- Review --------
	HasReview(
		ctx context.Context,
		memberID uint,
		mentorID uint,
	) (bool, error)

	// -------- Listings --------
	ListByMentor(
		ctx context.Context,
		mentorID uint,
	) ([]models.Appointment, error)

	ListByMember(
		ctx context.Context,
		memberID uint,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)
}
