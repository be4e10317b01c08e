package mentor

import (
	"context"

	"github.com/Tai-brother/UthMentor/internal/models"
)

type Repository interface {
	// InTx runs fn against a repository bound to one transaction;
	// any error rolls every write back.
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Mentor Request --------
	GetRequestByID(
		ctx context.Context,
		id uint,
	) (*models.MentorRequest, error)

	CreateRequest(
		ctx context.Context,
		req *models.MentorRequest,
	) error

	SaveRequest(
		ctx context.Context,
		req *models.MentorRequest,
	) error

	ListRequests(
		ctx context.Context,
	) ([]models.MentorRequest, error)

	// -------- Mentor --------
	MentorExistsForUser(
		ctx context.Context,
		userID uint,
	) (bool, error)

	GetMentorByID(
		ctx context.Context,
		id uint,
	) (*models.Mentor, error)

	GetMentorByUser(
		ctx context.Context,
		userID uint,
	) (*models.Mentor, error)

	CreateMentor(
		ctx context.Context,
		m *models.Mentor,
	) error

	SaveMentor(
		ctx context.Context,
		m *models.Mentor,
	) error

	SearchMentors(
		ctx context.Context,
		name string,
		field string,
		page int,
		size int,
	) ([]models.Mentor, error)

	ListMentors(
		ctx context.Context,
	) ([]models.Mentor, error)

	// -------- User --------
	PromoteUser(
		ctx context.Context,
		userID uint,
		role string,
	) error

	// -------- Field --------
	GetFieldByID(
		ctx context.Context,
		id uint,
	) (*models.Field, error)

	// -------- Schedule --------
	GetScheduleByMentor(
		ctx context.Context,
		mentorID uint,
	) (*models.Schedule, error)

	CreateSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	SaveSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error
}

// ImageStore uploads a mentor request's profile image and returns its
// public URL.
type ImageStore interface {
	UploadImage(
		ctx context.Context,
		data []byte,
	) (string, error)
}
