package mentor

import (
	"context"

	domain "github.com/Tai-brother/UthMentor/internal/domain/mentor"
	review "github.com/Tai-brother/UthMentor/internal/domain/review"
	schedule "github.com/Tai-brother/UthMentor/internal/domain/schedule"
	"github.com/Tai-brother/UthMentor/internal/dto"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
)

// ======================================================
// SEARCH
// ======================================================

type Search struct {
	repo    domain.Repository
	ratings review.RatingSource
}

func NewSearch(repo domain.Repository, ratings review.RatingSource) *Search {
	return &Search{repo: repo, ratings: ratings}
}

func (uc *Search) Execute(
	ctx context.Context,
	name string,
	field string,
	page int,
) ([]dto.MentorDto, error) {

	mentors, err := uc.repo.SearchMentors(ctx, name, field, page, 10)
	if err != nil {
		return nil, err
	}
	return mapMentors(ctx, uc.repo, uc.ratings, mentors)
}

// ======================================================
// GET / LIST / PROFILE
// ======================================================

type GetMentor struct {
	repo    domain.Repository
	ratings review.RatingSource
}

func NewGetMentor(repo domain.Repository, ratings review.RatingSource) *GetMentor {
	return &GetMentor{repo: repo, ratings: ratings}
}

func (uc *GetMentor) ByID(ctx context.Context, id uint) (*dto.MentorDto, error) {
	mentor, err := uc.repo.GetMentorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := mentorToDto(ctx, uc.repo, uc.ratings, *mentor)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ProfileFor resolves the mentor profile owned by the acting user.
func (uc *GetMentor) ProfileFor(ctx context.Context, user *models.User) (*dto.MentorDto, error) {
	if user.Role != models.RoleMentor {
		return nil, httperr.ErrPermission("not_a_mentor")
	}

	mentor, err := uc.repo.GetMentorByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	d, err := mentorToDto(ctx, uc.repo, uc.ratings, *mentor)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (uc *GetMentor) All(ctx context.Context) ([]dto.MentorDto, error) {
	mentors, err := uc.repo.ListMentors(ctx)
	if err != nil {
		return nil, err
	}
	return mapMentors(ctx, uc.repo, uc.ratings, mentors)
}

// ======================================================
// MAPPING
// ======================================================

func mapMentors(
	ctx context.Context,
	repo domain.Repository,
	ratings review.RatingSource,
	mentors []models.Mentor,
) ([]dto.MentorDto, error) {

	out := make([]dto.MentorDto, 0, len(mentors))
	for _, m := range mentors {
		d, err := mentorToDto(ctx, repo, ratings, m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func mentorToDto(
	ctx context.Context,
	repo domain.Repository,
	ratings review.RatingSource,
	m models.Mentor,
) (dto.MentorDto, error) {

	rating, err := ratings.AverageRating(ctx, m.ID)
	if err != nil {
		return dto.MentorDto{}, err
	}

	d := dto.MentorDto{
		ID:          m.ID,
		FullName:    m.FullName,
		FirstName:   m.User.FirstName,
		LastName:    m.User.LastName,
		Email:       m.User.Email,
		Address:     m.User.Address,
		Phone:       m.User.PhoneNumber,
		FieldID:     m.FieldID,
		FieldName:   m.Field.Name,
		Fee:         m.Fee,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Rating:      rating,
	}

	// The schedule rides along on the profile when present.
	if sched, err := repo.GetScheduleByMentor(ctx, m.ID); err == nil {
		d.StartTime = sched.StartTime
		d.EndTime = sched.EndTime
		d.DaysOfWeek = schedule.SplitDays(sched.DaysOfWeek)
	} else if !httperr.IsKind(err, httperr.KindNotFound) {
		return dto.MentorDto{}, err
	}

	return d, nil
}
