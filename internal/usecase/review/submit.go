package review

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/Tai-brother/UthMentor/internal/domain/review"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
)

// ======================================================
// SUBMIT
// ======================================================

type SubmitInput struct {
	MentorID uint
	Rating   int
	Comment  string
}

type Submit struct {
	repo    domain.Repository
	ratings domain.RatingCache
	logger  *zap.Logger
}

func NewSubmit(
	repo domain.Repository,
	ratings domain.RatingCache,
	logger *zap.Logger,
) *Submit {
	return &Submit{repo: repo, ratings: ratings, logger: logger}
}

func (uc *Submit) Execute(
	ctx context.Context,
	user *models.User,
	in SubmitInput,
) (string, error) {

	if user.Role != models.RoleMember {
		return "", httperr.ErrPermission("members_only")
	}

	if in.Rating < 1 || in.Rating > 5 {
		return "", httperr.ErrInvalid("invalid_rating")
	}

	mentor, err := uc.repo.GetMentorByID(ctx, in.MentorID)
	if err != nil {
		return "", err
	}

	member, err := uc.repo.GetMemberByUser(ctx, user.ID)
	if err != nil {
		return "", err
	}

	// One review per (member, mentor) pair.
	exists, err := uc.repo.HasReview(ctx, member.ID, mentor.ID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", httperr.ErrConflict("review_already_exists")
	}

	r := &models.Review{
		MemberID: member.ID,
		MentorID: mentor.ID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := uc.repo.CreateReview(ctx, r); err != nil {
		return "", err
	}

	// The cached aggregate is stale now; drop it, stale reads would
	// only last a TTL anyway.
	if err := uc.ratings.Invalidate(ctx, mentor.ID); err != nil {
		uc.logger.Warn("rating invalidation failed",
			zap.Uint("mentor_id", mentor.ID),
			zap.Error(err),
		)
	}

	return "Review submitted successfully", nil
}
