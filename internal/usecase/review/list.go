package review

import (
	"context"

	domain "github.com/Tai-brother/UthMentor/internal/domain/review"
	"github.com/Tai-brother/UthMentor/internal/dto"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, mentorID uint) ([]dto.ReviewDto, error) {
	if _, err := uc.repo.GetMentorByID(ctx, mentorID); err != nil {
		return nil, err
	}

	reviews, err := uc.repo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReviewDto, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, dto.ReviewDto{
			MentorID:   r.MentorID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			MemberName: r.Member.FirstName + " " + r.Member.LastName,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}
