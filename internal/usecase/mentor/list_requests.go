package mentor

import (
	"context"

	domain "github.com/Tai-brother/UthMentor/internal/domain/mentor"
	"github.com/Tai-brother/UthMentor/internal/dto"
)

type ListRequests struct {
	repo domain.Repository
}

func NewListRequests(repo domain.Repository) *ListRequests {
	return &ListRequests{repo: repo}
}

func (uc *ListRequests) Execute(ctx context.Context) ([]dto.MentorRequestDto, error) {
	reqs, err := uc.repo.ListRequests(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MentorRequestDto, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, requestToDto(req))
	}
	return out, nil
}
