package appointment

import (
	"context"

	domain "github.com/Tai-brother/UthMentor/internal/domain/appointment"
	"github.com/Tai-brother/UthMentor/internal/dto"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
)

// ======================================================
// LIST FOR MENTOR
// ======================================================

type ListForMentor struct {
	repo domain.Repository
}

func NewListForMentor(repo domain.Repository) *ListForMentor {
	return &ListForMentor{repo: repo}
}

func (uc *ListForMentor) Execute(
	ctx context.Context,
	user *models.User,
) ([]dto.AppointmentDto, error) {

	if user.Role != models.RoleMentor {
		return nil, httperr.ErrPermission("not_a_mentor")
	}

	mentor, err := uc.repo.GetMentorByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListByMentor(ctx, mentor.ID)
	if err != nil {
		return nil, err
	}

	return mapAll(ctx, uc.repo, aps)
}

// ======================================================
// LIST MINE
// ======================================================

type ListMine struct {
	repo domain.Repository
}

func NewListMine(repo domain.Repository) *ListMine {
	return &ListMine{repo: repo}
}

func (uc *ListMine) Execute(
	ctx context.Context,
	user *models.User,
) ([]dto.AppointmentDto, error) {

	member, err := uc.repo.GetMemberByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, httperr.ErrNotFound("member_not_found")
	}

	aps, err := uc.repo.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	return mapAll(ctx, uc.repo, aps)
}

// ======================================================
// LIST ALL (ADMIN)
// ======================================================

type ListAll struct {
	repo domain.Repository
}

func NewListAll(repo domain.Repository) *ListAll {
	return &ListAll{repo: repo}
}

func (uc *ListAll) Execute(
	ctx context.Context,
	user *models.User,
) ([]dto.AppointmentDto, error) {

	if user.Role != models.RoleAdmin {
		return nil, httperr.ErrPermission("admin_only")
	}

	aps, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapAll(ctx, uc.repo, aps)
}

func mapAll(
	ctx context.Context,
	repo domain.Repository,
	aps []models.Appointment,
) ([]dto.AppointmentDto, error) {

	out := make([]dto.AppointmentDto, 0, len(aps))
	for _, ap := range aps {
		d, err := appointmentToDto(ctx, repo, ap)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
