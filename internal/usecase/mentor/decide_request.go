package mentor

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/Tai-brother/UthMentor/internal/domain/mentor"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
)

// ======================================================
// DECIDE REQUEST
// ======================================================

// DecideRequest drives the onboarding state machine:
// PENDING -> APPROVED | REJECTED, terminal once decided.
type DecideRequest struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewDecideRequest(repo domain.Repository, logger *zap.Logger) *DecideRequest {
	return &DecideRequest{repo: repo, logger: logger}
}

func (uc *DecideRequest) Execute(
	ctx context.Context,
	requestID uint,
	statusToken string,
) (string, error) {

	target, err := domain.ParseStatus(statusToken)
	if err != nil {
		return "", err
	}

	req, err := uc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return "", err
	}

	if domain.Status(req.Status).Terminal() {
		return "", httperr.ErrConflict("request_already_decided")
	}

	switch target {
	case domain.StatusPending:
		// Informational no-op; the request stays where it is.
		return "Mentor request is still pending", nil

	case domain.StatusApproved:
		if err := uc.approve(ctx, req); err != nil {
			return "", err
		}
		return "Mentor request approved successfully", nil

	default:
		req.Status = string(domain.StatusRejected)
		if err := uc.repo.SaveRequest(ctx, req); err != nil {
			return "", err
		}
		uc.logger.Info("mentor request rejected", zap.Uint("request_id", req.ID))
		return "Mentor request rejected.", nil
	}
}

// approve applies the four onboarding writes as one unit: mentor row,
// role promotion, schedule, request status. A failure anywhere rolls
// everything back, so a half-approved mentor is never observable.
func (uc *DecideRequest) approve(ctx context.Context, req *models.MentorRequest) error {
	exists, err := uc.repo.MentorExistsForUser(ctx, req.UserID)
	if err != nil {
		return err
	}
	if exists {
		return httperr.ErrConflict("already_a_mentor")
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		mentor := &models.Mentor{
			UserID:      req.UserID,
			FullName:    req.User.FirstName + " " + req.User.LastName,
			FieldID:     req.FieldID,
			Fee:         req.Fee,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		}
		if err := tx.CreateMentor(ctx, mentor); err != nil {
			return err
		}

		if err := tx.PromoteUser(ctx, req.UserID, models.RoleMentor); err != nil {
			return err
		}

		sched := &models.Schedule{
			MentorID:   mentor.ID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			DaysOfWeek: req.DaysOfWeek,
		}
		if err := tx.CreateSchedule(ctx, sched); err != nil {
			return err
		}

		req.Status = string(domain.StatusApproved)
		return tx.SaveRequest(ctx, req)
	})
	if err != nil {
		return err
	}

	uc.logger.Info("mentor request approved",
		zap.Uint("request_id", req.ID),
		zap.Uint("user_id", req.UserID),
	)
	return nil
}
