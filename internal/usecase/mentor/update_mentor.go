package mentor

import (
	"context"

	domain "github.com/Tai-brother/UthMentor/internal/domain/mentor"
	schedule "github.com/Tai-brother/UthMentor/internal/domain/schedule"
)

// ======================================================
// UPDATE MENTOR
// ======================================================

type UpdateMentorInput struct {
	DaysOfWeek []string
	FieldID    *uint
	StartTime  *string
	EndTime    *string
}

type UpdateMentor struct {
	repo domain.Repository
}

func NewUpdateMentor(repo domain.Repository) *UpdateMentor {
	return &UpdateMentor{repo: repo}
}

// Execute applies only the supplied fields. Start and end are taken as
// a pair: supplying one without the other leaves the window untouched.
// Mentor and schedule persist together.
func (uc *UpdateMentor) Execute(
	ctx context.Context,
	mentorID uint,
	in UpdateMentorInput,
) (string, error) {

	mentor, err := uc.repo.GetMentorByID(ctx, mentorID)
	if err != nil {
		return "", err
	}

	sched, err := uc.repo.GetScheduleByMentor(ctx, mentor.ID)
	if err != nil {
		return "", err
	}

	if in.DaysOfWeek != nil {
		csv, err := schedule.JoinDays(in.DaysOfWeek)
		if err != nil {
			return "", err
		}
		sched.DaysOfWeek = csv
	}

	if in.FieldID != nil {
		field, err := uc.repo.GetFieldByID(ctx, *in.FieldID)
		if err != nil {
			return "", err
		}
		mentor.FieldID = field.ID
		mentor.Field = *field
	}

	if in.StartTime != nil && in.EndTime != nil {
		if err := schedule.ValidWindow(*in.StartTime, *in.EndTime); err != nil {
			return "", err
		}
		sched.StartTime = *in.StartTime
		sched.EndTime = *in.EndTime
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if err := tx.SaveMentor(ctx, mentor); err != nil {
			return err
		}
		return tx.SaveSchedule(ctx, sched)
	})
	if err != nil {
		return "", err
	}

	return "Update mentor successfully", nil
}
