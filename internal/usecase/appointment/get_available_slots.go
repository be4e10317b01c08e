package appointment

import (
	"context"
	"time"

	domain "github.com/Tai-brother/UthMentor/internal/domain/appointment"
)

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

// Execute returns the mentor's free slot starts for a date, ascending.
// Pure read: the booking path re-checks exclusivity on commit.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	mentorID uint,
	date time.Time,
) ([]string, error) {

	if _, err := uc.repo.GetMentorByID(ctx, mentorID); err != nil {
		return nil, err
	}

	sched, err := uc.repo.GetScheduleForWeekday(ctx, mentorID, date.Weekday())
	if err != nil {
		return nil, err
	}

	dateStr := date.Format(domain.DateLayout)

	candidates, err := domain.CandidateSlots(sched.StartTime, sched.EndTime)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for _, hm := range candidates {
		taken, err := uc.repo.SlotTaken(ctx, mentorID, dateStr, hm)
		if err != nil {
			return nil, err
		}
		if !taken {
			slots = append(slots, hm)
		}
	}

	return slots, nil
}
