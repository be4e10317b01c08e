package mentor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
	ucMentor "github.com/Tai-brother/UthMentor/internal/usecase/mentor"
)

func seedMentorWithSchedule(repo *fakeMentorRepo) *models.Mentor {
	mentor := &models.Mentor{ID: 1, UserID: 7, FullName: "Minh Tran", FieldID: 2, Fee: 250000}
	repo.mentors[mentor.ID] = mentor
	repo.schedules[mentor.ID] = &models.Schedule{
		ID:         1,
		MentorID:   mentor.ID,
		StartTime:  "09:00",
		EndTime:    "17:00",
		DaysOfWeek: "MONDAY,WEDNESDAY",
	}
	repo.fields[2] = &models.Field{ID: 2, Name: "Software"}
	repo.fields[3] = &models.Field{ID: 3, Name: "Design"}
	return mentor
}

func TestUpdateMentor_PartialDaysOnly(t *testing.T) {
	repo := newFakeMentorRepo()
	seedMentorWithSchedule(repo)
	uc := ucMentor.NewUpdateMentor(repo)

	msg, err := uc.Execute(context.Background(), 1, ucMentor.UpdateMentorInput{
		DaysOfWeek: []string{"friday", "TUESDAY"},
	})
	require.NoError(t, err)
	require.Equal(t, "Update mentor successfully", msg)

	sched := repo.schedules[1]
	require.Equal(t, "TUESDAY,FRIDAY", sched.DaysOfWeek)
	require.Equal(t, "09:00", sched.StartTime)
	require.Equal(t, "17:00", sched.EndTime)
	require.Equal(t, uint(2), repo.mentors[1].FieldID)
}

func TestUpdateMentor_FieldChange(t *testing.T) {
	repo := newFakeMentorRepo()
	seedMentorWithSchedule(repo)
	uc := ucMentor.NewUpdateMentor(repo)

	field := uint(3)
	_, err := uc.Execute(context.Background(), 1, ucMentor.UpdateMentorInput{FieldID: &field})
	require.NoError(t, err)
	require.Equal(t, uint(3), repo.mentors[1].FieldID)
	require.Equal(t, "Design", repo.mentors[1].Field.Name)
}

func TestUpdateMentor_UnknownField(t *testing.T) {
	repo := newFakeMentorRepo()
	seedMentorWithSchedule(repo)
	uc := ucMentor.NewUpdateMentor(repo)

	field := uint(99)
	_, err := uc.Execute(context.Background(), 1, ucMentor.UpdateMentorInput{FieldID: &field})
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestUpdateMentor_WindowRequiresBothEnds(t *testing.T) {
	repo := newFakeMentorRepo()
	seedMentorWithSchedule(repo)
	uc := ucMentor.NewUpdateMentor(repo)

	start := "10:00"
	_, err := uc.Execute(context.Background(), 1, ucMentor.UpdateMentorInput{StartTime: &start})
	require.NoError(t, err)

	// One-sided input leaves the window untouched.
	require.Equal(t, "09:00", repo.schedules[1].StartTime)
	require.Equal(t, "17:00", repo.schedules[1].EndTime)
}

func TestUpdateMentor_WindowApplied(t *testing.T) {
	repo := newFakeMentorRepo()
	seedMentorWithSchedule(repo)
	uc := ucMentor.NewUpdateMentor(repo)

	start, end := "10:00", "16:00"
	_, err := uc.Execute(context.Background(), 1, ucMentor.UpdateMentorInput{
		StartTime: &start,
		EndTime:   &end,
	})
	require.NoError(t, err)
	require.Equal(t, "10:00", repo.schedules[1].StartTime)
	require.Equal(t, "16:00", repo.schedules[1].EndTime)
}

func TestUpdateMentor_InvertedWindowRejected(t *testing.T) {
	repo := newFakeMentorRepo()
	seedMentorWithSchedule(repo)
	uc := ucMentor.NewUpdateMentor(repo)

	start, end := "17:00", "09:00"
	_, err := uc.Execute(context.Background(), 1, ucMentor.UpdateMentorInput{
		StartTime: &start,
		EndTime:   &end,
	})
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindInvalid))
	require.Equal(t, "09:00", repo.schedules[1].StartTime)
}

func TestUpdateMentor_UnknownMentor(t *testing.T) {
	repo := newFakeMentorRepo()
	uc := ucMentor.NewUpdateMentor(repo)

	_, err := uc.Execute(context.Background(), 42, ucMentor.UpdateMentorInput{})
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
