package mentor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/Tai-brother/UthMentor/internal/domain/mentor"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
	ucMentor "github.com/Tai-brother/UthMentor/internal/usecase/mentor"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

// fakeMentorRepo keeps per-entity slices plus a journal so tests can
// assert on write order and on rollback leaving nothing behind.
type fakeMentorRepo struct {
	requests  map[uint]*models.MentorRequest
	mentors   map[uint]*models.Mentor
	schedules map[uint]*models.Schedule
	fields    map[uint]*models.Field

	roles map[uint]string

	nextMentorID uint

	journal []string

	failOn string
}

func newFakeMentorRepo() *fakeMentorRepo {
	return &fakeMentorRepo{
		requests:     map[uint]*models.MentorRequest{},
		mentors:      map[uint]*models.Mentor{},
		schedules:    map[uint]*models.Schedule{},
		fields:       map[uint]*models.Field{},
		roles:        map[uint]string{},
		nextMentorID: 1,
	}
}

func (f *fakeMentorRepo) fail(op string) error {
	if f.failOn == op {
		return errors.New("injected failure: " + op)
	}
	return nil
}

// InTx snapshots state and restores it when fn errors, mirroring a
// database rollback.
func (f *fakeMentorRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	snapshot := f.clone()
	if err := fn(f); err != nil {
		*f = *snapshot
		return err
	}
	return nil
}

func (f *fakeMentorRepo) clone() *fakeMentorRepo {
	c := newFakeMentorRepo()
	c.failOn = f.failOn
	c.nextMentorID = f.nextMentorID
	c.journal = append([]string(nil), f.journal...)
	for id, r := range f.requests {
		cp := *r
		c.requests[id] = &cp
	}
	for id, m := range f.mentors {
		cp := *m
		c.mentors[id] = &cp
	}
	for id, s := range f.schedules {
		cp := *s
		c.schedules[id] = &cp
	}
	for id, fl := range f.fields {
		cp := *fl
		c.fields[id] = &cp
	}
	for id, role := range f.roles {
		c.roles[id] = role
	}
	return c
}

func (f *fakeMentorRepo) GetRequestByID(_ context.Context, id uint) (*models.MentorRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, httperr.ErrNotFound("mentor_request_not_found")
	}
	return r, nil
}

func (f *fakeMentorRepo) CreateRequest(_ context.Context, req *models.MentorRequest) error {
	req.ID = uint(len(f.requests) + 1)
	f.requests[req.ID] = req
	f.journal = append(f.journal, "create_request")
	return nil
}

func (f *fakeMentorRepo) SaveRequest(_ context.Context, req *models.MentorRequest) error {
	if err := f.fail("save_request"); err != nil {
		return err
	}
	f.requests[req.ID] = req
	f.journal = append(f.journal, "save_request")
	return nil
}

func (f *fakeMentorRepo) ListRequests(_ context.Context) ([]models.MentorRequest, error) {
	var out []models.MentorRequest
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeMentorRepo) MentorExistsForUser(_ context.Context, userID uint) (bool, error) {
	for _, m := range f.mentors {
		if m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMentorRepo) GetMentorByID(_ context.Context, id uint) (*models.Mentor, error) {
	m, ok := f.mentors[id]
	if !ok {
		return nil, httperr.ErrNotFound("mentor_not_found")
	}
	return m, nil
}

func (f *fakeMentorRepo) GetMentorByUser(_ context.Context, userID uint) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, httperr.ErrNotFound("mentor_not_found")
}

func (f *fakeMentorRepo) CreateMentor(_ context.Context, m *models.Mentor) error {
	if err := f.fail("create_mentor"); err != nil {
		return err
	}
	m.ID = f.nextMentorID
	f.nextMentorID++
	f.mentors[m.ID] = m
	f.journal = append(f.journal, "create_mentor")
	return nil
}

func (f *fakeMentorRepo) SaveMentor(_ context.Context, m *models.Mentor) error {
	if err := f.fail("save_mentor"); err != nil {
		return err
	}
	f.mentors[m.ID] = m
	f.journal = append(f.journal, "save_mentor")
	return nil
}

func (f *fakeMentorRepo) SearchMentors(_ context.Context, _, _ string, _, _ int) ([]models.Mentor, error) {
	return nil, nil
}

func (f *fakeMentorRepo) ListMentors(_ context.Context) ([]models.Mentor, error) {
	var out []models.Mentor
	for _, m := range f.mentors {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMentorRepo) PromoteUser(_ context.Context, userID uint, role string) error {
	if err := f.fail("promote_user"); err != nil {
		return err
	}
	f.roles[userID] = role
	f.journal = append(f.journal, "promote_user")
	return nil
}

func (f *fakeMentorRepo) GetFieldByID(_ context.Context, id uint) (*models.Field, error) {
	fl, ok := f.fields[id]
	if !ok {
		return nil, httperr.ErrNotFound("field_not_found")
	}
	return fl, nil
}

func (f *fakeMentorRepo) GetScheduleByMentor(_ context.Context, mentorID uint) (*models.Schedule, error) {
	s, ok := f.schedules[mentorID]
	if !ok {
		return nil, httperr.ErrNotFound("schedule_not_found")
	}
	return s, nil
}

func (f *fakeMentorRepo) CreateSchedule(_ context.Context, s *models.Schedule) error {
	if err := f.fail("create_schedule"); err != nil {
		return err
	}
	s.ID = uint(len(f.schedules) + 1)
	f.schedules[s.MentorID] = s
	f.journal = append(f.journal, "create_schedule")
	return nil
}

func (f *fakeMentorRepo) SaveSchedule(_ context.Context, s *models.Schedule) error {
	if err := f.fail("save_schedule"); err != nil {
		return err
	}
	f.schedules[s.MentorID] = s
	f.journal = append(f.journal, "save_schedule")
	return nil
}

var _ domain.Repository = (*fakeMentorRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

func seedPendingRequest(repo *fakeMentorRepo) *models.MentorRequest {
	req := &models.MentorRequest{
		ID:     1,
		UserID: 7,
		User: models.User{
			ID:        7,
			FirstName: "Minh",
			LastName:  "Tran",
		},
		FieldID:     2,
		StartTime:   "09:00",
		EndTime:     "17:00",
		DaysOfWeek:  "MONDAY,WEDNESDAY",
		Fee:         250000,
		Description: "Backend mentoring",
		ImageURL:    "https://img.example.com/minh.webp",
		Status:      "PENDING",
	}
	repo.requests[req.ID] = req
	repo.roles[7] = models.RoleUser
	return req
}

// ======================================================
// TESTS
// ======================================================

func TestDecideRequest_InvalidStatusToken(t *testing.T) {
	repo := newFakeMentorRepo()
	seedPendingRequest(repo)
	uc := ucMentor.NewDecideRequest(repo, zap.NewNop())

	_, err := uc.Execute(context.Background(), 1, "MAYBE")
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindInvalid))
}

func TestDecideRequest_UnknownRequest(t *testing.T) {
	repo := newFakeMentorRepo()
	uc := ucMentor.NewDecideRequest(repo, zap.NewNop())

	_, err := uc.Execute(context.Background(), 99, "APPROVED")
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestDecideRequest_PendingIsInformationalNoOp(t *testing.T) {
	repo := newFakeMentorRepo()
	seedPendingRequest(repo)
	uc := ucMentor.NewDecideRequest(repo, zap.NewNop())

	msg, err := uc.Execute(context.Background(), 1, "PENDING")
	require.NoError(t, err)
	require.Equal(t, "Mentor request is still pending", msg)
	require.Equal(t, "PENDING", repo.requests[1].Status)
	require.Empty(t, repo.journal)
}

func TestDecideRequest_ApproveWritesAllFour(t *testing.T) {
	repo := newFakeMentorRepo()
	req := seedPendingRequest(repo)
	uc := ucMentor.NewDecideRequest(repo, zap.NewNop())

	msg, err := uc.Execute(context.Background(), 1, "APPROVED")
	require.NoError(t, err)
	require.Equal(t, "Mentor request approved successfully", msg)

	require.Equal(t, []string{"create_mentor", "promote_user", "create_schedule", "save_request"}, repo.journal)
	require.Equal(t, "APPROVED", repo.requests[1].Status)
	require.Equal(t, models.RoleMentor, repo.roles[7])

	mentor, err := repo.GetMentorByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Minh Tran", mentor.FullName)
	require.Equal(t, req.Fee, mentor.Fee)
	require.Equal(t, req.ImageURL, mentor.ImageURL)

	sched := repo.schedules[mentor.ID]
	require.NotNil(t, sched)
	require.Equal(t, "09:00", sched.StartTime)
	require.Equal(t, "17:00", sched.EndTime)
	require.Equal(t, "MONDAY,WEDNESDAY", sched.DaysOfWeek)
}

func TestDecideRequest_ApproveRollsBackOnFailure(t *testing.T) {
	repo := newFakeMentorRepo()
	seedPendingRequest(repo)
	repo.failOn = "create_schedule"
	uc := ucMentor.NewDecideRequest(repo, zap.NewNop())

	_, err := uc.Execute(context.Background(), 1, "APPROVED")
	require.Error(t, err)

	// Nothing survives the failed transaction.
	require.Empty(t, repo.mentors)
	require.Empty(t, repo.schedules)
	require.Equal(t, models.RoleUser, repo.roles[7])
	require.Equal(t, "PENDING", repo.requests[1].Status)
}

func TestDecideRequest_AlreadyMentorWritesNothing(t *testing.T) {
	repo := newFakeMentorRepo()
	seedPendingRequest(repo)
	repo.mentors[5] = &models.Mentor{ID: 5, UserID: 7, FullName: "Minh Tran"}
	uc := ucMentor.NewDecideRequest(repo, zap.NewNop())

	_, err := uc.Execute(context.Background(), 1, "APPROVED")
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindConflict))

	require.Equal(t, "PENDING", repo.requests[1].Status)
	require.Empty(t, repo.journal)
}

func TestDecideRequest_RejectTouchesOnlyRequest(t *testing.T) {
	repo := newFakeMentorRepo()
	seedPendingRequest(repo)
	uc := ucMentor.NewDecideRequest(repo, zap.NewNop())

	msg, err := uc.Execute(context.Background(), 1, "REJECTED")
	require.NoError(t, err)
	require.Equal(t, "Mentor request rejected.", msg)

	require.Equal(t, "REJECTED", repo.requests[1].Status)
	require.Equal(t, []string{"save_request"}, repo.journal)
	require.Empty(t, repo.mentors)
	require.Equal(t, models.RoleUser, repo.roles[7])
}

func TestDecideRequest_TerminalIsImmutable(t *testing.T) {
	for _, terminal := range []string{"APPROVED", "REJECTED"} {
		repo := newFakeMentorRepo()
		req := seedPendingRequest(repo)
		req.Status = terminal
		uc := ucMentor.NewDecideRequest(repo, zap.NewNop())

		for _, target := range []string{"APPROVED", "REJECTED", "PENDING"} {
			_, err := uc.Execute(context.Background(), 1, target)
			require.Error(t, err)
			require.True(t, httperr.IsKind(err, httperr.KindConflict))
		}
		require.Equal(t, terminal, repo.requests[1].Status)
	}
}
