package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/Tai-brother/UthMentor/internal/httperr"
	infraRepo "github.com/Tai-brother/UthMentor/internal/infra/repository"
	"github.com/Tai-brother/UthMentor/internal/models"
)

func bookedSlot() *models.Appointment {
	return &models.Appointment{
		MentorID:      1,
		MemberID:      3,
		Date:          "2026-09-07",
		Time:          "09:30",
		Status:        "PENDING",
		PaymentMethod: "CASH",
	}
}

// Two racing inserts both pass the availability pre-check; the loser
// hits the (mentor_id, date, time) unique index and must come back as
// a Conflict, not a raw driver error.
func TestAppointmentRepository_CreateAppointment_UniqueViolationIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	r := infraRepo.NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_mentor_slot",
		})
	mock.ExpectRollback()

	err := r.CreateAppointment(context.Background(), bookedSlot())
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindConflict))
	require.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_CreateAppointment_OtherErrorsPassThrough(t *testing.T) {
	db, mock := newMockDB(t)
	r := infraRepo.NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnError(&pgconn.PgError{Code: "40001"})
	mock.ExpectRollback()

	err := r.CreateAppointment(context.Background(), bookedSlot())
	require.Error(t, err)
	require.False(t, httperr.IsKind(err, httperr.KindConflict))

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_CreateAppointment_Succeeds(t *testing.T) {
	db, mock := newMockDB(t)
	r := infraRepo.NewAppointmentGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectCommit()

	ap := bookedSlot()
	require.NoError(t, r.CreateAppointment(context.Background(), ap))
	require.Equal(t, uint(12), ap.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_SlotTaken(t *testing.T) {
	db, mock := newMockDB(t)
	r := infraRepo.NewAppointmentGormRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE mentor_id = \$1 AND date = \$2 AND time = \$3`).
		WithArgs(uint(1), "2026-09-07", "09:30").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := r.SlotTaken(context.Background(), 1, "2026-09-07", "09:30")
	require.NoError(t, err)
	require.True(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}
