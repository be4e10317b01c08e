package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/Tai-brother/UthMentor/internal/domain/appointment"
	"github.com/Tai-brother/UthMentor/internal/dto"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
	"github.com/Tai-brother/UthMentor/internal/notify"
	"github.com/Tai-brother/UthMentor/internal/payment"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	MentorID uint

	Date string
	Time string

	Note   string
	Reason string

	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo     domain.Repository
	gateway  payment.VNPay
	notifier *notify.Dispatcher
	logger   *zap.Logger
}

func NewBook(
	repo domain.Repository,
	gateway payment.VNPay,
	notifier *notify.Dispatcher,
	logger *zap.Logger,
) *Book {
	return &Book{
		repo:     repo,
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	user *models.User,
	in BookInput,
) (*dto.BookingResult, error) {

	// 1. Admins and mentors do not book sessions.
	if user.Role == models.RoleAdmin || user.Role == models.RoleMentor {
		return nil, httperr.ErrPermission("access_denied")
	}

	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrInvalid("invalid_date")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrInvalid("invalid_time")
	}

	// 2. Ensure membership: first booking creates the member profile
	// from the user's attributes and promotes the role.
	member, err := uc.repo.GetMemberByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		member = memberFromUser(user)
		if err := uc.repo.CreateMemberPromoting(ctx, member); err != nil {
			return nil, err
		}
		user.Role = models.RoleMember
	}

	// 3. Mentor must exist.
	mentor, err := uc.repo.GetMentorByID(ctx, in.MentorID)
	if err != nil {
		return nil, err
	}

	// 4. Optimistic slot check; the unique index closes the race on
	// insert below.
	taken, err := uc.repo.SlotTaken(ctx, mentor.ID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("slot_already_booked")
	}

	// 5. Payment method.
	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		MentorID:      mentor.ID,
		MemberID:      member.ID,
		Date:          in.Date,
		Time:          in.Time,
		Note:          in.Note,
		Reason:        in.Reason,
		Status:        string(domain.InitialStatus()),
		PaymentMethod: string(method),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	var paymentURL string
	if method == domain.PaymentOnline {
		paymentURL = uc.gateway.PaymentURL(ap.ID, mentor.Fee)
	}

	uc.notifier.Dispatch(notify.Event{
		To:         member.Email,
		MentorName: mentor.FullName,
		Date:       ap.Date,
		Time:       ap.Time,
		PaymentURL: paymentURL,
	})

	uc.logger.Info("appointment booked",
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("mentor_id", mentor.ID),
		zap.Uint("member_id", member.ID),
		zap.String("date", ap.Date),
		zap.String("time", ap.Time),
	)

	ap.Member = *member
	ap.Mentor = *mentor

	result, err := uc.toDto(ctx, *ap)
	if err != nil {
		return nil, err
	}

	return &dto.BookingResult{
		Appointment: result,
		PaymentURL:  paymentURL,
	}, nil
}

// ======================================================
// MAPPING
// ======================================================

func memberFromUser(user *models.User) *models.Member {
	return &models.Member{
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Username:    user.Username,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Dob:         user.Dob,
	}
}

func (uc *Book) toDto(ctx context.Context, ap models.Appointment) (dto.AppointmentDto, error) {
	return appointmentToDto(ctx, uc.repo, ap)
}

// appointmentToDto assembles the enriched booking view shared by the
// booking result and every listing.
func appointmentToDto(
	ctx context.Context,
	repo domain.Repository,
	ap models.Appointment,
) (dto.AppointmentDto, error) {

	hasReview, err := repo.HasReview(ctx, ap.MemberID, ap.MentorID)
	if err != nil {
		return dto.AppointmentDto{}, err
	}

	mentorName := ap.Mentor.FullName
	if ap.Mentor.User.ID != 0 {
		mentorName = ap.Mentor.User.FirstName + " " + ap.Mentor.User.LastName
	}

	return dto.AppointmentDto{
		ID:            ap.ID,
		MentorID:      ap.MentorID,
		MemberID:      ap.MemberID,
		Date:          ap.Date,
		Time:          ap.Time,
		Note:          ap.Note,
		Reason:        ap.Reason,
		Status:        ap.Status,
		PaymentMethod: ap.PaymentMethod,
		MemberName:    ap.Member.FirstName + " " + ap.Member.LastName,
		MemberPhone:   ap.Member.PhoneNumber,
		MemberEmail:   ap.Member.Email,
		MemberAge:     ageOf(ap.Member.Dob, time.Now()),
		MentorName:    mentorName,
		FieldName:     ap.Mentor.Field.Name,
		HasReview:     hasReview,
	}, nil
}

func ageOf(dob *time.Time, now time.Time) int {
	if dob == nil {
		return 0
	}

	years := now.Year() - dob.Year()
	anniversary := time.Date(now.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
