package mentor

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/Tai-brother/UthMentor/internal/domain/mentor"
	schedule "github.com/Tai-brother/UthMentor/internal/domain/schedule"
	"github.com/Tai-brother/UthMentor/internal/dto"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/models"
)

// ======================================================
// CREATE REQUEST
// ======================================================

type CreateRequestInput struct {
	DaysOfWeek  []string
	FieldID     uint
	StartTime   string
	EndTime     string
	Fee         float64
	Description string
	Image       []byte
}

type CreateRequest struct {
	repo   domain.Repository
	images domain.ImageStore
	logger *zap.Logger
}

func NewCreateRequest(
	repo domain.Repository,
	images domain.ImageStore,
	logger *zap.Logger,
) *CreateRequest {
	return &CreateRequest{repo: repo, images: images, logger: logger}
}

func (uc *CreateRequest) Execute(
	ctx context.Context,
	user *models.User,
	in CreateRequestInput,
) (*dto.MentorRequestDto, error) {

	days, err := schedule.JoinDays(in.DaysOfWeek)
	if err != nil {
		return nil, err
	}
	if days == "" {
		return nil, httperr.ErrInvalid("invalid_day_of_week")
	}

	if in.StartTime == "" || in.EndTime == "" {
		return nil, httperr.ErrInvalid("missing_time_window")
	}
	if err := schedule.ValidWindow(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	if in.Fee <= domain.MinFee {
		return nil, httperr.ErrInvalid("invalid_fee")
	}

	field, err := uc.repo.GetFieldByID(ctx, in.FieldID)
	if err != nil {
		return nil, err
	}

	if len(in.Image) == 0 {
		return nil, httperr.ErrInvalid("missing_image")
	}
	imageURL, err := uc.images.UploadImage(ctx, in.Image)
	if err != nil {
		return nil, err
	}

	req := &models.MentorRequest{
		UserID:      user.ID,
		FieldID:     field.ID,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		DaysOfWeek:  days,
		Fee:         in.Fee,
		Description: in.Description,
		ImageURL:    imageURL,
		Status:      string(domain.StatusPending),
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	uc.logger.Info("mentor request created",
		zap.Uint("request_id", req.ID),
		zap.Uint("user_id", user.ID),
	)

	req.User = *user
	req.Field = *field
	d := requestToDto(*req)
	return &d, nil
}

func requestToDto(req models.MentorRequest) dto.MentorRequestDto {
	return dto.MentorRequestDto{
		ID:     req.ID,
		Status: req.Status,
		User: dto.UserInfoDto{
			ID:        req.User.ID,
			FirstName: req.User.FirstName,
			LastName:  req.User.LastName,
			Email:     req.User.Email,
		},
		Field: dto.FieldInfoDto{
			ID:          req.Field.ID,
			Name:        req.Field.Name,
			Description: req.Field.Description,
		},
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		DaysOfWeek:  schedule.SplitDays(req.DaysOfWeek),
		Fee:         req.Fee,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   req.CreatedAt,
	}
}
