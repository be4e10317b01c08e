package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/httpresp"
	ucMentor "github.com/Tai-brother/UthMentor/internal/usecase/mentor"
)

// ======================================================
// HANDLER
// ======================================================

type MentorHandler struct {
	db *gorm.DB

	createRequestUC *ucMentor.CreateRequest
	listRequestsUC  *ucMentor.ListRequests
	decideRequestUC *ucMentor.DecideRequest
	updateMentorUC  *ucMentor.UpdateMentor
	searchUC        *ucMentor.Search
	getMentorUC     *ucMentor.GetMentor
}

func NewMentorHandler(
	db *gorm.DB,
	createRequestUC *ucMentor.CreateRequest,
	listRequestsUC *ucMentor.ListRequests,
	decideRequestUC *ucMentor.DecideRequest,
	updateMentorUC *ucMentor.UpdateMentor,
	searchUC *ucMentor.Search,
	getMentorUC *ucMentor.GetMentor,
) *MentorHandler {
	return &MentorHandler{
		db:              db,
		createRequestUC: createRequestUC,
		listRequestsUC:  listRequestsUC,
		decideRequestUC: decideRequestUC,
		updateMentorUC:  updateMentorUC,
		searchUC:        searchUC,
		getMentorUC:     getMentorUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DecideRequestBody struct {
	MentorRequestID uint   `json:"mentor_request_id" binding:"required"`
	Status          string `json:"status" binding:"required"`
}

type UpdateMentorBody struct {
	DaysOfWeek []string `json:"days_of_week"`
	FieldID    *uint    `json:"field_id"`
	StartTime  *string  `json:"start_time"`
	EndTime    *string  `json:"end_time"`
}

// ======================================================
// MENTOR REQUEST (multipart: fields + profile image)
// ======================================================

func (h *MentorHandler) CreateRequest(c *gin.Context) {
	user, ok := loadActor(c, h.db)
	if !ok {
		return
	}

	fieldID, err := strconv.ParseUint(c.PostForm("field_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_field_id", "Invalid field id.")
		return
	}

	fee, err := strconv.ParseFloat(c.PostForm("fee"), 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_fee", "Invalid fee.")
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Profile image is required.")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read image.")
		return
	}

	result, err := h.createRequestUC.Execute(c.Request.Context(), user, ucMentor.CreateRequestInput{
		DaysOfWeek:  c.PostFormArray("days_of_week"),
		FieldID:     uint(fieldID),
		StartTime:   c.PostForm("start_time"),
		EndTime:     c.PostForm("end_time"),
		Fee:         fee,
		Description: c.PostForm("description"),
		Image:       image,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(201, result)
}

func (h *MentorHandler) ListRequests(c *gin.Context) {
	reqs, err := h.listRequestsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, reqs)
}

// ======================================================
// DECIDE / UPDATE
// ======================================================

func (h *MentorHandler) DecideRequest(c *gin.Context) {
	var body DecideRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid decision payload.")
		return
	}

	msg, err := h.decideRequestUC.Execute(c.Request.Context(), body.MentorRequestID, body.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": msg})
}

func (h *MentorHandler) UpdateMentor(c *gin.Context) {
	mentorID, err := strconv.ParseUint(c.Param("mentorId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_mentor_id", "Invalid mentor id.")
		return
	}

	var body UpdateMentorBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update payload.")
		return
	}

	msg, err := h.updateMentorUC.Execute(c.Request.Context(), uint(mentorID), ucMentor.UpdateMentorInput{
		DaysOfWeek: body.DaysOfWeek,
		FieldID:    body.FieldID,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": msg})
}

// ======================================================
// QUERIES
// ======================================================

func (h *MentorHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	mentors, err := h.searchUC.Execute(
		c.Request.Context(),
		c.Query("name"),
		c.Query("field"),
		page,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, mentors)
}

func (h *MentorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_mentor_id", "Invalid mentor id.")
		return
	}

	mentor, err := h.getMentorUC.ByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, mentor)
}

func (h *MentorHandler) Me(c *gin.Context) {
	user, ok := loadActor(c, h.db)
	if !ok {
		return
	}

	mentor, err := h.getMentorUC.ProfileFor(c.Request.Context(), user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, mentor)
}

func (h *MentorHandler) ListAll(c *gin.Context) {
	mentors, err := h.getMentorUC.All(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, mentors)
}
