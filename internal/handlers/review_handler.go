package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/httpresp"
	ucReview "github.com/Tai-brother/UthMentor/internal/usecase/review"
)

type ReviewHandler struct {
	db *gorm.DB

	submitUC *ucReview.Submit
	listUC   *ucReview.List
}

func NewReviewHandler(db *gorm.DB, submitUC *ucReview.Submit, listUC *ucReview.List) *ReviewHandler {
	return &ReviewHandler{db: db, submitUC: submitUC, listUC: listUC}
}

type SubmitReviewRequest struct {
	MentorID uint   `json:"mentor_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	user, ok := loadActor(c, h.db)
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review payload.")
		return
	}

	msg, err := h.submitUC.Execute(c.Request.Context(), user, ucReview.SubmitInput{
		MentorID: req.MentorID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": msg})
}

func (h *ReviewHandler) ListForMentor(c *gin.Context) {
	mentorID, err := strconv.ParseUint(c.Param("mentorId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_mentor_id", "Invalid mentor id.")
		return
	}

	reviews, err := h.listUC.Execute(c.Request.Context(), uint(mentorID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, reviews)
}
