package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Tai-brother/UthMentor/internal/domain/appointment"
	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/httpresp"
	ucAppointment "github.com/Tai-brother/UthMentor/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	availableSlotsUC *ucAppointment.GetAvailableSlots
	bookUC           *ucAppointment.Book
	listForMentorUC  *ucAppointment.ListForMentor
	listMineUC       *ucAppointment.ListMine
	listAllUC        *ucAppointment.ListAll
}

func NewAppointmentHandler(
	db *gorm.DB,
	availableSlotsUC *ucAppointment.GetAvailableSlots,
	bookUC *ucAppointment.Book,
	listForMentorUC *ucAppointment.ListForMentor,
	listMineUC *ucAppointment.ListMine,
	listAllUC *ucAppointment.ListAll,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:               db,
		availableSlotsUC: availableSlotsUC,
		bookUC:           bookUC,
		listForMentorUC:  listForMentorUC,
		listMineUC:       listMineUC,
		listAllUC:        listAllUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	MentorID      uint   `json:"mentor_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Note          string `json:"note"`
	Reason        string `json:"reason"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	mentorID, err := strconv.ParseUint(c.Query("mentorId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_mentor_id", "Invalid mentor id.")
		return
	}

	date, err := time.Parse(domain.DateLayout, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.availableSlotsUC.Execute(c.Request.Context(), uint(mentorID), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	user, ok := loadActor(c, h.db)
	if !ok {
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	result, err := h.bookUC.Execute(c.Request.Context(), user, ucAppointment.BookInput{
		MentorID:      req.MentorID,
		Date:          req.Date,
		Time:          req.Time,
		Note:          req.Note,
		Reason:        req.Reason,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(201, result)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListForMentor(c *gin.Context) {
	user, ok := loadActor(c, h.db)
	if !ok {
		return
	}

	aps, err := h.listForMentorUC.Execute(c.Request.Context(), user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	user, ok := loadActor(c, h.db)
	if !ok {
		return
	}

	aps, err := h.listMineUC.Execute(c.Request.Context(), user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	user, ok := loadActor(c, h.db)
	if !ok {
		return
	}

	aps, err := h.listAllUC.Execute(c.Request.Context(), user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, aps)
}
