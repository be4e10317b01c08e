package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/httpresp"
	"github.com/Tai-brother/UthMentor/internal/models"
)

type MemberHandler struct {
	db *gorm.DB
}

func NewMemberHandler(db *gorm.DB) *MemberHandler {
	return &MemberHandler{db: db}
}

func (h *MemberHandler) List(c *gin.Context) {
	var members []models.Member
	if err := h.db.Order("last_name ASC, first_name ASC").Find(&members).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to list members.")
		return
	}
	httpresp.List(c, members)
}

func (h *MemberHandler) Me(c *gin.Context) {
	user, ok := loadActor(c, h.db)
	if !ok {
		return
	}

	var member models.Member
	if err := h.db.Where("user_id = ?", user.ID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "member_not_found", "No member profile yet.")
			return
		}
		httperr.Internal(c, "internal_error", "Failed to load member.")
		return
	}
	httpresp.OK(c, member)
}
