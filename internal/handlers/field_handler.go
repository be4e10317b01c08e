package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/httpresp"
	"github.com/Tai-brother/UthMentor/internal/models"
)

type FieldHandler struct {
	db *gorm.DB
}

func NewFieldHandler(db *gorm.DB) *FieldHandler {
	return &FieldHandler{db: db}
}

type CreateFieldRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *FieldHandler) Create(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid field payload.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Field{}).
		Where("name = ? AND description = ?", req.Name, req.Description).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to check field.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "field_already_exists", "Field with this information already exists.")
		return
	}

	field := models.Field{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.db.Create(&field).Error; err != nil {
		httperr.Internal(c, "failed_to_create_field", "Failed to create field.")
		return
	}

	c.JSON(201, field)
}

func (h *FieldHandler) List(c *gin.Context) {
	var fields []models.Field
	if err := h.db.Order("name ASC").Find(&fields).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to list fields.")
		return
	}
	httpresp.List(c, fields)
}
