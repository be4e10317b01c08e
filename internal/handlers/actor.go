package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tai-brother/UthMentor/internal/httperr"
	"github.com/Tai-brother/UthMentor/internal/middleware"
	"github.com/Tai-brother/UthMentor/internal/models"
)

// loadActor resolves the authenticated user behind the JWT claims. The
// role comes from the row, not the token, so a promotion takes effect
// without re-login.
func loadActor(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "Unknown user.")
		return nil, false
	}
	return &user, true
}
