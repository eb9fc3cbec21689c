package middlewares

import (
	"errors"
	"net/http"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminMiddleware gates admin routes: the caller must hold a valid session
// (AuthMiddleware runs first) and have a row in admin_users. The row lookup
// runs on every request, not once per session, so revoking the row takes
// effect immediately.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		userID, ok := userIDVal.(uint)
		if !ok || userID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		var admin models.AdminUser
		if err := db.First(&admin, userID).Error; err != nil {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}

		c.Set("admin_role", admin.Role)
		c.Next()
	}
}
