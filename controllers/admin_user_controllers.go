package controllers

import (
	"net/http"
	"time"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

type directoryEntry struct {
	ID           uint       `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Phone        string     `json:"phone"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at"`
}

// ListUsers returns the full user directory from the auth identities, not a
// profile table. Sits behind the admin gate.
func (ac *AdminUserController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := ac.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	entries := make([]directoryEntry, 0, len(users))
	for _, user := range users {
		entry := directoryEntry{
			ID:           user.ID,
			Email:        user.Email,
			FullName:     user.FullName,
			Phone:        user.Phone,
			CreatedAt:    user.CreatedAt,
			LastSignInAt: user.LastSignInAt,
		}
		if entry.FullName == "" {
			entry.FullName = "N/A"
		}
		if entry.Phone == "" {
			entry.Phone = "N/A"
		}
		entries = append(entries, entry)
	}

	utils.RespondJSON(c, http.StatusOK, "All users", entries)
}
