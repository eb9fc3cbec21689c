package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/services"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MarketingController struct {
	DB     *gorm.DB
	Sender services.EmailSender
}

func NewMarketingController(db *gorm.DB, sender services.EmailSender) *MarketingController {
	return &MarketingController{DB: db, Sender: sender}
}

// SendBulkEmail sends one individual email per recipient and reports an
// aggregate summary. Partial failures are reported, never retried.
func (mc *MarketingController) SendBulkEmail(c *gin.Context) {
	if mc.Sender == nil {
		utils.RespondError(c, http.StatusServiceUnavailable,
			errors.New("email service is not configured"))
		return
	}

	var body struct {
		Subject        string `json:"subject" binding:"required"`
		Message        string `json:"message" binding:"required"`
		TargetAudience string `json:"target_audience" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.TargetAudience != "all" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid target audience"))
		return
	}

	// Recipients come from the auth user directory, not a profile table.
	var users []models.User
	if err := mc.DB.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var recipients []string
	for _, user := range users {
		if user.Email != "" && strings.Contains(user.Email, "@") {
			recipients = append(recipients, user.Email)
		}
	}

	if len(recipients) == 0 {
		utils.RespondJSON(c, http.StatusOK, "No valid recipients found", nil)
		return
	}

	htmlBody := fmt.Sprintf("<p>%s</p>", strings.ReplaceAll(body.Message, "\n", "<br>"))

	sent := 0
	failed := 0
	var sendErrors []string
	for _, email := range recipients {
		if err := mc.Sender.Send(email, body.Subject, htmlBody); err != nil {
			failed++
			sendErrors = append(sendErrors, err.Error())
			utils.ErrorLogger.Printf("Bulk email to %s failed: %v", email, err)
			continue
		}
		sent++
	}

	if len(sendErrors) > 3 {
		sendErrors = sendErrors[:3]
	}

	message := fmt.Sprintf("Successfully sent %d emails", sent)
	if failed > 0 {
		message = fmt.Sprintf("Sent %d emails successfully, %d failed", sent, failed)
	}

	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"sent":   sent,
		"failed": failed,
		"errors": sendErrors,
	})
}
