package controllers

import (
	"net/http"

	"github.com/foodzy/foodzy-app/services"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

// Chat handles one conversation turn. The full visible history rides in the
// request; nothing is retained server-side between turns.
func (cc *ChatController) Chat(c *gin.Context) {
	var body struct {
		Message string                 `json:"message" binding:"required"`
		History []services.ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reply := cc.Svc.Respond(c.Request.Context(), currentUserID(c), body.Message, body.History)
	utils.RespondJSON(c, http.StatusOK, "Assistant reply", gin.H{
		"reply": reply,
	})
}
