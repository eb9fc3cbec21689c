package controllers

import (
	"errors"
	"net/http"

	"github.com/foodzy/foodzy-app/services"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Uploader *services.Uploader
}

func NewUploadController(uploader *services.Uploader) *UploadController {
	return &UploadController{Uploader: uploader}
}

// CreateUpload stores a base64 data-URL image and returns its public URL.
func (uc *UploadController) CreateUpload(c *gin.Context) {
	if uc.Uploader == nil {
		utils.RespondError(c, http.StatusServiceUnavailable,
			errors.New("upload service is not configured"))
		return
	}

	var body struct {
		Image  string `json:"image" binding:"required"`
		Prefix string `json:"prefix"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	url, err := uc.Uploader.UploadDataURL(body.Image, body.Prefix)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Image uploaded", gin.H{"url": url})
}
