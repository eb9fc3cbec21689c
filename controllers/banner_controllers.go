package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/services"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BannerController struct {
	DB *gorm.DB
}

func NewBannerController(db *gorm.DB) *BannerController {
	return &BannerController{DB: db}
}

type bannerView struct {
	models.Banner
	TimeLeft string `json:"time_left,omitempty"`
}

// GetActiveBanners returns the carousel slides with the countdown rendered
// server-side. With no active banners the hardcoded placeholder is the
// single slide.
func (bc *BannerController) GetActiveBanners(c *gin.Context) {
	var banners []models.Banner
	if err := bc.DB.Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&banners).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if len(banners) == 0 {
		banners = []models.Banner{services.PlaceholderBanner()}
	}

	now := time.Now()
	views := make([]bannerView, 0, len(banners))
	for _, banner := range banners {
		view := bannerView{Banner: banner}
		if banner.EndTime != nil {
			view.TimeLeft = services.TimeLeft(*banner.EndTime, now)
		}
		views = append(views, view)
	}

	utils.RespondJSON(c, http.StatusOK, "Active banners", views)
}

// GetAllBanners is the admin list.
func (bc *BannerController) GetAllBanners(c *gin.Context) {
	var banners []models.Banner
	if err := bc.DB.Order("display_order ASC").Find(&banners).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All banners", banners)
}

func (bc *BannerController) CreateBanner(c *gin.Context) {
	var body struct {
		Title        string     `json:"title" binding:"required"`
		ImageUrl     string     `json:"image_url" binding:"required"`
		LinkUrl      *string    `json:"link_url"`
		StartTime    *time.Time `json:"start_time"`
		EndTime      *time.Time `json:"end_time"`
		DisplayOrder int        `json:"display_order"`
		IsActive     *bool      `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	banner := models.Banner{
		Title:        body.Title,
		ImageUrl:     body.ImageUrl,
		LinkUrl:      body.LinkUrl,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		DisplayOrder: body.DisplayOrder,
		IsActive:     true,
	}
	if body.IsActive != nil {
		banner.IsActive = *body.IsActive
	}

	if err := bc.DB.Create(&banner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Banner created", banner)
}

func (bc *BannerController) UpdateBanner(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("banner_id"))

	var banner models.Banner
	if err := bc.DB.First(&banner, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		Title        *string    `json:"title"`
		ImageUrl     *string    `json:"image_url"`
		LinkUrl      *string    `json:"link_url"`
		StartTime    *time.Time `json:"start_time"`
		EndTime      *time.Time `json:"end_time"`
		DisplayOrder *int       `json:"display_order"`
		IsActive     *bool      `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Title != nil {
		banner.Title = *body.Title
	}
	if body.ImageUrl != nil {
		banner.ImageUrl = *body.ImageUrl
	}
	if body.LinkUrl != nil {
		banner.LinkUrl = body.LinkUrl
	}
	if body.StartTime != nil {
		banner.StartTime = body.StartTime
	}
	if body.EndTime != nil {
		banner.EndTime = body.EndTime
	}
	if body.DisplayOrder != nil {
		banner.DisplayOrder = *body.DisplayOrder
	}
	if body.IsActive != nil {
		banner.IsActive = *body.IsActive
	}

	if err := bc.DB.Save(&banner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Banner updated", banner)
}

func (bc *BannerController) DeleteBanner(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("banner_id"))

	if err := bc.DB.Delete(&models.Banner{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Banner deleted", gin.H{"banner_id": id})
}
