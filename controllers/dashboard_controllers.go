package controllers

import (
	"net/http"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats returns the admin dashboard aggregates. Revenue only counts
// delivered orders.
func (dc *DashboardController) GetStats(c *gin.Context) {
	var stats struct {
		TotalOrders  int64   `json:"total_orders"`
		TotalUsers   int64   `json:"total_users"`
		TotalItems   int64   `json:"total_items"`
		TotalRevenue float64 `json:"total_revenue"`
	}

	if err := dc.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.FoodItem{}).Count(&stats.TotalItems).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
