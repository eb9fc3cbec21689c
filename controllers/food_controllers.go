package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FoodController struct {
	DB *gorm.DB
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{DB: db}
}

// GetAvailableFood is the customer-facing menu: available items, optionally
// narrowed by category or a name/description substring.
func (fc *FoodController) GetAvailableFood(c *gin.Context) {
	query := fc.DB.Preload("Category").Where("is_available = ?", true)
	fc.respondList(c, query, "Available food items")
}

// GetAllFood is the admin list over every row.
func (fc *FoodController) GetAllFood(c *gin.Context) {
	fc.respondList(c, fc.DB.Preload("Category"), "All food items")
}

func (fc *FoodController) respondList(c *gin.Context, query *gorm.DB, message string) {
	if catID := c.Query("category_id"); catID != "" {
		query = query.Where("category_id = ?", catID)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var items []models.FoodItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, message, items)
}

func (fc *FoodController) GetFoodByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("food_id"))

	var item models.FoodItem
	if err := fc.DB.Preload("Category").First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food item detail", item)
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	var body struct {
		CategoryID      uint    `json:"category_id" binding:"required"`
		Name            string  `json:"name" binding:"required"`
		Description     string  `json:"description"`
		BasePrice       float64 `json:"base_price" binding:"required"`
		CurrentPrice    float64 `json:"current_price"`
		IsAvailable     *bool   `json:"is_available"`
		IsVegetarian    bool    `json:"is_vegetarian"`
		IsVegan         bool    `json:"is_vegan"`
		PrepTimeMinutes int     `json:"prep_time_minutes"`
		Calories        int     `json:"calories"`
		ImageUrl        string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.CurrentPrice == 0 {
		body.CurrentPrice = body.BasePrice
	}

	item := models.FoodItem{
		CategoryID:      body.CategoryID,
		Name:            body.Name,
		Description:     body.Description,
		BasePrice:       body.BasePrice,
		CurrentPrice:    body.CurrentPrice,
		IsAvailable:     true,
		IsVegetarian:    body.IsVegetarian,
		IsVegan:         body.IsVegan,
		PrepTimeMinutes: body.PrepTimeMinutes,
		Calories:        body.Calories,
		ImageUrl:        body.ImageUrl,
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}

	if err := fc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Food item created", item)
}

func (fc *FoodController) UpdateFood(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("food_id"))

	var item models.FoodItem
	if err := fc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var body struct {
		CategoryID      *uint    `json:"category_id"`
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		BasePrice       *float64 `json:"base_price"`
		CurrentPrice    *float64 `json:"current_price"`
		IsAvailable     *bool    `json:"is_available"`
		IsVegetarian    *bool    `json:"is_vegetarian"`
		IsVegan         *bool    `json:"is_vegan"`
		PrepTimeMinutes *int     `json:"prep_time_minutes"`
		Calories        *int     `json:"calories"`
		ImageUrl        *string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.CategoryID != nil {
		item.CategoryID = *body.CategoryID
	}
	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.BasePrice != nil {
		item.BasePrice = *body.BasePrice
	}
	if body.CurrentPrice != nil {
		item.CurrentPrice = *body.CurrentPrice
	}
	if body.IsAvailable != nil {
		item.IsAvailable = *body.IsAvailable
	}
	if body.IsVegetarian != nil {
		item.IsVegetarian = *body.IsVegetarian
	}
	if body.IsVegan != nil {
		item.IsVegan = *body.IsVegan
	}
	if body.PrepTimeMinutes != nil {
		item.PrepTimeMinutes = *body.PrepTimeMinutes
	}
	if body.Calories != nil {
		item.Calories = *body.Calories
	}
	if body.ImageUrl != nil {
		item.ImageUrl = *body.ImageUrl
	}

	if err := fc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food item updated", item)
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("food_id"))

	if err := fc.DB.Delete(&models.FoodItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food item deleted", gin.H{"food_id": id})
}
