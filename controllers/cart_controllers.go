package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	DB *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db}
}

// GetCart returns the caller's cart with item_count and total recomputed
// from the rows on every request.
func (cc *CartController) GetCart(c *gin.Context) {
	userID := currentUserID(c)

	items, err := cc.loadCart(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	itemCount, total := cartTotals(items)
	utils.RespondJSON(c, http.StatusOK, "Cart contents", gin.H{
		"items":      items,
		"item_count": itemCount,
		"total":      total,
	})
}

// AddItem merges quantity into an existing (user, food item) row, or inserts
// a new row with the price locked at add time. The unit price is taken from
// the request as-is and never validated against the item's live price.
func (cc *CartController) AddItem(c *gin.Context) {
	userID := currentUserID(c)

	var body struct {
		FoodItemID uint    `json:"food_item_id" binding:"required"`
		Quantity   int     `json:"quantity" binding:"required,gte=1"`
		UnitPrice  float64 `json:"unit_price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.CartItem
	err := cc.DB.Where("user_id = ? AND food_item_id = ?", userID, body.FoodItemID).
		First(&existing).Error

	switch {
	case err == nil:
		existing.Quantity += body.Quantity
		if err := cc.DB.Save(&existing).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item := models.CartItem{
			UserID:     userID,
			FoodItemID: body.FoodItemID,
			Quantity:   body.Quantity,
			PriceAtAdd: body.UnitPrice,
		}
		if err := cc.DB.Create(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.respondCart(c, userID, "Item added to cart")
}

// UpdateQuantity overwrites the quantity; zero or below removes the row.
// No upper bound is enforced.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	userID := currentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.CartItem
	if err := cc.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if *body.Quantity <= 0 {
		if err := cc.DB.Delete(&item).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		cc.respondCart(c, userID, "Item removed from cart")
		return
	}

	item.Quantity = *body.Quantity
	if err := cc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	cc.respondCart(c, userID, "Quantity updated")
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	userID := currentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("item_id"))

	if err := cc.DB.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	cc.respondCart(c, userID, "Item removed from cart")
}

// ClearCart deletes every row for the user; used after checkout as well.
func (cc *CartController) ClearCart(c *gin.Context) {
	userID := currentUserID(c)

	if err := cc.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", gin.H{
		"items":      []models.CartItem{},
		"item_count": 0,
		"total":      0.0,
	})
}

func (cc *CartController) loadCart(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := cc.DB.Preload("FoodItem").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (cc *CartController) respondCart(c *gin.Context, userID uint, message string) {
	items, err := cc.loadCart(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	itemCount, total := cartTotals(items)
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"items":      items,
		"item_count": itemCount,
		"total":      total,
	})
}

// cartTotals derives item_count = Σ quantity and total = Σ quantity ×
// price_at_add.
func cartTotals(items []models.CartItem) (int, float64) {
	count := 0
	total := 0.0
	for _, item := range items {
		count += item.Quantity
		total += float64(item.Quantity) * item.PriceAtAdd
	}
	return count, total
}
