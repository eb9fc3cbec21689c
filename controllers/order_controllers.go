package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// Checkout converts the caller's cart into an order plus order items and
// clears the cart. The three steps run in one transaction: the original
// client-issued sequence could leave an order with zero items behind, which
// a server-side write has no reason to allow.
func (oc *OrderController) Checkout(c *gin.Context) {
	userID := currentUserID(c)

	var body struct {
		DeliveryAddress string `json:"delivery_address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var cartItems []models.CartItem
	if err := oc.DB.Preload("FoodItem").
		Where("user_id = ?", userID).
		Find(&cartItems).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(cartItems) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	_, total := cartTotals(cartItems)

	order := models.Order{
		UserID:          userID,
		Status:          models.OrderStatusPending,
		TotalAmount:     total,
		PaymentStatus:   "pending",
		DeliveryAddress: body.DeliveryAddress,
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, cartItem := range cartItems {
			orderItem := models.OrderItem{
				OrderID:      order.ID,
				FoodItemID:   cartItem.FoodItemID,
				FoodName:     cartItem.FoodItem.Name,
				Quantity:     cartItem.Quantity,
				PriceAtOrder: cartItem.PriceAtAdd,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.Preload("OrderItems").First(&order, order.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d placed by user %d (total %.2f)", order.ID, userID, total)
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetMyOrders lists the caller's orders, newest first.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID := currentUserID(c)

	var orders []models.Order
	if err := oc.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Your orders", orders)
}

// GetMyOrderByID returns one of the caller's orders with its progress index
// for the 4-stage tracker.
func (oc *OrderController) GetMyOrderByID(c *gin.Context) {
	userID := currentUserID(c)
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.Preload("OrderItems").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", gin.H{
		"order":          order,
		"progress_index": models.ProgressIndex(order.Status),
		"progress_steps": models.ProgressSteps,
	})
}

// GetAllOrders is the admin list, joined with the owning user and items,
// with an optional status equality filter.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("User").Preload("OrderItems").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.Preload("User").Preload("OrderItems").
		First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus writes the new status and appends a history row with a
// human-readable note. The history write is independent: its failure is
// logged, never surfaced, and does not undo the status change.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidOrderStatus(body.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid status %q", body.Status))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	order.Status = body.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	history := models.OrderStatusHistory{
		OrderID: order.ID,
		Status:  body.Status,
		Notes:   fmt.Sprintf("Status updated to %s by admin", body.Status),
	}
	if err := oc.DB.Create(&history).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to append status history for order %d: %v", order.ID, err)
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// GetOrderHistory returns the append-only status log for one order.
func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	var history []models.OrderStatusHistory
	if err := oc.DB.Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&history).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status history", history)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	orderID, _ := strconv.Atoi(c.Param("order_id"))

	if err := oc.DB.Delete(&models.Order{}, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": orderID})
}
