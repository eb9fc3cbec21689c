package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/foodzy/foodzy-app/controllers"
	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
)

func setupTestDBForCart(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:cartdb?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Category{}, &models.FoodItem{}, &models.CartItem{})
	if err != nil {
		t.Fatal(err)
	}
	db.Exec("DELETE FROM cart_items")
	db.Exec("DELETE FROM food_items")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM users")

	db.Create(&models.Category{Name: "Mains"})
	db.Create(&models.FoodItem{CategoryID: 1, Name: "Classic Burger", BasePrice: 10.0, CurrentPrice: 10.0, IsAvailable: true})
	db.Create(&models.FoodItem{CategoryID: 1, Name: "Garden Salad", BasePrice: 5.0, CurrentPrice: 5.0, IsAvailable: true})
	db.Create(&models.User{Email: "customer@example.com", Password: "x", FullName: "Customer"})
	return db
}

// fakeAuth stands in for the JWT middleware and pins the caller identity.
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupCartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	cartCtrl := controllers.NewCartController(db)
	auth := router.Group("/", fakeAuth(1))
	auth.GET("/cart", cartCtrl.GetCart)
	auth.POST("/cart/items", cartCtrl.AddItem)
	auth.PATCH("/cart/items/:item_id", cartCtrl.UpdateQuantity)
	auth.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)
	auth.DELETE("/cart", cartCtrl.ClearCart)
	return router
}

func postCartItem(t *testing.T, router *gin.Engine, foodItemID uint, quantity int, unitPrice float64) *httptest.ResponseRecorder {
	payload := map[string]interface{}{
		"food_item_id": foodItemID,
		"quantity":     quantity,
		"unit_price":   unitPrice,
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/cart/items", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddItemMergesDuplicateRows(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	w := postCartItem(t, router, 1, 1, 10.0)
	assert.Equal(t, http.StatusOK, w.Code)

	// Adding the same item again must not create a second row.
	w = postCartItem(t, router, 1, 2, 10.0)
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []models.CartItem
	assert.NoError(t, db.Where("user_id = ?", 1).Find(&rows).Error)
	assert.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.Equal(t, 10.0, rows[0].PriceAtAdd)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["item_count"])
	assert.Equal(t, float64(30), data["total"])
}

func TestCartTotalsAcrossItems(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	postCartItem(t, router, 1, 2, 10.0)
	postCartItem(t, router, 2, 1, 5.0)

	req, _ := http.NewRequest("GET", "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["item_count"])
	assert.Equal(t, float64(25), data["total"])
}

func TestUpdateQuantityZeroRemovesRow(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	postCartItem(t, router, 1, 2, 10.0)

	var row models.CartItem
	assert.NoError(t, db.Where("user_id = ?", 1).First(&row).Error)

	payload, _ := json.Marshal(map[string]interface{}{"quantity": 0})
	req, _ := http.NewRequest("PATCH", "/cart/items/"+strconv.Itoa(int(row.ID)), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	postCartItem(t, router, 1, 2, 10.0)

	var row models.CartItem
	assert.NoError(t, db.Where("user_id = ?", 1).First(&row).Error)

	payload, _ := json.Marshal(map[string]interface{}{"quantity": 5})
	req, _ := http.NewRequest("PATCH", "/cart/items/"+strconv.Itoa(int(row.ID)), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, db.First(&row, row.ID).Error)
	assert.Equal(t, 5, row.Quantity)
}

func TestClearCart(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	postCartItem(t, router, 1, 2, 10.0)
	postCartItem(t, router, 2, 1, 5.0)

	req, _ := http.NewRequest("DELETE", "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPriceAtAddStaysLocked(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCart(t)
	router := setupCartRouter(db)

	postCartItem(t, router, 1, 1, 10.0)

	// Catalog price change after the add must not move the cart total.
	db.Model(&models.FoodItem{}).Where("id = ?", 1).Update("current_price", 99.0)

	req, _ := http.NewRequest("GET", "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["total"])
}
