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

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}

func setupTestDBForCategories(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:categorydb?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}); err != nil {
		t.Fatal(err)
	}
	db.Exec("DELETE FROM categories")

	db.Create(&models.Category{Name: "Mains", DisplayOrder: 2, IsActive: true})
	db.Create(&models.Category{Name: "Starters", DisplayOrder: 1, IsActive: true})
	db.Create(&models.Category{Name: "Retired", DisplayOrder: 3, IsActive: false})
	return db
}

func setupCategoryRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	categoryCtrl := controllers.NewCategoryController(db)
	router.GET("/categories", categoryCtrl.GetActiveCategories)
	admin := router.Group("/admin")
	admin.GET("/categories", categoryCtrl.GetAllCategories)
	admin.POST("/categories", categoryCtrl.CreateCategory)
	admin.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
	admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)
	return router
}

func TestActiveCategoriesOrderedAndFiltered(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	req, _ := http.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)
	assert.Equal(t, "Starters", data[0].(map[string]interface{})["name"])
	assert.Equal(t, "Mains", data[1].(map[string]interface{})["name"])
}

func TestAdminCategorySearch(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	req, _ := http.NewRequest("GET", "/admin/categories?search=ret", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, "Retired", data[0].(map[string]interface{})["name"])
}

func TestCategoryCRUD(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCategories(t)
	router := setupCategoryRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{"name": "Desserts", "display_order": 4})
	req, _ := http.NewRequest("POST", "/admin/categories", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Category
	assert.NoError(t, db.Where("name = ?", "Desserts").First(&created).Error)
	assert.True(t, created.IsActive)

	payload, _ = json.Marshal(map[string]interface{}{"is_active": false})
	req, _ = http.NewRequest("PATCH", "/admin/categories/"+itoa(created.ID), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, db.First(&created, created.ID).Error)
	assert.False(t, created.IsActive)
	assert.Equal(t, "Desserts", created.Name)

	req, _ = http.NewRequest("DELETE", "/admin/categories/"+itoa(created.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Category{}).Where("id = ?", created.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
