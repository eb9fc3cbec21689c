package Controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/foodzy/foodzy-app/controllers"
	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/services"
	"github.com/foodzy/foodzy-app/utils"
)

// stubSender records sends and fails for addresses listed in failFor.
type stubSender struct {
	sent    []string
	bodies  []string
	failFor map[string]bool
}

func (s *stubSender) Send(to, subject, htmlBody string) error {
	if s.failFor[to] {
		return errors.New("bounced: " + to)
	}
	s.sent = append(s.sent, to)
	s.bodies = append(s.bodies, htmlBody)
	return nil
}

func setupTestDBForMarketing(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:marketingdb?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatal(err)
	}
	db.Exec("DELETE FROM users")

	db.Create(&models.User{Email: "one@example.com", Password: "x"})
	db.Create(&models.User{Email: "two@example.com", Password: "x"})
	db.Create(&models.User{Email: "three@example.com", Password: "x"})
	return db
}

func setupMarketingRouter(db *gorm.DB, sender services.EmailSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	marketingCtrl := controllers.NewMarketingController(db, sender)
	router.POST("/admin/marketing/send-email", marketingCtrl.SendBulkEmail)
	return router
}

func sendBulk(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/admin/marketing/send-email", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBulkEmailSendsToAllUsers(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMarketing(t)
	sender := &stubSender{}
	router := setupMarketingRouter(db, sender)

	w := sendBulk(t, router, map[string]interface{}{
		"subject":         "Weekend Offer",
		"message":         "Line one\nLine two",
		"target_audience": "all",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Successfully sent 3 emails", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["sent"])
	assert.Equal(t, float64(0), data["failed"])

	assert.Len(t, sender.sent, 3)
	// Newlines become <br> inside the paragraph wrapper.
	assert.Equal(t, "<p>Line one<br>Line two</p>", sender.bodies[0])
}

func TestBulkEmailReportsPartialFailures(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMarketing(t)
	sender := &stubSender{failFor: map[string]bool{"two@example.com": true}}
	router := setupMarketingRouter(db, sender)

	w := sendBulk(t, router, map[string]interface{}{
		"subject":         "Weekend Offer",
		"message":         "Hi",
		"target_audience": "all",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sent 2 emails successfully, 1 failed", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["sent"])
	assert.Equal(t, float64(1), data["failed"])
	assert.Len(t, data["errors"].([]interface{}), 1)
}

func TestBulkEmailRejectsUnknownAudience(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMarketing(t)
	sender := &stubSender{}
	router := setupMarketingRouter(db, sender)

	w := sendBulk(t, router, map[string]interface{}{
		"subject":         "Weekend Offer",
		"message":         "Hi",
		"target_audience": "vip",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sender.sent)
}

func TestBulkEmailWithoutSenderIsUnavailable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForMarketing(t)
	router := setupMarketingRouter(db, nil)

	w := sendBulk(t, router, map[string]interface{}{
		"subject":         "Weekend Offer",
		"message":         "Hi",
		"target_audience": "all",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
