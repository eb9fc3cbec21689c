package main

import (
	"log"
	"os"

	"github.com/foodzy/foodzy-app/config"
	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/router"
	"github.com/foodzy/foodzy-app/services"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	// Load .env file di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	ensureAdmin(db)

	// Status monitor mendorong update order ke websocket subscribers
	monitor := services.NewStatusMonitor(db)
	monitor.Start()
	defer monitor.Stop()

	r := router.SetupRouter(db)

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.Category{},
		&models.FoodItem{},
		&models.Banner{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// ensureAdmin seeds the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Existing accounts are promoted, never re-created.
func ensureAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			utils.ErrorLogger.Printf("Error looking up admin account: %v", err)
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			utils.ErrorLogger.Printf("Error hashing admin password: %v", err)
			return
		}
		user = models.User{Email: email, Password: string(hashed), FullName: "Admin"}
		if err := db.Create(&user).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating admin account: %v", err)
			return
		}
	}

	var admin models.AdminUser
	if err := db.Where("id = ?", user.ID).First(&admin).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			utils.ErrorLogger.Printf("Error checking admin role: %v", err)
			return
		}
		admin = models.AdminUser{ID: user.ID, Role: "admin"}
		if err := db.Create(&admin).Error; err != nil {
			utils.ErrorLogger.Printf("Error promoting admin account: %v", err)
			return
		}
		utils.InfoLogger.Printf("Seeded admin account %s", email)
	}
}
