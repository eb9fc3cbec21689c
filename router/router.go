package router

import (
	"github.com/foodzy/foodzy-app/controllers"
	"github.com/foodzy/foodzy-app/middlewares"
	"github.com/foodzy/foodzy-app/services"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Global per-IP limiter. Must be registered before any route: gin
	// freezes each route's handler chain at registration time.
	rateLimiter := middlewares.NewRateLimiter(50, 10)
	r.Use(rateLimiter.RateLimit())

	// Outbound services are optional: a missing SES or S3 configuration
	// disables the endpoints that need them instead of failing startup.
	var sender services.EmailSender
	if mailer, err := services.NewSESMailer(); err != nil {
		utils.InfoLogger.Printf("Email sending disabled: %v", err)
	} else {
		sender = mailer
	}

	uploader, err := services.NewUploader()
	if err != nil {
		utils.InfoLogger.Printf("Image uploads disabled: %v", err)
		uploader = nil
	}

	var generator services.ReplyGenerator
	if gen, err := services.NewOpenAIGenerator(); err != nil {
		utils.InfoLogger.Printf("Chat model unavailable, using rule-based replies: %v", err)
	} else {
		generator = gen
	}

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	foodCtrl := controllers.NewFoodController(db)
	bannerCtrl := controllers.NewBannerController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db)
	adminUserCtrl := controllers.NewAdminUserController(db)
	dashboardCtrl := controllers.NewDashboardController(db)
	marketingCtrl := controllers.NewMarketingController(db, sender)
	chatCtrl := controllers.NewChatController(services.NewChatService(db, generator))
	translationCtrl := controllers.NewTranslationController(services.NewTranslator())
	uploadCtrl := controllers.NewUploadController(uploader)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Browsing tidak perlu login
	r.GET("/categories", categoryCtrl.GetActiveCategories)
	r.GET("/food-items", foodCtrl.GetAvailableFood)
	r.GET("/food-items/:food_id", foodCtrl.GetFoodByID)
	r.GET("/banners", bannerCtrl.GetActiveBanners)

	// Translation + UI strings
	r.POST("/translate", translationCtrl.Translate)
	r.POST("/detect", translationCtrl.Detect)
	r.GET("/i18n/languages", translationCtrl.GetLanguages)
	r.GET("/i18n/strings/:lang", translationCtrl.GetStrings)

	// Chatbot: berjalan tanpa login, tapi add-to-cart butuh user
	r.POST("/chat", middlewares.OptionalAuthMiddleware(), chatCtrl.Chat)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.GetProfile)

		// CART
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:item_id", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		// ORDERS (pemilik order saja)
		auth.POST("/orders", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetMyOrderByID)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware(db))
	{
		// DASHBOARD
		admin.GET("/dashboard/stats", dashboardCtrl.GetStats)

		// CATEGORIES
		admin.GET("/categories", categoryCtrl.GetAllCategories)
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		// FOOD ITEMS
		admin.GET("/food-items", foodCtrl.GetAllFood)
		admin.POST("/food-items", foodCtrl.CreateFood)
		admin.GET("/food-items/:food_id", foodCtrl.GetFoodByID)
		admin.PATCH("/food-items/:food_id", foodCtrl.UpdateFood)
		admin.DELETE("/food-items/:food_id", foodCtrl.DeleteFood)

		// BANNERS
		admin.GET("/banners", bannerCtrl.GetAllBanners)
		admin.POST("/banners", bannerCtrl.CreateBanner)
		admin.PATCH("/banners/:banner_id", bannerCtrl.UpdateBanner)
		admin.DELETE("/banners/:banner_id", bannerCtrl.DeleteBanner)

		// ORDERS
		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		admin.GET("/orders/:order_id/history", orderCtrl.GetOrderHistory)
		admin.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

		// USER DIRECTORY
		admin.GET("/users", adminUserCtrl.ListUsers)

		// MARKETING
		admin.POST("/marketing/send-email", marketingCtrl.SendBulkEmail)

		// UPLOADS
		admin.POST("/uploads", uploadCtrl.CreateUpload)
	}

	// WebSocket endpoint dengan middleware khusus
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/orders", controllers.OrderFeedHandler)
	}

	return r
}
