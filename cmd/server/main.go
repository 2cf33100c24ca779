package main

import (
	"time"

	"crm_backend/internal/config"
	"crm_backend/internal/database"
	"crm_backend/internal/handlers"
	"crm_backend/internal/logging"
	"crm_backend/internal/middleware"
	"crm_backend/internal/redis"
	"crm_backend/internal/repository"
	"crm_backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logging.L().Fatal("Failed to connect to database: ", err)
	}

	// Initialize Redis (token revocation store)
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logging.L().Fatal("Failed to connect to Redis: ", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	callLogRepo := repository.NewCallLogRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	shiftNoteRepo := repository.NewShiftNoteRepository(db)
	remarkLogRepo := repository.NewRemarkLogRepository(db)

	// Initialize services
	secret := []byte(cfg.JWTSecret)
	lifespan := time.Duration(cfg.TokenHourLifespan) * time.Hour
	authService := services.NewAuthService(userRepo, redisClient, secret, lifespan)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	customerService := services.NewCustomerService(customerRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)
	leadService := services.NewLeadService(leadRepo, orderService)
	callLogService := services.NewCallLogService(callLogRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo)
	shiftNoteService := services.NewShiftNoteService(shiftNoteRepo)
	remarkLogService := services.NewRemarkLogService(remarkLogRepo)
	statsService := services.NewStatsService(callLogRepo, leadRepo, orderRepo, taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	callLogHandler := handlers.NewCallLogHandler(callLogService)
	leadHandler := handlers.NewLeadHandler(leadService)
	orderHandler := handlers.NewOrderHandler(orderService)
	productHandler := handlers.NewProductHandler(productService)
	otherHandler := handlers.NewOtherHandler(taskService, customerService, userService, shiftNoteService, remarkLogService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes stay open; validate does its own token check so the
	// frontend gets a clean 401 instead of a middleware abort.
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/validate", authHandler.Validate)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	api := router.Group("/api")
	api.Use(middleware.Authenticate(secret, redisClient))
	{
		api.GET("/call-logs", callLogHandler.GetAll)
		api.GET("/call-logs/:id", callLogHandler.GetByID)
		api.POST("/call-logs", callLogHandler.Create)
		api.PUT("/call-logs/:id", callLogHandler.Update)
		api.DELETE("/call-logs/:id", callLogHandler.Delete)

		api.GET("/leads", leadHandler.GetAll)
		api.GET("/leads/:id", leadHandler.GetByID)
		api.POST("/leads", leadHandler.Create)
		api.PUT("/leads/:id", leadHandler.Update)
		api.DELETE("/leads/:id", leadHandler.Delete)
		api.POST("/leads/:id/convert", leadHandler.Convert)

		api.GET("/orders", orderHandler.GetAll)
		api.GET("/orders/:id", orderHandler.GetByID)
		api.POST("/orders", orderHandler.Create)
		api.PUT("/orders/:id", orderHandler.Update)
		api.DELETE("/orders/:id", orderHandler.Delete)

		api.GET("/products", productHandler.GetAll)
		api.GET("/products/:id", productHandler.GetByID)
		api.POST("/products", productHandler.Create)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		api.GET("/tasks", otherHandler.GetAllTasks)
		api.POST("/tasks", otherHandler.CreateTask)
		api.PUT("/tasks/:id", otherHandler.UpdateTask)
		api.DELETE("/tasks/:id", otherHandler.DeleteTask)

		api.GET("/customers", otherHandler.GetAllCustomers)
		api.POST("/customers", otherHandler.CreateCustomer)
		api.PUT("/customers/:id", otherHandler.UpdateCustomer)

		api.GET("/users", otherHandler.GetAllUsers)

		api.GET("/shift-notes", otherHandler.GetAllShiftNotes)
		api.POST("/shift-notes", otherHandler.CreateShiftNote)
		api.PUT("/shift-notes/:id", otherHandler.UpdateShiftNote)

		api.GET("/remark-logs", otherHandler.GetRemarkLogs)
		api.POST("/remark-logs", otherHandler.CreateRemarkLog)

		api.GET("/dashboard/stats", dashboardHandler.GetStats)
	}

	// Start server
	logging.L().Info("Server starting on port ", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logging.L().Fatal("Failed to start server: ", err)
	}
}
