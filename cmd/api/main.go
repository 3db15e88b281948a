package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"ridersapp/internal/database"
	"ridersapp/internal/handler"
	"ridersapp/internal/middleware"
	"ridersapp/internal/repository"
	"ridersapp/internal/service"
	"ridersapp/internal/websocket"
	"ridersapp/pkg/logger"
)

// @title           RidersApp API
// @version         1.0
// @description     Back office API for managing riders, daily rides, fines and expenses.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		// Fine in containers where env vars come from the orchestrator
	}

	log, err := logger.Init()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	dbHost := getenv("DB_HOST", "localhost")
	dbPort := getenv("DB_PORT", "5432")
	dbUser := getenv("DB_USER", "postgres")
	dbPassword := getenv("DB_PASSWORD", "postgres")
	dbName := getenv("DB_NAME", "ridersapp")
	dbSslMode := getenv("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("connected to PostgreSQL")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	countryRepo := repository.NewCountryRepository(db)
	cityRepo := repository.NewCityRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	dailyRideRepo := repository.NewDailyRideRepository(db)
	configRepo := repository.NewConfigurationRepository(db)
	fineTypeRepo := repository.NewFineOrExpenseTypeRepository(db)
	fineRepo := repository.NewFineOrExpenseRepository(db)

	userService := service.NewUserService(userRepo)
	auditService := service.NewAuditService(auditRepo)
	configService := service.NewConfigurationService(configRepo, auditRepo)
	countryService := service.NewCountryService(countryRepo, auditRepo, txManager)
	cityService := service.NewCityService(cityRepo, countryRepo, auditRepo, txManager)
	employeeService := service.NewEmployeeService(employeeRepo, countryRepo, cityRepo, auditRepo, txManager)
	dailyRideService := service.NewDailyRideService(dailyRideRepo, employeeRepo, configService, auditRepo)
	fineTypeService := service.NewFineOrExpenseTypeService(fineTypeRepo, auditRepo, txManager)
	fineService := service.NewFineOrExpenseService(fineRepo, employeeRepo, fineTypeRepo, auditRepo)
	statisticsService := service.NewStatisticsService(db)
	fileService := service.NewFileService(getenv("UPLOAD_DIR", "uploads"))

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService)
	auditHandler := handler.NewAuditHandler(auditService)
	countryHandler := handler.NewCountryHandler(countryService)
	cityHandler := handler.NewCityHandler(cityService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, fileService)
	dailyRideHandler := handler.NewDailyRideHandler(dailyRideService, wsHub)
	configHandler := handler.NewConfigurationHandler(configService)
	fineTypeHandler := handler.NewFineOrExpenseTypeHandler(fineTypeService)
	fineHandler := handler.NewFineOrExpenseHandler(fineService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Uploaded employee pictures
	router.Static("/uploads", getenv("UPLOAD_DIR", "uploads"))

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	userHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))
	countryHandler.RegisterRoutes(router.Group(""))
	cityHandler.RegisterRoutes(router.Group(""))
	employeeHandler.RegisterRoutes(router.Group(""))
	dailyRideHandler.RegisterRoutes(router.Group(""))
	configHandler.RegisterRoutes(router.Group(""))
	fineTypeHandler.RegisterRoutes(router.Group(""))
	fineHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))

	port := getenv("PORT", "8080")

	log.Info("server listening", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
