package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/handler"
	"main/middleware"
	"main/notify"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Println("No .env file found, relying on environment")
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter(userService *usecase.UserService, reminderService *usecase.ReminderService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService)
			})
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/reminders", func(c *gin.Context) {
			handler.CreateReminderHandler(c, reminderService)
		})
		protected.GET("/reminders/:userId", func(c *gin.Context) {
			handler.GetRemindersHandler(c, reminderService)
		})
		protected.DELETE("/reminders/:reminderId", func(c *gin.Context) {
			handler.DeleteReminderHandler(c, reminderService)
		})
	}

	return router
}

func main() {
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	remindersRepo := repository.GetRemindersRepo(utils.MongoClient)

	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Printf("Index setup failed: %v", err)
	}

	// Alerts are delivered in-process; the log line stands in for the
	// device notification the mobile client shows.
	scheduler := notify.NewScheduler(func(id, text string) {
		log.Printf("Reminder due [%s]: %s", id, text)
	})

	userService := usecase.NewUserService(usersRepo)
	reminderService := usecase.NewReminderService(remindersRepo, scheduler)

	// Redis is optional; without it every list request goes to Mongo.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewReminderCache(redisURL)
		if err != nil {
			log.Printf("Reminder cache disabled: %v", err)
		} else {
			reminderService.Cache = cache
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go scheduler.Run(ctx)
	go reminderService.Run(ctx)
	go utils.CollectSystemMetrics(15 * time.Second)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		log.Printf("Caught signal %s, shutting down", sig)
		cancel()
		os.Exit(0)
	}()

	router := setupRouter(userService, reminderService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
