package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unvaultd/pkg/config"
	"unvaultd/pkg/jwt"
	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/pkg/queue"
	"unvaultd/pkg/session"
	notificationHTTP "unvaultd/services/notification/internal/controller/http"
	"unvaultd/services/notification/internal/repo/persistent"
	"unvaultd/services/notification/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "unvaultd/services/notification/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	sessions := session.NewStore(cfg)

	inboxRepo := persistent.NewInboxRepository(redisClient, log)
	actorRepo := persistent.NewActorRepository(db)

	notificationUseCase := usecase.NewNotificationUseCase(inboxRepo, actorRepo, log)

	origins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	if cfg.PublicSiteURL != "" {
		origins = append(origins, cfg.PublicSiteURL)
	}

	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, log)
	streamHandler := notificationHTTP.NewStreamHandler(notificationUseCase, origins, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		pending, err := queueClient.QueueLength()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "queue unavailable"})
			return
		}
		c.JSON(200, gin.H{"status": "ok", "pending_events": pending})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService, sessions))
	protected.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.DELETE("/notifications", notificationHandler.ClearNotifications)
		protected.GET("/messages", notificationHandler.Messages)
	}
	api.GET("/notifications/ws",
		middleware.AuthMiddleware(jwtService, sessions, middleware.QueryToken("token")),
		streamHandler.Stream)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Starting notification queue consumer...")
		err := queueClient.ConsumeActivity(func(event queue.Event) error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return notificationUseCase.HandleActivity(ctx, event)
		})
		if err != nil {
			log.Error("Error starting notification queue consumer: %v", err)
		}
	}()

	go func() {
		log.Info("Notification service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down notification service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	log.Info("Notification service exited")
	_ = log.Sync()
}
