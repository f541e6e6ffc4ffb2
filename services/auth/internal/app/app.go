package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unvaultd/pkg/cache"
	"unvaultd/pkg/config"
	"unvaultd/pkg/database"
	"unvaultd/pkg/jwt"
	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/pkg/oauth"
	"unvaultd/pkg/queue"
	"unvaultd/pkg/s3"
	"unvaultd/pkg/session"
	authHTTP "unvaultd/services/auth/internal/controller/http"
	"unvaultd/services/auth/internal/repo/persistent"
	"unvaultd/services/auth/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "unvaultd/services/auth/docs" // Swagger docs
)

const userCacheTTL = 10 * time.Minute

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	sessions    *session.Store
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New().Named("auth")

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Without redis the member cache and rate limiter are disabled.
		log.Warn("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		sessions:    session.NewStore(cfg),
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	userRepo := persistent.NewUserRepository(a.db)
	followRepo := persistent.NewFollowRepository(a.db)
	users := cache.NewEntityCache(a.redisClient, "user", userCacheTTL)

	// A nil *queue.Client must not reach the use case as a non-nil interface.
	var publisher usecase.EventPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, users, a.log)
	profileUseCase := usecase.NewProfileUseCase(userRepo, followRepo, a.s3Client, users, a.log)
	followUseCase := usecase.NewFollowUseCase(userRepo, followRepo, publisher, a.log)

	provider := oauth.Setup(a.cfg, a.sessions)

	authHandler := authHTTP.NewAuthHandler(authUseCase, a.sessions, provider, a.cfg.PublicSiteURL, a.log)
	profileHandler := authHTTP.NewProfileHandler(profileUseCase, a.log)
	followHandler := authHTTP.NewFollowHandler(followUseCase)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The provider redirects back to the site root, outside the API prefix.
	r.GET("/auth/:provider", authHandler.BeginOAuth)
	r.GET("/auth/:provider/callback", authHandler.OAuthCallback)

	api := r.Group("/api/v1")
	{
		api.POST("/sign-up", middleware.RateLimitMiddleware(a.redisClient, 10, time.Minute), authHandler.SignUp)
		api.POST("/sign-in", middleware.RateLimitMiddleware(a.redisClient, 10, time.Minute), authHandler.SignIn)
		api.POST("/sign-out", authHandler.SignOut)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService, a.sessions))
		protected.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
		{
			protected.GET("/me", authHandler.Me)
			protected.GET("/dashboard", profileHandler.Dashboard)
			protected.PUT("/me/profile", profileHandler.UpdateProfile)
			protected.POST("/me/avatar", profileHandler.UploadAvatar)
			protected.GET("/users/:id", profileHandler.GetProfile)
			protected.POST("/users/:id/follow", followHandler.ToggleFollow)
			protected.GET("/users/:id/followers", followHandler.Followers)
			protected.GET("/users/:id/following", followHandler.Following)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Auth service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down auth service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Auth service exited")
	_ = a.log.Sync()
	return nil
}
