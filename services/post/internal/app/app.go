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
	"unvaultd/pkg/jwt"
	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/pkg/queue"
	"unvaultd/pkg/s3"
	"unvaultd/pkg/session"
	postHTTP "unvaultd/services/post/internal/controller/http"
	"unvaultd/services/post/internal/repo/persistent"
	"unvaultd/services/post/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "unvaultd/services/post/docs" // Swagger docs
)

const postCacheTTL = 10 * time.Minute

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	sessions := session.NewStore(cfg)

	postRepo := persistent.NewPostRepository(db)
	reactionRepo := persistent.NewReactionRepository(db)
	posts := cache.NewEntityCache(redisClient, "post", postCacheTTL)

	var publisher usecase.EventPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	postUseCase := usecase.NewPostUseCase(postRepo, s3Client, posts, publisher, log)
	feedUseCase := usecase.NewFeedUseCase(postRepo, log)
	reactionUseCase := usecase.NewReactionUseCase(postRepo, reactionRepo, posts, publisher, log)

	postHandler := postHTTP.NewPostHandler(postUseCase, log)
	feedHandler := postHTTP.NewFeedHandler(feedUseCase, log)
	reactionHandler := postHTTP.NewReactionHandler(reactionUseCase, log)

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r.Group("/api/v1"), routeMiddleware{
		auth:         middleware.AuthMiddleware(jwtService, sessions),
		optionalAuth: middleware.OptionalAuthMiddleware(jwtService, sessions),
		rateLimit:    middleware.RateLimitMiddleware(redisClient, 100, time.Minute),
	}, postHandler, feedHandler, reactionHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Post service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down post service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	log.Info("Post service exited")
	_ = log.Sync()
}

type routeMiddleware struct {
	auth         gin.HandlerFunc
	optionalAuth gin.HandlerFunc
	rateLimit    gin.HandlerFunc
}

// registerRoutes resolves the member before the limiter runs, so signed-in
// traffic is counted per member instead of per client IP.
func registerRoutes(api *gin.RouterGroup, mw routeMiddleware, postHandler *postHTTP.PostHandler, feedHandler *postHTTP.FeedHandler, reactionHandler *postHTTP.ReactionHandler) {
	// The feed is public; a signed-in viewer only adds their flags.
	api.GET("/feed", mw.optionalAuth, mw.rateLimit, feedHandler.Feed)

	protected := api.Group("")
	protected.Use(mw.auth, mw.rateLimit)
	{
		protected.POST("/posts", postHandler.CreatePost)
		protected.GET("/posts/:id", postHandler.GetPost)
		protected.PUT("/posts/:id", postHandler.UpdatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)
		protected.POST("/posts/:id/like", reactionHandler.ToggleLike)
		protected.POST("/posts/:id/save", reactionHandler.ToggleSave)

		protected.GET("/users/:id/posts", feedHandler.UserPosts)
		protected.GET("/users/:id/likes", feedHandler.UserLikes)
		protected.GET("/users/:id/saves", feedHandler.UserSaves)
		protected.GET("/me/likes", feedHandler.MyLikes)
		protected.GET("/me/saves", feedHandler.MySaves)
	}
}
