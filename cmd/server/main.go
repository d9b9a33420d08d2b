package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tubemark/tubemark-core/internal/auth"
	"github.com/tubemark/tubemark-core/internal/config"
	"github.com/tubemark/tubemark-core/internal/database"
	"github.com/tubemark/tubemark-core/internal/logger"
	"github.com/tubemark/tubemark-core/internal/users"
	"github.com/tubemark/tubemark-core/internal/videos"
	"github.com/tubemark/tubemark-core/internal/youtube"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalw("failed to connect to database", "err", err)
	}

	// run migrations to create tables
	if err := database.Migrate(db, &users.User{}, &videos.SavedVideo{}); err != nil {
		logger.Log.Fatalw("migrations failed", "err", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	guard := auth.RequireAuth(tokens)

	authHandler := auth.NewHandler(db, tokens)
	userHandler := users.NewHandler(db)
	videoHandler := videos.NewHandler(videos.NewStore(db))
	ytHandler := youtube.NewHandler(youtube.NewClient(youtube.Config{APIKey: cfg.YouTubeAPIKey}))

	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/auth/register", authHandler.RegisterHandler)
	r.POST("/auth/login", authHandler.LoginHandler)
	r.GET("/auth/profile", guard, authHandler.ProfileHandler)

	// Protected routes
	r.PUT("/users/profile", guard, userHandler.UpdateProfileHandler)
	r.GET("/users/saved-videos", guard, videoHandler.ListHandler)
	r.POST("/users/saved-videos", guard, videoHandler.SaveHandler)
	r.DELETE("/users/saved-videos/:videoId", guard, videoHandler.DeleteHandler)

	r.GET("/youtube/search", guard, ytHandler.SearchHandler)
	r.GET("/youtube/video/:videoId", guard, ytHandler.VideoHandler)
	r.GET("/youtube/channel/:channelId", guard, ytHandler.ChannelHandler)
	r.GET("/youtube/channel/:channelId/videos", guard, ytHandler.ChannelVideosHandler)
	r.GET("/youtube/trending", guard, ytHandler.TrendingHandler)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatalw("server stopped", "err", err)
	}
}
