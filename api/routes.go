package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/GuangSTrip/BenchAnnotate/api/annotations"
	"github.com/GuangSTrip/BenchAnnotate/api/health"
	"github.com/GuangSTrip/BenchAnnotate/api/ingest"
	"github.com/GuangSTrip/BenchAnnotate/api/segment"
	"github.com/GuangSTrip/BenchAnnotate/api/types"
	"github.com/GuangSTrip/BenchAnnotate/api/version"
	_ "github.com/GuangSTrip/BenchAnnotate/docs/swagger"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/videos"
	"github.com/GuangSTrip/BenchAnnotate/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("handler dependencies are nil")
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Serve ingested media for the annotation UI's video player
	engine.Static(videos.PublicVideoPrefix, cfg.Storage.VideoDir)

	apiGroup := engine.Group("/api")

	// Annotation reads and appends are cheap file operations
	annotations.RegisterRoutes(apiGroup, deps)

	// Ingest and segment spawn external processes; rate limit per client
	limited := apiGroup.Group("")
	limited.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
		cfg.Security.RateLimitRPS, cfg.Security.RateLimitBurst))
	ingest.RegisterRoutes(limited, deps)
	segment.RegisterRoutes(limited, deps)

	return nil
}
