package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "doctriage/docs"
	"doctriage/internal/config"
	"doctriage/internal/handler"
	"doctriage/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	analysisH *handler.AnalysisHandler,
	uploadH *handler.UploadHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation (not exposed in production)
	if cfg.Server.Environment != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	if cfg.Auth.Enabled() {
		v1.Use(middleware.Auth(cfg.Auth))
	}

	v1.POST("/classify", analysisH.Classify)
	v1.POST("/extract", analysisH.Extract)
	v1.POST("/analyze", analysisH.Analyze)
	v1.GET("/types", analysisH.Types)

	v1.POST("/upload/image", uploadH.UploadImage)
	v1.POST("/upload/audio", uploadH.UploadAudio)

	return r
}
