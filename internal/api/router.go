package api

import (
	"time"

	"bullprompt-backend/config"
	_ "bullprompt-backend/docs"
	"bullprompt-backend/internal/api/v1/prompts"
	"bullprompt-backend/internal/middleware"
	"bullprompt-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// NewRouter wires the prompt API for a popup front-end.
func NewRouter(cfg *config.Config, svc *services.PromptService, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(log))

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = config.DefaultCORSOrigins
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:           origins,
		AllowMethods:           []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:           []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:          []string{"Content-Length", middleware.RequestIDHeader},
		AllowWildcard:          true,
		AllowBrowserExtensions: true,
		MaxAge:                 5 * time.Minute,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		prompts.RegisterRoutes(v1, prompts.NewHandler(svc, log))
	}

	return router
}
