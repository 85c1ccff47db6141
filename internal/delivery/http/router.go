package http

import (
	"log/slog"

	"github.com/gdugdh24/spiritatlas-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/spiritatlas-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	profileHandler       *handler.ProfileHandler
	compatibilityHandler *handler.CompatibilityHandler
	matchHandler         *handler.MatchHandler
	engineHandler        *handler.EngineHandler
	contentHandler       *handler.ContentHandler
	authMiddleware       *middleware.AuthMiddleware
	logger               *slog.Logger
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	compatibilityHandler *handler.CompatibilityHandler,
	matchHandler *handler.MatchHandler,
	engineHandler *handler.EngineHandler,
	contentHandler *handler.ContentHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
) *Router {
	return &Router{
		profileHandler:       profileHandler,
		compatibilityHandler: compatibilityHandler,
		matchHandler:         matchHandler,
		engineHandler:        engineHandler,
		contentHandler:       contentHandler,
		authMiddleware:       authMiddleware,
		logger:               logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(r.logger))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(r.authMiddleware.RequireAuth())
	{
		profiles := v1.Group("/profiles")
		{
			profiles.POST("", r.profileHandler.CreateProfile)
			profiles.GET("", r.profileHandler.ListProfiles)
			profiles.GET("/:id", r.profileHandler.GetProfile)
			profiles.PUT("/:id", r.profileHandler.UpdateProfile)
			profiles.DELETE("/:id", r.profileHandler.DeleteProfile)
			profiles.GET("/:id/reports", r.compatibilityHandler.ListReports)
			profiles.POST("/:id/matches", r.matchHandler.FindMatches)
		}

		compatibility := v1.Group("/compatibility")
		{
			compatibility.POST("/analyze", r.compatibilityHandler.Analyze)
			compatibility.GET("/:a/:b", r.compatibilityHandler.GetReport)
			compatibility.DELETE("/:a/:b", r.compatibilityHandler.DeleteReport)
			compatibility.GET("/:a/:b/explanation", r.compatibilityHandler.GetExplanation)
		}

		v1.GET("/engine/stats", r.engineHandler.GetStats)
		v1.GET("/tantric-content", r.contentHandler.ListContent)
	}

	return router
}
