package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/obradorlabs/obrador-backend/internal/http/handlers"
	"github.com/obradorlabs/obrador-backend/internal/http/middleware"
	"github.com/obradorlabs/obrador-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log                *logger.Logger
	IngredientHandler  *handlers.IngredientHandler
	ElaborationHandler *handlers.ElaborationHandler
	LotHandler         *handlers.LotHandler
	LabelHandler       *handlers.LabelHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/ingredients", cfg.IngredientHandler.Create)
		api.GET("/ingredients", cfg.IngredientHandler.List)
		api.GET("/ingredients/:id", cfg.IngredientHandler.Get)

		api.POST("/elaborations", cfg.ElaborationHandler.Create)
		api.GET("/elaborations", cfg.ElaborationHandler.List)
		api.GET("/elaborations/:id", cfg.ElaborationHandler.Get)
		api.PATCH("/elaborations/:id/name", cfg.ElaborationHandler.Rename)

		api.POST("/lots", cfg.LotHandler.Create)
		api.GET("/lots", cfg.LotHandler.List)
		api.GET("/lots/:id", cfg.LotHandler.Get)
		api.GET("/lots/:id/composition", cfg.LotHandler.Composition)
		api.GET("/composition", cfg.LotHandler.ListComposition)

		api.POST("/labels/preview", cfg.LabelHandler.Preview)
		api.POST("/labels/print", cfg.LabelHandler.Print)
	}

	return router
}
