package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"giftwise/api/handlers"
	"giftwise/api/middleware"
	"giftwise/auth"
	"giftwise/db"
	_ "giftwise/docs"
	"giftwise/repositories"
	"giftwise/suggest"
)

// Deps are the constructed services the router wires into handlers.
type Deps struct {
	Store      *repositories.Store
	Engine     *suggest.Engine
	JWTManager *auth.JWTManager
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLogging())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/suggestions", handlers.SuggestHandler(deps.Engine, deps.JWTManager))

		api.GET("/runs", handlers.ListRunsHandler(deps.Store, deps.JWTManager))
		api.GET("/runs/:id", handlers.GetRunHandler(deps.Store, deps.JWTManager))
		api.POST("/runs/:id/ideas/:index/save", handlers.SaveIdeaHandler(deps.Store, deps.JWTManager))
		api.POST("/runs/:id/ideas/:index/feedback", handlers.IdeaFeedbackHandler(deps.Store, deps.JWTManager))

		api.GET("/saved-ideas", handlers.ListSavedIdeasHandler(deps.Store, deps.JWTManager))
		api.DELETE("/saved-ideas/:id", handlers.DeleteSavedIdeaHandler(deps.Store, deps.JWTManager))

		api.POST("/recipients", handlers.CreateRecipientHandler(deps.Store, deps.JWTManager))
		api.GET("/recipients", handlers.ListRecipientsHandler(deps.Store, deps.JWTManager))
		api.GET("/recipients/:id", handlers.GetRecipientHandler(deps.Store, deps.JWTManager))

		admin := api.Group("/admin", middleware.AdminOnly(deps.JWTManager))
		admin.GET("/ai-logs", handlers.ListAILogsHandler(deps.Store))
	}

	return r
}
