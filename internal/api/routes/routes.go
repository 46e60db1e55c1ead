package routes

import (
	"net/http"

	"github.com/careerfolio/backend/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handlers.Response{Success: false, Message: "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Response{Success: false, Message: "not found"})
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)

	// Token rides inside the envelope (POST) or the query string (GET).
	api.POST("/profile", d.Profile.Post)
	api.GET("/profile", d.Profile.Fetch)
}
