package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", handler.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/resolve", handler.Resolve)
	}

	return r
}
