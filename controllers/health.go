package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the plain-text liveness endpoint.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "MindMetrics Profile API (MongoDB) is running...")
	}
}
