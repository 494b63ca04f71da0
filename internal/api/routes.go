package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	// Totals go over the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// SetupRoutes sets up all routes
func SetupRoutes(r *gin.Engine) {
	r.GET("/product/:code", GetProduct)
	r.POST("/purchase", Purchase)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "pos-service",
		})
	})
}
