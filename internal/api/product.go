package api

import (
	"errors"

	"pos-api/internal/database"
	"pos-api/internal/response"
	"pos-api/internal/services"
	"pos-api/pkg/logging"

	"github.com/gin-gonic/gin"
)

// GetProduct looks up a product by business code
func GetProduct(c *gin.Context) {
	code := c.Param("code")

	catalogService := services.NewCatalogService(database.GetDB(), database.GetRedis())
	product, err := catalogService.GetProductByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		logging.Errorf("Product lookup failed for code %s: %v", code, err)
		response.ServerError(c, err.Error())
		return
	}

	c.JSON(200, product)
}
