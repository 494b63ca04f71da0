package api

import (
	"errors"
	"fmt"
	"net/http"

	"pos-api/internal/database"
	"pos-api/internal/response"
	"pos-api/internal/services"
	"pos-api/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PurchaseItem represents one requested line of a purchase
type PurchaseItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// PurchaseRequest represents a purchase request
type PurchaseRequest struct {
	Items []PurchaseItem `json:"items" binding:"required,min=1,dive"`
}

// PurchaseResponse represents a committed purchase
type PurchaseResponse struct {
	TransactionID uint            `json:"transaction_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// Purchase records a multi-line purchase and returns its total
func Purchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	lines := make([]services.PurchaseLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.PurchaseLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	purchaseService := services.NewPurchaseService(database.GetDB())
	result, err := purchaseService.Purchase(c.Request.Context(), lines)
	if err != nil {
		var notFound *services.ProductNotFoundError
		if errors.As(err, &notFound) {
			response.NotFound(c, fmt.Sprintf("Product ID %d not found", notFound.ProductID))
			return
		}
		logging.Errorf("Purchase failed: %v", err)
		response.ServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, PurchaseResponse{
		TransactionID: result.TransactionID,
		TotalAmount:   result.TotalAmount,
	})
}
