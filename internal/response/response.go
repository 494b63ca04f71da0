package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error envelope returned on every failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error sends an error response with the given status code
func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// BadRequest sends a 400 error response
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// NotFound sends a 404 error response
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// ServerError sends a 500 error response
func ServerError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}
