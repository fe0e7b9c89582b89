package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope; success bodies are shaped per-endpoint
// because the mobile client expects exact field names.
type Response struct {
	Status int    `json:"-"`               // HTTP status code
	Error  string `json:"error,omitempty"` // Error message
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Status: http.StatusUnauthorized,
		Error:  message,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Status: http.StatusBadRequest,
		Error:  message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Status: http.StatusNotFound,
		Error:  message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Status: http.StatusInternalServerError,
		Error:  message,
	})
}
