package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Payloads are written bare and failures carry a single "detail" string.

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, &MessageResponse{Message: message})
}

func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, &ErrorResponse{Detail: detail})
}

// Unprocessable answers a malformed payload or query.
func Unprocessable(c *gin.Context, detail string) {
	c.JSON(http.StatusUnprocessableEntity, &ErrorResponse{Detail: detail})
}

func Forbidden(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusForbidden, &ErrorResponse{Detail: detail})
}

func InternalError(c *gin.Context, detail string) {
	c.JSON(http.StatusInternalServerError, &ErrorResponse{Detail: detail})
}

func ServiceUnavailable(c *gin.Context, data interface{}) {
	c.JSON(http.StatusServiceUnavailable, data)
}
