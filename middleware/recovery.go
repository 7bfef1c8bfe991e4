package middleware

import (
	"net/http"
	"runtime/debug"

	"levelup/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func EnhancedRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				utils.WithContext(c).WithFields(logrus.Fields{
					"panic": err,
					"path":  c.Request.URL.Path,
					"stack": string(debug.Stack()),
				}).Error("Recovered from panic")
				utils.TrackError("http", "panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					&utils.ErrorResponse{Detail: "Internal server error"})
			}
		}()
		c.Next()
	}
}
