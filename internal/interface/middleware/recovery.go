package middleware

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/writing-practice-api/pkg/response"
)

// Recovery turns a panic into the generic 500 envelope and logs it through logrus.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"request_id": RequestID(c),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"panic":      fmt.Sprint(rec),
			}).Error("panic recovered")
		}
		response.Abort(c, http.StatusInternalServerError, response.MsgServerError)
	})
}
