package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/writing-practice-api/internal/interface/middleware"
	"github.com/oksasatya/writing-practice-api/pkg/helpers"
	"github.com/oksasatya/writing-practice-api/pkg/response"
	"github.com/oksasatya/writing-practice-api/pkg/validation"
)

// internalError logs the cause and answers with the generic 500 envelope.
func internalError(c *gin.Context, logger *logrus.Logger, msg string, err error) {
	helpers.LogError(logger, msg, err, logrus.Fields{
		"request_id": middleware.RequestID(c),
		"route":      c.FullPath(),
	})
	response.Error(c, http.StatusInternalServerError, MsgServerError)
}

func invalidPayload(c *gin.Context, logger *logrus.Logger, err error) {
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"request_id": middleware.RequestID(c),
			"route":      c.FullPath(),
			"details":    validation.Summary(err),
		}).Debug("invalid payload")
	}
	response.Error(c, http.StatusBadRequest, MsgInvalidPayload)
}
