package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/writing-practice-api/internal/application"
	"github.com/oksasatya/writing-practice-api/pkg/response"
)

type ParagraphHandler struct {
	Svc    *application.ParagraphService
	Logger *logrus.Logger
}

func NewParagraphHandler(svc *application.ParagraphService, logger *logrus.Logger) *ParagraphHandler {
	return &ParagraphHandler{Svc: svc, Logger: logger}
}

// Submit handles POST /api/submit-paragraph. An empty body stores an empty paragraph.
func (h *ParagraphHandler) Submit(c *gin.Context) {
	var req submitParagraphRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		invalidPayload(c, h.Logger, err)
		return
	}

	p, err := h.Svc.Submit(c.Request.Context(), application.SubmitInput{
		Content:  string(req.Content),
		Point:    req.Point.Ptr(),
		Mistakes: req.Mistakes,
		Suggest:  string(req.Suggest),
		UserID:   string(req.UserID),
	})
	if err != nil {
		internalError(c, h.Logger, "submit paragraph failed", err)
		return
	}
	response.Success(c, http.StatusCreated, p, MsgSubmitted)
}

// ListByUser handles GET /api/paragraphs/:userId.
func (h *ParagraphHandler) ListByUser(c *gin.Context) {
	list, err := h.Svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		internalError(c, h.Logger, "list paragraphs failed", err)
		return
	}
	response.Success(c, http.StatusOK, list, MsgListed)
}

// Delete handles DELETE /api/paragraph/:id. Unknown ids still succeed.
func (h *ParagraphHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		internalError(c, h.Logger, "delete paragraph failed", err)
		return
	}
	response.Message(c, http.StatusOK, MsgDeleted)
}
