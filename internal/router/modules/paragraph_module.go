package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/writing-practice-api/internal/interface/http"
)

// ParagraphModule wires the paragraph routes. None of them require a login.
type ParagraphModule struct {
	Handler *handlers.ParagraphHandler
}

func NewParagraphModule(h *handlers.ParagraphHandler) *ParagraphModule {
	return &ParagraphModule{Handler: h}
}

func (m *ParagraphModule) Register(rg *gin.RouterGroup) {
	rg.POST("/submit-paragraph", m.Handler.Submit)
	rg.GET("/paragraphs/:userId", m.Handler.ListByUser)
	rg.DELETE("/paragraph/:id", m.Handler.Delete)
}
