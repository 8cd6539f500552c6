package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/writing-practice-api/internal/interface/http"
)

// UserModule wires account routes.
// Public: POST /api/register, POST /api/login
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
}
