package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/writing-practice-api/internal/application"
	"github.com/oksasatya/writing-practice-api/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Register handles POST /api/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, h.Logger, err)
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username:    *req.Username,
		Password:    *req.Password,
		Name:        req.Name,
		Email:       req.Email,
		BirthDate:   req.BirthDate.Time(),
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
	})
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, MsgUsernameTaken)
			return
		}
		internalError(c, h.Logger, "register failed", err)
		return
	}
	response.Success(c, http.StatusCreated, u, MsgRegistered)
}

// Login handles POST /api/login. It only checks credentials and returns the user.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, h.Logger, err)
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), *req.Username, *req.Password)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, application.ErrWrongPassword):
		response.Error(c, http.StatusUnauthorized, MsgWrongPassword)
	case err != nil:
		internalError(c, h.Logger, "login failed", err)
	default:
		response.Success(c, http.StatusOK, u, MsgLoggedIn)
	}
}
