package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessBody is the envelope for successful responses. Data is omitted when nil.
type SuccessBody struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// ErrorBody is the envelope for failed responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes {data, message} with the given status.
func Success(ctx *gin.Context, status int, data any, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, SuccessBody{Data: data, Message: message})
}

// Message writes a success envelope without data.
func Message(ctx *gin.Context, status int, message string) {
	Success(ctx, status, nil, message)
}

// Error writes {error} with the given status.
func Error(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, ErrorBody{Error: message})
}

// Abort writes {error} and stops the handler chain.
func Abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

const (
	// MsgServerError is the only message clients see for unexpected failures.
	MsgServerError = "Server gặp lỗi"
	MsgNotFound    = "Không tìm thấy"
)
