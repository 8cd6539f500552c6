package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return c, rec
}

func TestSuccess_WithData(t *testing.T) {
	c, rec := newContext()

	Success(c, http.StatusCreated, map[string]string{"k": "v"}, "ok")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"k":"v"},"message":"ok"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestSuccess_EmptySliceIsKept(t *testing.T) {
	c, rec := newContext()

	Success(c, 0, []string{}, "ok")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"message":"ok"}`, rec.Body.String())
}

func TestMessage_OmitsData(t *testing.T) {
	c, rec := newContext()

	Message(c, http.StatusOK, "deleted")

	assert.JSONEq(t, `{"message":"deleted"}`, rec.Body.String())
}

func TestError(t *testing.T) {
	c, rec := newContext()

	Error(c, http.StatusNotFound, "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"missing"}`, rec.Body.String())
}

func TestAbort(t *testing.T) {
	c, rec := newContext()

	Abort(c, http.StatusInternalServerError, "boom")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}
