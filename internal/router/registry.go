package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/writing-practice-api/pkg/response"
)

// NewEngine returns a bare engine whose unmatched paths answer with the JSON error envelope.
// Paths match exactly; a trailing slash is a different route, not a redirect.
func NewEngine() *gin.Engine {
	e := gin.New()
	e.RedirectTrailingSlash = false
	e.RedirectFixedPath = false
	e.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, response.MsgNotFound)
	})
	return e
}

// Registry collects feature modules and mounts them under /api.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use adds middleware that runs only for /api routes.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll applies the group middleware, then lets each module add its routes.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
