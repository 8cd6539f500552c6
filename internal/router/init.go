package router

import (
	"github.com/oksasatya/writing-practice-api/internal/application"
	"github.com/oksasatya/writing-practice-api/internal/container"
	pginfra "github.com/oksasatya/writing-practice-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/writing-practice-api/internal/interface/http"
	"github.com/oksasatya/writing-practice-api/internal/router/modules"
)

type UserModuleDeps struct {
	Service *application.UserService
	Handler *handlers.UserHandler
}

type ParagraphModuleDeps struct {
	Service *application.ParagraphService
	Handler *handlers.ParagraphHandler
}

func buildUserDeps() UserModuleDeps {
	repo := pginfra.NewUserRepository(container.GetDB())
	service := application.NewUserService(repo, container.GetHasher(), container.GetLogger())
	return UserModuleDeps{
		Service: service,
		Handler: handlers.NewUserHandler(service, container.GetLogger()),
	}
}

func buildParagraphDeps() ParagraphModuleDeps {
	repo := pginfra.NewParagraphRepository(container.GetDB())
	service := application.NewParagraphService(repo)
	return ParagraphModuleDeps{
		Service: service,
		Handler: handlers.NewParagraphHandler(service, container.GetLogger()),
	}
}

// InitModules builds every feature module from the container and adds it to the registry.
// Call once during startup, after the container is populated.
func InitModules(r *Registry) {
	r.Add(modules.NewUserModule(buildUserDeps().Handler))
	r.Add(modules.NewParagraphModule(buildParagraphDeps().Handler))
}
