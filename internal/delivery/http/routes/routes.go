// Package routes mounts the HTTP surface onto the fiber app.
package routes

import (
	"talentmatch/internal/delivery/http/handler"
	"talentmatch/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health         *handler.HealthHandler
	Auth           *handler.AuthHandler
	Profile        *handler.ProfileHandler
	Skill          *handler.SkillHandler
	Recommendation *handler.RecommendationHandler

	AuthMw *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}
