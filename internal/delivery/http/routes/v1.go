package routes

import "github.com/gofiber/fiber/v3"

// registerV1 wires the versioned API. Auth endpoints stay public, the
// skill resolve endpoint accepts anonymous calls for tooling, and
// everything else requires an access token.
func (r *Registry) registerV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}

	var protected fiber.Router = v1
	if r.AuthMw != nil {
		protected = v1.Group("", r.AuthMw.Middleware())
	}

	if r.Skill != nil {
		// Listing and resolving the vocabulary needs no account.
		r.Skill.RegisterRoutes(v1.Group("/skills"))
	}

	if r.Profile != nil {
		r.Profile.RegisterRoutes(protected.Group("/profiles"))
	}

	if r.Recommendation != nil {
		r.Recommendation.RegisterRoutes(protected.Group("/recommendations"))
		r.Recommendation.RegisterJobRoutes(protected.Group("/jobs"))
	}
}
