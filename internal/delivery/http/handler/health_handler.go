package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"talentmatch/internal/database"
	"talentmatch/internal/pkg/response"
)

type cachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache cachePinger
}

func NewHealthHandler(db database.DB, cache cachePinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports database and cache reachability. A down cache does not
// fail the check since the service runs without it.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "down"
	}

	cacheStatus := "ok"
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		cacheStatus = "bypassed"
	}

	data := map[string]string{
		"database": dbStatus,
		"cache":    cacheStatus,
	}

	if dbStatus != "ok" {
		return response.Error(c, fiber.StatusServiceUnavailable, "database unreachable", data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
