// Package app assembles the HTTP application: connections, repositories,
// usecases, handlers, and the fiber instance.
package app

import (
	"fmt"
	"log"
	"strings"

	"talentmatch/internal/config"
	"talentmatch/internal/delivery/http/handler"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/delivery/http/routes"
	"talentmatch/internal/pkg/jwt"
	"talentmatch/internal/repository"
	"talentmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	jwtSvc := jwt.NewHMACService(
		c.Config.JWT.AccessSecret,
		c.Config.JWT.RefreshSecret,
		c.Config.JWT.AccessExpiresIn,
		c.Config.JWT.RefreshExpiresIn,
	)

	users := repository.NewPostgresUserRepository(c.DB)
	profiles := repository.NewPostgresCandidateProfileRepository(c.DB)
	jobs := repository.NewPostgresJobRepository(c.DB)
	vocab := repository.NewPostgresCanonicalSkillRepository(c.DB)
	audits := repository.NewPostgresCorrectionLogRepository(c.DB)
	matches := repository.NewPostgresMatchResultRepository(c.DB)

	resolver := usecase.NewSkillResolver(vocab, audits, c.Logger)
	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profiles, resolver)
	recUC := usecase.NewRecommendationUsecase(profiles, jobs, matches, c.Cache, c.Logger)

	registry := &routes.Registry{
		Health:         handler.NewHealthHandler(c.DB, c.Cache),
		Auth:           handler.NewAuthHandler(authUC),
		Profile:        handler.NewProfileHandler(profileUC),
		Skill:          handler.NewSkillHandler(vocab, resolver),
		Recommendation: handler.NewRecommendationHandler(recUC),
		AuthMw:         middleware.NewAuthMiddleware(jwtSvc),
	}
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap loads connections and assembles the app; the returned
// cleanup closes them.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	a := New(c)
	return a, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
