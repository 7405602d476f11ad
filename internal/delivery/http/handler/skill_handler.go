package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talentmatch/internal/delivery/http/dto"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/pkg/response"
	"talentmatch/internal/repository"
	"talentmatch/internal/usecase"
)

type SkillHandler struct {
	vocab    repository.CanonicalSkillRepository
	resolver usecase.SkillResolverUsecase
}

type resolveSkillRequest struct {
	Term string `json:"term"`
}

func NewSkillHandler(vocab repository.CanonicalSkillRepository, resolver usecase.SkillResolverUsecase) *SkillHandler {
	return &SkillHandler{vocab: vocab, resolver: resolver}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/resolve", h.Resolve)
	r.Get("/corrections/stats", h.CorrectionStats)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	skills, err := h.vocab.ListActive(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCanonicalSkillListResponse(skills))
}

// Resolve runs a single term through the resolver and returns the full
// resolution, including whether a correction happened and its score.
func (h *SkillHandler) Resolve(c fiber.Ctx) error {
	var req resolveSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID, _ := middleware.UserIDFromCtx(c)
	res := h.resolver.Resolve(c.Context(), req.Term, uuid.NullUUID{UUID: userID, Valid: userID != uuid.Nil})

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResolutionResponse(req.Term, res))
}

func (h *SkillHandler) CorrectionStats(c fiber.Ctx) error {
	report, err := h.resolver.CorrectionReport(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCorrectionReportResponse(report))
}
