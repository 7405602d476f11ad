package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talentmatch/internal/delivery/http/dto"
	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/pkg/response"
	"talentmatch/internal/usecase"
)

const maxRecommendationLimit = 50

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.Jobs)
	r.Get("/skill-gaps", h.SkillGaps)
}

// RegisterJobRoutes mounts the candidates-for-job listing under the
// jobs resource.
func (h *RecommendationHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:job_id/candidates", h.CandidatesForJob)
}

func (h *RecommendationHandler) Jobs(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	recs, err := h.uc.RecommendJobs(c.Context(), userID, limitFromQuery(c))
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobRecommendationListResponse(recs))
}

func (h *RecommendationHandler) CandidatesForJob(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	recs, err := h.uc.RecommendCandidates(c.Context(), jobID, limitFromQuery(c))
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateRecommendationListResponse(recs))
}

func (h *RecommendationHandler) SkillGaps(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	gaps, err := h.uc.SkillGaps(c.Context(), userID)
	if err != nil {
		return mapRecommendationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillGapResponse(gaps))
}

// limitFromQuery clamps ?limit= to (0, maxRecommendationLimit]; zero
// lets the usecase apply its default.
func limitFromQuery(c fiber.Ctx) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	if n > maxRecommendationLimit {
		return maxRecommendationLimit
	}
	return n
}

func mapRecommendationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
