package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc   usecase.RecommendationUsecase
	aiUC usecase.AIRecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase, aiUC usecase.AIRecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, aiUC: aiUC}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/recommendations")
	grp.Get("/generate", h.Generate)
	grp.Get("/saved", h.ListSaved)
	grp.Get("/ai/:userId", h.AIRecommend)
	grp.Put("/update", h.UpdateFeedback)
	grp.Delete("/:jobId", h.Delete)
}

func (h *RecommendationHandler) Generate(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	items, pagination, err := h.uc.Generate(c.Context(), userID, usecase.GenerateParams{
		Page:  parseQueryInt(c, "page", 1),
		Limit: parseQueryInt(c, "limit", 10),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"recommendations": items,
		"pagination":      pagination,
	})
}

func (h *RecommendationHandler) ListSaved(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	rows, pagination, err := h.uc.ListSaved(c.Context(), userID,
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"recommendations": rows,
		"pagination":      pagination,
	})
}

func (h *RecommendationHandler) AIRecommend(c fiber.Ctx) error {
	authedID, err := requireUserID(c)
	if err != nil {
		return err
	}
	targetID, err := paramUUID(c, "userId")
	if err != nil {
		return err
	}
	// Users only fetch AI matches for themselves; admins for anyone.
	if targetID != authedID && actorRoleIsNotAdmin(c) {
		return mapUsecaseError(usecase.ErrForbidden)
	}

	res, err := h.aiUC.Recommend(c.Context(), targetID, parseQueryInt(c, "k", 10))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *RecommendationHandler) UpdateFeedback(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateRecommendationRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return mapUsecaseError(usecase.ErrInvalidInput)
	}

	rec, err := h.uc.UpdateFeedback(c.Context(), userID, usecase.FeedbackInput{
		JobID:  jobID,
		Score:  req.Score,
		Reason: req.Reason,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Recommendation updated", rec)
}

func (h *RecommendationHandler) Delete(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	jobID, err := paramUUID(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, jobID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Recommendation deleted", nil)
}
