package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobAlertHandler struct {
	uc      usecase.JobAlertUsecase
	savedUC usecase.SavedJobUsecase
}

func NewJobAlertHandler(uc usecase.JobAlertUsecase, savedUC usecase.SavedJobUsecase) *JobAlertHandler {
	return &JobAlertHandler{uc: uc, savedUC: savedUC}
}

func (h *JobAlertHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	alerts := r.Group("/job-alerts")
	alerts.Get("/", h.List)
	alerts.Put("/", h.Upsert)
	alerts.Delete("/:id", h.Delete)

	saved := r.Group("/saved-jobs")
	saved.Get("/", h.ListSaved)
	saved.Post("/", h.SaveJob)
	saved.Delete("/:jobId", h.DeleteSaved)
}

func (h *JobAlertHandler) List(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	alerts, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, alerts)
}

func (h *JobAlertHandler) Upsert(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpsertJobAlertRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	alert, err := h.uc.Upsert(c.Context(), userID, repository.JobAlertUpsert{
		Keywords: req.Keywords,
		Location: req.Location,
		Type:     req.Type,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job alert saved", alert)
}

func (h *JobAlertHandler) Delete(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job alert deleted", nil)
}

func (h *JobAlertHandler) ListSaved(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	rows, pagination, err := h.savedUC.List(c.Context(), userID,
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"saved_jobs": rows,
		"pagination": pagination,
	})
}

func (h *JobAlertHandler) SaveJob(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.SaveJobRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return mapUsecaseError(usecase.ErrInvalidInput)
	}

	saved, err := h.savedUC.Save(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job saved", saved)
}

func (h *JobAlertHandler) DeleteSaved(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	jobID, err := paramUUID(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.savedUC.Delete(c.Context(), userID, jobID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Saved job removed", nil)
}
