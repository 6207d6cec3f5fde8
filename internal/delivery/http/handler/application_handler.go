package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/applications")
	grp.Post("/", h.Apply)
	grp.Get("/me", h.ListMine)
	grp.Get("/job/:jobId", h.ListApplicants)
	grp.Put("/:id/status", h.UpdateStatus)
	grp.Post("/:id/withdraw", h.Withdraw)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return mapUsecaseError(usecase.ErrInvalidInput)
	}

	var cvID *uuid.UUID
	if req.CVID != "" {
		id, err := uuid.Parse(req.CVID)
		if err != nil {
			return mapUsecaseError(usecase.ErrInvalidInput)
		}
		cvID = &id
	}

	created, err := h.uc.Apply(c.Context(), userID, usecase.ApplyInput{
		JobID:       jobID,
		CVID:        cvID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", created)
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	rows, pagination, err := h.uc.ListMine(c.Context(), userID,
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"applications": rows,
		"pagination":   pagination,
	})
}

func (h *ApplicationHandler) ListApplicants(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := paramUUID(c, "jobId")
	if err != nil {
		return err
	}

	rows, pagination, err := h.uc.ListApplicants(c.Context(), actor, jobID,
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"applicants": rows,
		"pagination": pagination,
	})
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationStatusRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateStatus(c.Context(), actor, id, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application status updated", updated)
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	updated, err := h.uc.Withdraw(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application withdrawn", updated)
}
