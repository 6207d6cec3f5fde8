package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterPublicRoutes mounts the unauthenticated job listing endpoints.
func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/", h.Search)
	grp.Get("/:id", h.GetByID)
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/approve", h.Approve)
	grp.Post("/:id/repost", h.Repost)
}

func (h *JobHandler) Search(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 10)
	page := parseQueryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}

	result, err := h.uc.Search(c.Context(), repository.SearchFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	j, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return mapUsecaseError(usecase.ErrInvalidInput)
	}

	created, err := h.uc.Create(c.Context(), actor, usecase.CreateJobInput{
		CompanyID:    companyID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Type:         req.Type,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", created)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateJobRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), actor, id, usecase.UpdateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Type:         req.Type,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated", updated)
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), actor, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}

func (h *JobHandler) Approve(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	approved, err := h.uc.Approve(c.Context(), actor, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job approved", approved)
}

func (h *JobHandler) Repost(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	reposted, err := h.uc.Repost(c.Context(), actor, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job reposted", reposted)
}
