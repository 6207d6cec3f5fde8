package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CVHandler struct {
	uc usecase.CVUsecase
}

func NewCVHandler(uc usecase.CVUsecase) *CVHandler {
	return &CVHandler{uc: uc}
}

func (h *CVHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/cvs")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Post("/:id/main", h.SetMain)
	grp.Delete("/:id", h.Delete)
}

func (h *CVHandler) Create(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateCVRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), userID, usecase.CreateCVInput{
		Title:    req.Title,
		FileName: req.FileName,
		FileURL:  req.FileURL,
		FileSize: req.FileSize,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "CV created", created)
}

func (h *CVHandler) List(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	cvs, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cvs)
}

func (h *CVHandler) Get(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	cv, err := h.uc.Get(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, cv)
}

func (h *CVHandler) Update(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCVRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	cv, err := h.uc.Update(c.Context(), userID, id, repository.CVUpdate{
		Title:    req.Title,
		FileName: req.FileName,
		FileURL:  req.FileURL,
		FileSize: req.FileSize,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "CV updated", cv)
}

func (h *CVHandler) SetMain(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	cv, err := h.uc.SetMain(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Main CV updated", cv)
}

func (h *CVHandler) Delete(c fiber.Ctx) error {
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
	return response.Success(c, fiber.StatusOK, "CV deleted", nil)
}
