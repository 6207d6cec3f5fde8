package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc        usecase.UserUsecase
	profileUC usecase.ProfileUsecase
}

func NewUserHandler(uc usecase.UserUsecase, profileUC usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc, profileUC: profileUC}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateMe)
	r.Get("/me/profile", h.GetProfile)
	r.Put("/me/profile", h.UpdateProfile)

	users := r.Group("/users")
	users.Get("/", h.List)
	users.Get("/:id", h.GetByID)
	users.Put("/:id", h.UpdateByID)
	users.Delete("/:id", h.Delete)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	usr, err := h.uc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, usr)
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	return h.update(c, actor, actor.UserID)
}

func (h *UserHandler) UpdateByID(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	return h.update(c, actor, id)
}

func (h *UserHandler) update(c fiber.Ctx, actor usecase.Actor, id uuid.UUID) error {
	var req dto.UpdateUserRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	usr, err := h.uc.Update(c.Context(), actor, id, usecase.UpdateUserInput{
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "User updated", usr)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	profile, err := h.profileUC.Get(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile)
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.Upsert(c.Context(), userID, repository.ProfileUpsert{
		Headline:   req.Headline,
		Location:   req.Location,
		Experience: req.Experience,
		Education:  req.Education,
		Skills:     req.Skills,
		AvatarURL:  req.AvatarURL,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", profile)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	users, pagination, err := h.uc.List(c.Context(), actor,
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"users":      users,
		"pagination": pagination,
	})
}

func (h *UserHandler) GetByID(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	usr, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, usr)
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
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
	return response.Success(c, fiber.StatusOK, "User deleted", nil)
}
