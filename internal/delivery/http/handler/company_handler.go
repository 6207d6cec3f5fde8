package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc    usecase.CompanyUsecase
	jobUC usecase.JobUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase, jobUC usecase.JobUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc, jobUC: jobUC}
}

func (h *CompanyHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/companies")
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
	grp.Get("/:id/jobs", h.ListJobs)
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/companies")
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/verify", h.Verify)

	grp.Get("/:id/members", h.ListMembers)
	grp.Post("/:id/members", h.InviteMember)
	grp.Put("/:id/members/:memberId", h.UpdateMemberRole)
	grp.Delete("/:id/members/:memberId", h.RemoveMember)
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateCompanyRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), actor, usecase.CreateCompanyInput{
		Name:        req.Name,
		Website:     req.Website,
		Description: req.Description,
		Industry:    req.Industry,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Company created", created)
}

func (h *CompanyHandler) GetByID(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	company, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, company)
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	companies, pagination, err := h.uc.List(c.Context(),
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"companies":  companies,
		"pagination": pagination,
	})
}

func (h *CompanyHandler) ListJobs(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	jobs, pagination, err := h.jobUC.ListByCompany(c.Context(), id,
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"jobs":       jobs,
		"pagination": pagination,
	})
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCompanyRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	company, err := h.uc.Update(c.Context(), actor, id, repository.CompanyUpdate{
		Name:        req.Name,
		Website:     req.Website,
		Description: req.Description,
		Industry:    req.Industry,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Company updated", company)
}

func (h *CompanyHandler) Delete(c fiber.Ctx) error {
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
	return response.Success(c, fiber.StatusOK, "Company deleted", nil)
}

func (h *CompanyHandler) Verify(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	company, err := h.uc.Verify(c.Context(), actor, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Company verified", company)
}

func (h *CompanyHandler) ListMembers(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	members, err := h.uc.ListMembers(c.Context(), actor, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, members)
}

func (h *CompanyHandler) InviteMember(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.InviteMemberRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	member, err := h.uc.InviteMember(c.Context(), actor, id, usecase.InviteMemberInput{
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Member added", member)
}

func (h *CompanyHandler) UpdateMemberRole(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	memberID, err := paramUUID(c, "memberId")
	if err != nil {
		return err
	}

	var req dto.UpdateMemberRoleRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	member, err := h.uc.UpdateMemberRole(c.Context(), actor, id, memberID, req.Role)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member role updated", member)
}

func (h *CompanyHandler) RemoveMember(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	memberID, err := paramUUID(c, "memberId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveMember(c.Context(), actor, id, memberID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member removed", nil)
}
