package handler

import (
	"careerhub/internal/delivery/http/dto"
	"careerhub/internal/pkg/response"
	"careerhub/internal/repository"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/companies/:id/reviews", h.ListByCompany)
}

func (h *ReviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/reviews")
	grp.Post("/", h.Create)
	grp.Get("/me", h.ListMine)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ReviewHandler) Create(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateReviewRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return mapUsecaseError(usecase.ErrInvalidInput)
	}

	created, err := h.uc.Create(c.Context(), userID, usecase.CreateReviewInput{
		CompanyID:       companyID,
		Rating:          req.Rating,
		Title:           req.Title,
		Comment:         req.Comment,
		Pros:            req.Pros,
		Cons:            req.Cons,
		WorkLifeBalance: req.WorkLifeBalance,
		SalaryBenefits:  req.SalaryBenefits,
		CareerGrowth:    req.CareerGrowth,
		Management:      req.Management,
		Culture:         req.Culture,
		IsAnonymous:     req.IsAnonymous,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Review created", sanitizeReview(created))
}

func (h *ReviewHandler) ListByCompany(c fiber.Ctx) error {
	companyID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.uc.ListByCompany(c.Context(), companyID, c.Query("sort"),
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}

	for i := range result.Reviews {
		result.Reviews[i] = sanitizeReview(result.Reviews[i])
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *ReviewHandler) ListMine(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	reviews, pagination, err := h.uc.ListMine(c.Context(), userID,
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"reviews":    reviews,
		"pagination": pagination,
	})
}

func (h *ReviewHandler) Update(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateReviewRequest
	if err := dto.BindBody(c, &req); err != nil {
		return err
	}

	rv, err := h.uc.Update(c.Context(), userID, id, repository.ReviewUpdate{
		Rating:          req.Rating,
		Title:           req.Title,
		Comment:         req.Comment,
		Pros:            req.Pros,
		Cons:            req.Cons,
		WorkLifeBalance: req.WorkLifeBalance,
		SalaryBenefits:  req.SalaryBenefits,
		CareerGrowth:    req.CareerGrowth,
		Management:      req.Management,
		Culture:         req.Culture,
		IsAnonymous:     req.IsAnonymous,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Review updated", rv)
}

func (h *ReviewHandler) Delete(c fiber.Ctx) error {
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
	return response.Success(c, fiber.StatusOK, "Review deleted", nil)
}

// sanitizeReview hides the author of anonymous reviews.
func sanitizeReview(rv repository.Review) repository.Review {
	if rv.IsAnonymous {
		rv.UserID = uuid.Nil
	}
	return rv
}
