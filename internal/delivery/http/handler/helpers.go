package handler

import (
	"errors"
	"strconv"

	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/domain/user"
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func paramUUID(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, key+" must be a valid uuid", nil, err)
	}
	return id, nil
}

func requireUserID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func actorFromCtx(c fiber.Ctx) (usecase.Actor, error) {
	id, err := requireUserID(c)
	if err != nil {
		return usecase.Actor{}, err
	}
	return usecase.Actor{UserID: id, Role: middleware.RoleFromCtx(c)}, nil
}

func actorRoleIsNotAdmin(c fiber.Ctx) bool {
	return middleware.RoleFromCtx(c) != user.RoleAdmin
}

// mapUsecaseError converts the usecase sentinels into HTTP-status AppErrors.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status transition", nil, err)

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrProfileNotFound),
		errors.Is(err, usecase.ErrJobNotFound),
		errors.Is(err, usecase.ErrCompanyNotFound),
		errors.Is(err, usecase.ErrApplicationNotFound),
		errors.Is(err, usecase.ErrCVNotFound),
		errors.Is(err, usecase.ErrReviewNotFound),
		errors.Is(err, usecase.ErrNotificationNotFound),
		errors.Is(err, usecase.ErrAlertNotFound),
		errors.Is(err, usecase.ErrSavedJobNotFound),
		errors.Is(err, usecase.ErrMemberNotFound),
		errors.Is(err, usecase.ErrRecommendationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)

	case errors.Is(err, usecase.ErrAlreadyApplied),
		errors.Is(err, usecase.ErrAlreadyReviewed),
		errors.Is(err, usecase.ErrAlreadyMember):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)

	case errors.Is(err, usecase.ErrJobClosed):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrCVLimitReached):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)

	case errors.Is(err, usecase.ErrAIServiceUnavailable):
		return middleware.NewAppError(fiber.StatusBadGateway, "AI service unavailable", nil, err)

	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
