package handler

import (
	"careerhub/internal/pkg/response"
	"careerhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/notifications")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Put("/:id/read", h.MarkRead)
	grp.Put("/read-all", h.MarkAllRead)
	grp.Delete("/:id", h.Delete)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	unreadOnly := c.Query("unread") == "true"
	rows, pagination, err := h.uc.List(c.Context(), userID, unreadOnly,
		parseQueryInt(c, "page", 1), parseQueryInt(c, "limit", 10))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"notifications": rows,
		"pagination":    pagination,
	})
}

func (h *NotificationHandler) Get(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	n, err := h.uc.Get(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, n)
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), userID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	n, err := h.uc.MarkAllRead(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "All notifications marked as read", map[string]any{"updated": n})
}

func (h *NotificationHandler) Delete(c fiber.Ctx) error {
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
	return response.Success(c, fiber.StatusOK, "Notification deleted", nil)
}
