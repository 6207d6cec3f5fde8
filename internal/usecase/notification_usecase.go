package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerhub/internal/repository"
)

// Pusher delivers a created notification to the user's live websocket
// connections. Delivery is fire-and-forget.
type Pusher interface {
	NotifyUser(userID uuid.UUID, notificationID uuid.UUID, kind, title, message string)
}

// Notifier is the narrow surface other usecases use to emit notifications.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, ntype, title, message string, relatedID *uuid.UUID, relatedType string)
}

type NotificationUsecase interface {
	Notifier
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]repository.Notification, Pagination, error)
	Get(ctx context.Context, userID, id uuid.UUID) (repository.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type NotificationService struct {
	notifications repository.NotificationRepository
	pusher        Pusher
}

func NewNotificationUsecase(notifications repository.NotificationRepository, pusher Pusher) *NotificationService {
	return &NotificationService{notifications: notifications, pusher: pusher}
}

// Notify persists a notification and pushes it to open sockets. Failures are
// swallowed: a notification must never fail the operation that caused it.
func (u *NotificationService) Notify(ctx context.Context, userID uuid.UUID, ntype, title, message string, relatedID *uuid.UUID, relatedType string) {
	if userID == uuid.Nil {
		return
	}
	created, err := u.notifications.Create(ctx, repository.Notification{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Message:     message,
		Type:        ntype,
		RelatedID:   relatedID,
		RelatedType: relatedType,
	})
	if err != nil {
		return
	}
	if u.pusher != nil {
		u.pusher.NotifyUser(userID, created.ID, created.Type, created.Title, created.Message)
	}
}

func (u *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, limit int) ([]repository.Notification, Pagination, error) {
	if userID == uuid.Nil {
		return nil, Pagination{}, ErrUnauthorized
	}
	page, limit = normalizePaging(page, limit)

	rows, total, err := u.notifications.ListByUser(ctx, userID, unreadOnly, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	return rows, paginate(page, limit, total), nil
}

func (u *NotificationService) Get(ctx context.Context, userID, id uuid.UUID) (repository.Notification, error) {
	if userID == uuid.Nil {
		return repository.Notification{}, ErrUnauthorized
	}
	n, err := u.notifications.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return repository.Notification{}, ErrNotificationNotFound
		}
		return repository.Notification{}, ErrInternal
	}
	return n, nil
}

func (u *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.notifications.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, ErrUnauthorized
	}
	n, err := u.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}

func (u *NotificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.notifications.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}
