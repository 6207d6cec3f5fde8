package repository

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/database"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

const (
	NotificationTypeInfo        = "INFO"
	NotificationTypeSuccess     = "SUCCESS"
	NotificationTypeWarning     = "WARNING"
	NotificationTypeError       = "ERROR"
	NotificationTypeApplication = "APPLICATION"
	NotificationTypeJob         = "JOB"
	NotificationTypeCompany     = "COMPANY"
)

type Notification struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Type        string     `json:"type"`
	RelatedID   *uuid.UUID `json:"related_id,omitempty"`
	RelatedType string     `json:"related_type,omitempty"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]Notification, int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

const notificationColumns = `id, user_id, title, message, type, related_id, COALESCE(related_type, ''), is_read, read_at, created_at`

func (r *PostgresNotificationRepository) Create(ctx context.Context, n Notification) (Notification, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO notifications (id, user_id, title, message, type, related_id, related_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+notificationColumns,
		uuid.New(), n.UserID, n.Title, n.Message, n.Type, n.RelatedID, n.RelatedType,
	)
	return scanNotification(row)
}

func (r *PostgresNotificationRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (Notification, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1 AND user_id = $2`, id, userID,
	)
	n, err := scanNotification(row)
	if err != nil {
		if isNoRows(err) {
			return Notification{}, ErrNotificationNotFound
		}
		return Notification{}, err
	}
	return n, nil
}

func (r *PostgresNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]Notification, int, error) {
	limit, offset = normalizePage(limit, offset)

	cond := `user_id = $1`
	if unreadOnly {
		cond += ` AND NOT is_read`
	}

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE `+cond, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE `+cond+`
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = now()
		 WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = now()
		 WHERE user_id = $1 AND NOT is_read`, userID,
	)
}

func (r *PostgresNotificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func scanNotification(row scanner) (Notification, error) {
	var n Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.RelatedID, &n.RelatedType,
		&n.IsRead, &n.ReadAt, &n.CreatedAt)
	return n, err
}
