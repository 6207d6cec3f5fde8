package repository

import (
	"context"
	"errors"

	"careerhub/internal/database"
	"careerhub/internal/domain/user"

	"github.com/google/uuid"
)

var ErrAlertNotFound = errors.New("job alert not found")

type JobAlertUpsert struct {
	Keywords *string
	Location *string
	Type     *string
}

type JobAlertRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]user.JobAlert, error)
	// Upsert keeps a single alert per user, merging only the provided fields.
	Upsert(ctx context.Context, userID uuid.UUID, a JobAlertUpsert) (user.JobAlert, error)
	Delete(ctx context.Context, userID, alertID uuid.UUID) error
}

type PostgresJobAlertRepository struct {
	db database.DB
}

func NewPostgresJobAlertRepository(db database.DB) *PostgresJobAlertRepository {
	return &PostgresJobAlertRepository{db: db}
}

func (r *PostgresJobAlertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]user.JobAlert, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, COALESCE(keywords, ''), COALESCE(location, ''), COALESCE(type, ''), created_at, updated_at
		 FROM job_alerts WHERE user_id = $1
		 ORDER BY created_at ASC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.JobAlert, 0)
	for rows.Next() {
		var a user.JobAlert
		if err := rows.Scan(&a.ID, &a.UserID, &a.Keywords, &a.Location, &a.Type, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobAlertRepository) Upsert(ctx context.Context, userID uuid.UUID, a JobAlertUpsert) (user.JobAlert, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_alerts (id, user_id, keywords, location, type)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
			keywords = COALESCE($3, job_alerts.keywords),
			location = COALESCE($4, job_alerts.location),
			type = COALESCE($5, job_alerts.type),
			updated_at = now()
		 RETURNING id, user_id, COALESCE(keywords, ''), COALESCE(location, ''), COALESCE(type, ''), created_at, updated_at`,
		uuid.New(), userID, a.Keywords, a.Location, a.Type,
	)

	var alert user.JobAlert
	if err := row.Scan(&alert.ID, &alert.UserID, &alert.Keywords, &alert.Location, &alert.Type, &alert.CreatedAt, &alert.UpdatedAt); err != nil {
		return user.JobAlert{}, err
	}
	return alert, nil
}

func (r *PostgresJobAlertRepository) Delete(ctx context.Context, userID, alertID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM job_alerts WHERE id = $1 AND user_id = $2`, alertID, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlertNotFound
	}
	return nil
}
