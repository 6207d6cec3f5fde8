package repository

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/database"
	"careerhub/internal/domain/job"

	"github.com/google/uuid"
)

var ErrSavedJobNotFound = errors.New("saved job not found")

type SavedJob struct {
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SavedJobWithJob struct {
	SavedJob
	Job job.Candidate `json:"job"`
}

type SavedJobRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]SavedJobWithJob, int, error)
	// Save is an idempotent upsert on (user_id, job_id).
	Save(ctx context.Context, userID, jobID uuid.UUID) (SavedJob, error)
	Delete(ctx context.Context, userID, jobID uuid.UUID) error
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]SavedJobWithJob, int, error) {
	limit, offset = normalizePage(limit, offset)

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM saved_jobs WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT s.user_id, s.job_id, s.created_at, `+candidateColumns+`
		 FROM saved_jobs s
		 JOIN jobs j ON j.id = s.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE s.user_id = $1
		 ORDER BY s.created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]SavedJobWithJob, 0)
	for rows.Next() {
		var item SavedJobWithJob
		if err := rows.Scan(&item.UserID, &item.JobID, &item.CreatedAt,
			&item.Job.ID, &item.Job.CompanyID, &item.Job.Title, &item.Job.Description, &item.Job.Requirements,
			&item.Job.Location, &item.Job.Type, &item.Job.IsActive, &item.Job.IsApproved, &item.Job.CreatedAt, &item.Job.UpdatedAt,
			&item.Job.Company.ID, &item.Job.Company.Name, &item.Job.Company.LogoURL, &item.Job.Company.IsVerified,
			&item.Job.ApplicationCount, &item.Job.ViewCount,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresSavedJobRepository) Save(ctx context.Context, userID, jobID uuid.UUID) (SavedJob, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO saved_jobs (user_id, job_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, job_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING user_id, job_id, created_at`,
		userID, jobID,
	)

	var s SavedJob
	if err := row.Scan(&s.UserID, &s.JobID, &s.CreatedAt); err != nil {
		return SavedJob{}, err
	}
	return s, nil
}

func (r *PostgresSavedJobRepository) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}
