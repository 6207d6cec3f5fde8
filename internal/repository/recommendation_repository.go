package repository

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/database"
	"careerhub/internal/domain/job"

	"github.com/google/uuid"
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

type RecommendationUpsert struct {
	UserID uuid.UUID
	JobID  uuid.UUID
	Score  float64
	Reason string
}

type Recommendation struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	Score     float64   `json:"score"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavedRecommendationRow joins a persisted recommendation with live job and
// company data for the saved-list endpoint.
type SavedRecommendationRow struct {
	Recommendation
	Job job.Candidate `json:"job"`
}

type RecommendationRepository interface {
	// Upsert writes one (user, job) score, overwriting any previous row, and
	// returns the row's id. Rows are unique per (user_id, job_id).
	Upsert(ctx context.Context, m RecommendationUpsert) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]SavedRecommendationRow, int, error)
	UpdateFeedback(ctx context.Context, userID, jobID uuid.UUID, score float64, reason *string) (Recommendation, error)
	Delete(ctx context.Context, userID, jobID uuid.UUID) error
}

type PostgresRecommendationRepository struct {
	db database.DB
}

func NewPostgresRecommendationRepository(db database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

func (r *PostgresRecommendationRepository) Upsert(ctx context.Context, m RecommendationUpsert) (uuid.UUID, error) {
	var id uuid.UUID
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_recommendations (id, user_id, job_id, score, reason)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, job_id) DO UPDATE SET
			score = EXCLUDED.score,
			reason = EXCLUDED.reason,
			updated_at = now()
		 RETURNING id`,
		uuid.New(), m.UserID, m.JobID, m.Score, m.Reason,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresRecommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]SavedRecommendationRow, int, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_recommendations WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.user_id, r.job_id, r.score, COALESCE(r.reason, ''), r.created_at, r.updated_at,
		        j.id, j.company_id, j.title, j.description, COALESCE(j.requirements, ''),
		        COALESCE(j.location, ''), j.type, j.is_active, j.is_approved, j.created_at, j.updated_at,
		        c.id, c.name, COALESCE(c.logo_url, ''), c.is_verified,
		        (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id),
		        (SELECT COUNT(*) FROM job_views v WHERE v.job_id = j.id)
		 FROM job_recommendations r
		 JOIN jobs j ON j.id = r.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE r.user_id = $1
		 ORDER BY r.score DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]SavedRecommendationRow, 0)
	for rows.Next() {
		var row SavedRecommendationRow
		if err := rows.Scan(
			&row.ID, &row.UserID, &row.JobID, &row.Score, &row.Reason, &row.CreatedAt, &row.UpdatedAt,
			&row.Job.ID, &row.Job.CompanyID, &row.Job.Title, &row.Job.Description, &row.Job.Requirements,
			&row.Job.Location, &row.Job.Type, &row.Job.IsActive, &row.Job.IsApproved, &row.Job.CreatedAt, &row.Job.UpdatedAt,
			&row.Job.Company.ID, &row.Job.Company.Name, &row.Job.Company.LogoURL, &row.Job.Company.IsVerified,
			&row.Job.ApplicationCount, &row.Job.ViewCount,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRecommendationRepository) UpdateFeedback(ctx context.Context, userID, jobID uuid.UUID, score float64, reason *string) (Recommendation, error) {
	var rec Recommendation
	row := r.db.QueryRow(ctx,
		`UPDATE job_recommendations
		 SET score = $3, reason = COALESCE($4, reason), updated_at = now()
		 WHERE user_id = $1 AND job_id = $2
		 RETURNING id, user_id, job_id, score, COALESCE(reason, ''), created_at, updated_at`,
		userID, jobID, score, reason,
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.JobID, &rec.Score, &rec.Reason, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if isNoRows(err) {
			return Recommendation{}, ErrRecommendationNotFound
		}
		return Recommendation{}, err
	}
	return rec, nil
}

func (r *PostgresRecommendationRepository) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM job_recommendations WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecommendationNotFound
	}
	return nil
}
