package repository

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/database"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
)

const (
	ApplicationStatusPending   = "PENDING"
	ApplicationStatusReviewing = "REVIEWING"
	ApplicationStatusInterview = "INTERVIEW"
	ApplicationStatusOffer     = "OFFER"
	ApplicationStatusRejected  = "REJECTED"
	ApplicationStatusWithdrawn = "WITHDRAWN"
)

type Application struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	JobID       uuid.UUID  `json:"job_id"`
	CVID        *uuid.UUID `json:"cv_id,omitempty"`
	CoverLetter string     `json:"cover_letter,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ApplicationWithJob decorates an application with the posting's headline
// fields for candidate-facing listings.
type ApplicationWithJob struct {
	Application
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
}

// ApplicantRow is the recruiter-facing view of one application.
type ApplicantRow struct {
	Application
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
	CVTitle        string `json:"cv_title,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ApplicationWithJob, int, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]ApplicantRow, int, error)
	// ListAppliedJobIDs returns every job the user has applied to, in any
	// status. These are hard-excluded from recommendation candidates.
	ListAppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a Application) (Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, user_id, job_id, cv_id, cover_letter, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, job_id, cv_id, COALESCE(cover_letter, ''), status, created_at, updated_at`,
		uuid.New(), a.UserID, a.JobID, a.CVID, a.CoverLetter, a.Status,
	)
	created, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Application{}, ErrAlreadyApplied
		}
		return Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, job_id, cv_id, COALESCE(cover_letter, ''), status, created_at, updated_at
		 FROM applications WHERE id = $1`, id,
	)
	a, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ApplicationWithJob, int, error) {
	limit, offset = normalizePage(limit, offset)

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, a.cv_id, COALESCE(a.cover_letter, ''), a.status, a.created_at, a.updated_at,
		        j.title, c.name
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE a.user_id = $1
		 ORDER BY a.created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]ApplicationWithJob, 0)
	for rows.Next() {
		var item ApplicationWithJob
		if err := rows.Scan(&item.ID, &item.UserID, &item.JobID, &item.CVID, &item.CoverLetter,
			&item.Status, &item.CreatedAt, &item.UpdatedAt, &item.JobTitle, &item.CompanyName); err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]ApplicantRow, int, error) {
	limit, offset = normalizePage(limit, offset)

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, a.cv_id, COALESCE(a.cover_letter, ''), a.status, a.created_at, a.updated_at,
		        u.full_name, u.email, COALESCE(cv.title, '')
		 FROM applications a
		 JOIN users u ON u.id = a.user_id
		 LEFT JOIN cvs cv ON cv.id = a.cv_id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at DESC
		 LIMIT $2 OFFSET $3`,
		jobID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]ApplicantRow, 0)
	for rows.Next() {
		var item ApplicantRow
		if err := rows.Scan(&item.ID, &item.UserID, &item.JobID, &item.CVID, &item.CoverLetter,
			&item.Status, &item.CreatedAt, &item.UpdatedAt,
			&item.ApplicantName, &item.ApplicantEmail, &item.CVTitle); err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresApplicationRepository) ListAppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id FROM applications WHERE user_id = $1`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING id, user_id, job_id, cv_id, COALESCE(cover_letter, ''), status, created_at, updated_at`,
		id, status,
	)
	a, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return Application{}, ErrApplicationNotFound
		}
		return Application{}, err
	}
	return a, nil
}

func scanApplication(row scanner) (Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.CVID, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
