package repository

import (
	"context"
	"fmt"
	"strings"

	"careerhub/internal/database"
	"careerhub/internal/domain/job"
	"careerhub/internal/domain/user"

	"github.com/google/uuid"
)

// CandidateFilter selects the pool of jobs eligible for recommendation
// scoring: open jobs the user has not applied to, optionally narrowed to the
// OR-combination of the user's saved alerts.
type CandidateFilter struct {
	ExcludeIDs []uuid.UUID
	Alerts     []user.JobAlert
}

type SearchFilter struct {
	Keyword  string
	Location string
	Type     string
	Limit    int
	Offset   int
}

type JobUpdate struct {
	Title        *string
	Description  *string
	Requirements *string
	Location     *string
	Type         *string
	IsActive     *bool
	IsApproved   *bool
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, upd JobUpdate) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, f SearchFilter) ([]job.Candidate, int, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]job.Job, int, error)
	// ListCandidates returns open (active and approved) jobs matching the
	// filter, newest first.
	ListCandidates(ctx context.Context, f CandidateFilter) ([]job.Candidate, error)
	ListOpenByIDs(ctx context.Context, ids []uuid.UUID) ([]job.Candidate, error)
	RecordView(ctx context.Context, jobID uuid.UUID) error
	Repost(ctx context.Context, id uuid.UUID) (job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const candidateColumns = `j.id, j.company_id, j.title, j.description, COALESCE(j.requirements, ''),
	COALESCE(j.location, ''), j.type, j.is_active, j.is_approved, j.created_at, j.updated_at,
	c.id, c.name, COALESCE(c.logo_url, ''), c.is_verified,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id),
	(SELECT COUNT(*) FROM job_views v WHERE v.job_id = j.id)`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, company_id, title, description, requirements, location, type, is_active, is_approved)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING id, company_id, title, description, COALESCE(requirements, ''), COALESCE(location, ''),
		           type, is_active, is_approved, created_at, updated_at`,
		uuid.New(), j.CompanyID, j.Title, j.Description, j.Requirements, j.Location, j.Type, j.IsActive, j.IsApproved,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Candidate, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+candidateColumns+`
		 FROM jobs j JOIN companies c ON c.id = j.company_id
		 WHERE j.id = $1`, id,
	)
	cand, err := scanCandidate(row)
	if err != nil {
		if isNoRows(err) {
			return job.Candidate{}, job.ErrNotFound
		}
		return job.Candidate{}, err
	}
	return cand, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, id uuid.UUID, upd JobUpdate) (job.Job, error) {
	sets := make([]string, 0, 6)
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Requirements != nil {
		add("requirements", *upd.Requirements)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}
	if upd.IsApproved != nil {
		add("is_approved", *upd.IsApproved)
	}
	sets = append(sets, "updated_at = now()")

	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET `+strings.Join(sets, ", ")+`
		 WHERE id = $1
		 RETURNING id, company_id, title, description, COALESCE(requirements, ''), COALESCE(location, ''),
		           type, is_active, is_approved, created_at, updated_at`,
		args...,
	)
	j, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Search(ctx context.Context, f SearchFilter) ([]job.Candidate, int, error) {
	limit, offset := normalizePage(f.Limit, f.Offset)

	where := []string{"j.is_active", "j.is_approved"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Keyword != "" {
		p := arg("%" + f.Keyword + "%")
		where = append(where, fmt.Sprintf("(j.title ILIKE %s OR j.description ILIKE %s)", p, p))
	}
	if f.Location != "" {
		where = append(where, fmt.Sprintf("j.location ILIKE %s", arg("%"+f.Location+"%")))
	}
	if f.Type != "" {
		where = append(where, fmt.Sprintf("j.type = %s", arg(f.Type)))
	}

	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs j WHERE `+cond, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + candidateColumns + `
		 FROM jobs j JOIN companies c ON c.id = j.company_id
		 WHERE ` + cond + `
		 ORDER BY j.created_at DESC
		 LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectCandidates(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]job.Job, int, error) {
	limit, offset = normalizePage(limit, offset)

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE company_id = $1`, companyID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, company_id, title, description, COALESCE(requirements, ''), COALESCE(location, ''),
		        type, is_active, is_approved, created_at, updated_at
		 FROM jobs
		 WHERE company_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) ListCandidates(ctx context.Context, f CandidateFilter) ([]job.Candidate, error) {
	where := []string{"j.is_active", "j.is_approved"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.ExcludeIDs) > 0 {
		where = append(where, fmt.Sprintf("j.id != ALL(%s)", arg(f.ExcludeIDs)))
	}

	// Each alert ANDs its present conditions; alerts combine with OR. A user
	// without alerts gets the whole open pool.
	if len(f.Alerts) > 0 {
		alertConds := make([]string, 0, len(f.Alerts))
		for _, a := range f.Alerts {
			conds := make([]string, 0, 3)
			if a.Keywords != "" {
				p := arg("%" + a.Keywords + "%")
				conds = append(conds, fmt.Sprintf("(j.title ILIKE %s OR j.description ILIKE %s)", p, p))
			}
			if a.Location != "" {
				conds = append(conds, fmt.Sprintf("j.location ILIKE %s", arg("%"+a.Location+"%")))
			}
			if a.Type != "" {
				conds = append(conds, fmt.Sprintf("j.type = %s", arg(a.Type)))
			}
			if len(conds) == 0 {
				// Unconstrained alert matches every open job.
				conds = append(conds, "TRUE")
			}
			alertConds = append(alertConds, "("+strings.Join(conds, " AND ")+")")
		}
		where = append(where, "("+strings.Join(alertConds, " OR ")+")")
	}

	query := `SELECT ` + candidateColumns + `
		 FROM jobs j JOIN companies c ON c.id = j.company_id
		 WHERE ` + strings.Join(where, " AND ") + `
		 ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCandidates(rows)
}

func (r *PostgresJobRepository) ListOpenByIDs(ctx context.Context, ids []uuid.UUID) ([]job.Candidate, error) {
	if len(ids) == 0 {
		return []job.Candidate{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+`
		 FROM jobs j JOIN companies c ON c.id = j.company_id
		 WHERE j.id = ANY($1) AND j.is_active AND j.is_approved`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCandidates(rows)
}

func (r *PostgresJobRepository) RecordView(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_views (id, job_id) VALUES ($1, $2)`,
		uuid.New(), jobID,
	)
	return err
}

func (r *PostgresJobRepository) Repost(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET is_active = TRUE, created_at = now(), updated_at = now()
		 WHERE id = $1
		 RETURNING id, company_id, title, description, COALESCE(requirements, ''), COALESCE(location, ''),
		           type, is_active, is_approved, created_at, updated_at`,
		id,
	)
	j, err := scanJob(row)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Requirements, &j.Location,
		&j.Type, &j.IsActive, &j.IsApproved, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}

func scanCandidate(row scanner) (job.Candidate, error) {
	var c job.Candidate
	err := row.Scan(&c.ID, &c.CompanyID, &c.Title, &c.Description, &c.Requirements, &c.Location,
		&c.Type, &c.IsActive, &c.IsApproved, &c.CreatedAt, &c.UpdatedAt,
		&c.Company.ID, &c.Company.Name, &c.Company.LogoURL, &c.Company.IsVerified,
		&c.ApplicationCount, &c.ViewCount)
	return c, err
}

func collectCandidates(rows database.Rows) ([]job.Candidate, error) {
	out := make([]job.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
