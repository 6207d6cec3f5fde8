package repository

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/database"

	"github.com/google/uuid"
)

var ErrCompanyNotFound = errors.New("company not found")

type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CompanyUpdate struct {
	Name        *string
	Website     *string
	Description *string
	Industry    *string
	LogoURL     *string
	IsVerified  *bool
	IsActive    *bool
}

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, int, error)
	Update(ctx context.Context, id uuid.UUID, upd CompanyUpdate) (Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, name, COALESCE(website, ''), COALESCE(description, ''), COALESCE(industry, ''),
	COALESCE(logo_url, ''), is_verified, is_active, created_at, updated_at`

func (r *PostgresCompanyRepository) Create(ctx context.Context, c Company) (Company, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO companies (id, name, website, description, industry, logo_url, is_verified, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE, TRUE)
		 RETURNING `+companyColumns,
		uuid.New(), c.Name, c.Website, c.Description, c.Industry, c.LogoURL,
	)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	c, err := scanCompany(row)
	if err != nil {
		if isNoRows(err) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) List(ctx context.Context, limit, offset int) ([]Company, int, error) {
	limit, offset = normalizePage(limit, offset)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies WHERE is_active`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE is_active
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, id uuid.UUID, upd CompanyUpdate) (Company, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE companies SET
			name = COALESCE($2, name),
			website = COALESCE($3, website),
			description = COALESCE($4, description),
			industry = COALESCE($5, industry),
			logo_url = COALESCE($6, logo_url),
			is_verified = COALESCE($7, is_verified),
			is_active = COALESCE($8, is_active),
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+companyColumns,
		id, upd.Name, upd.Website, upd.Description, upd.Industry, upd.LogoURL, upd.IsVerified, upd.IsActive,
	)
	c, err := scanCompany(row)
	if err != nil {
		if isNoRows(err) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row scanner) (Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.Website, &c.Description, &c.Industry,
		&c.LogoURL, &c.IsVerified, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
