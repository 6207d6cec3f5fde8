package repository

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/database"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound = errors.New("company member not found")
	ErrAlreadyMember  = errors.New("user is already a member of this company")
)

const (
	MemberRoleOwner   = "OWNER"
	MemberRoleManager = "MANAGER"
	MemberRoleMember  = "MEMBER"
)

func IsValidMemberRole(role string) bool {
	switch role {
	case MemberRoleOwner, MemberRoleManager, MemberRoleMember:
		return true
	}
	return false
}

type CompanyMember struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	CompanyID uuid.UUID  `json:"company_id"`
	Role      string     `json:"role"`
	InvitedBy *uuid.UUID `json:"invited_by,omitempty"`
	JoinedAt  time.Time  `json:"joined_at"`
}

type CompanyMemberWithUser struct {
	CompanyMember
	UserEmail    string `json:"user_email"`
	UserFullName string `json:"user_full_name"`
}

type CompanyMemberRepository interface {
	Create(ctx context.Context, m CompanyMember) (CompanyMember, error)
	GetByID(ctx context.Context, id, companyID uuid.UUID) (CompanyMember, error)
	GetByUser(ctx context.Context, userID, companyID uuid.UUID) (CompanyMember, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]CompanyMemberWithUser, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (CompanyMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCompanyMemberRepository struct {
	db database.DB
}

func NewPostgresCompanyMemberRepository(db database.DB) *PostgresCompanyMemberRepository {
	return &PostgresCompanyMemberRepository{db: db}
}

func (r *PostgresCompanyMemberRepository) Create(ctx context.Context, m CompanyMember) (CompanyMember, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO company_members (id, user_id, company_id, role, invited_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, company_id, role, invited_by, joined_at`,
		uuid.New(), m.UserID, m.CompanyID, m.Role, m.InvitedBy,
	)
	created, err := scanMember(row)
	if err != nil {
		if isUniqueViolation(err) {
			return CompanyMember{}, ErrAlreadyMember
		}
		return CompanyMember{}, err
	}
	return created, nil
}

func (r *PostgresCompanyMemberRepository) GetByID(ctx context.Context, id, companyID uuid.UUID) (CompanyMember, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, company_id, role, invited_by, joined_at
		 FROM company_members WHERE id = $1 AND company_id = $2`, id, companyID,
	)
	m, err := scanMember(row)
	if err != nil {
		if isNoRows(err) {
			return CompanyMember{}, ErrMemberNotFound
		}
		return CompanyMember{}, err
	}
	return m, nil
}

func (r *PostgresCompanyMemberRepository) GetByUser(ctx context.Context, userID, companyID uuid.UUID) (CompanyMember, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, company_id, role, invited_by, joined_at
		 FROM company_members WHERE user_id = $1 AND company_id = $2`, userID, companyID,
	)
	m, err := scanMember(row)
	if err != nil {
		if isNoRows(err) {
			return CompanyMember{}, ErrMemberNotFound
		}
		return CompanyMember{}, err
	}
	return m, nil
}

func (r *PostgresCompanyMemberRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]CompanyMemberWithUser, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.id, m.user_id, m.company_id, m.role, m.invited_by, m.joined_at, u.email, u.full_name
		 FROM company_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.company_id = $1
		 ORDER BY m.role ASC, m.joined_at ASC`, companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CompanyMemberWithUser, 0)
	for rows.Next() {
		var item CompanyMemberWithUser
		if err := rows.Scan(&item.ID, &item.UserID, &item.CompanyID, &item.Role, &item.InvitedBy,
			&item.JoinedAt, &item.UserEmail, &item.UserFullName); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyMemberRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (CompanyMember, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE company_members SET role = $2 WHERE id = $1
		 RETURNING id, user_id, company_id, role, invited_by, joined_at`,
		id, role,
	)
	m, err := scanMember(row)
	if err != nil {
		if isNoRows(err) {
			return CompanyMember{}, ErrMemberNotFound
		}
		return CompanyMember{}, err
	}
	return m, nil
}

func (r *PostgresCompanyMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM company_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func scanMember(row scanner) (CompanyMember, error) {
	var m CompanyMember
	err := row.Scan(&m.ID, &m.UserID, &m.CompanyID, &m.Role, &m.InvitedBy, &m.JoinedAt)
	return m, err
}
