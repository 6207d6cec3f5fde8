package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerhub/internal/domain/user"
	"careerhub/internal/repository"
)

type CreateCompanyInput struct {
	Name        string
	Website     string
	Description string
	Industry    string
	LogoURL     string
}

type InviteMemberInput struct {
	Email string
	Role  string
}

type CompanyUsecase interface {
	Create(ctx context.Context, actor Actor, in CreateCompanyInput) (repository.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Company, error)
	List(ctx context.Context, page, limit int) ([]repository.Company, Pagination, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, upd repository.CompanyUpdate) (repository.Company, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	Verify(ctx context.Context, actor Actor, id uuid.UUID) (repository.Company, error)

	ListMembers(ctx context.Context, actor Actor, companyID uuid.UUID) ([]repository.CompanyMemberWithUser, error)
	InviteMember(ctx context.Context, actor Actor, companyID uuid.UUID, in InviteMemberInput) (repository.CompanyMember, error)
	UpdateMemberRole(ctx context.Context, actor Actor, companyID, memberID uuid.UUID, role string) (repository.CompanyMember, error)
	RemoveMember(ctx context.Context, actor Actor, companyID, memberID uuid.UUID) error
}

type CompanyService struct {
	companies repository.CompanyRepository
	members   repository.CompanyMemberRepository
	users     user.Repository
	notifier  Notifier
}

func NewCompanyUsecase(
	companies repository.CompanyRepository,
	members repository.CompanyMemberRepository,
	users user.Repository,
	notifier Notifier,
) *CompanyService {
	return &CompanyService{companies: companies, members: members, users: users, notifier: notifier}
}

// Create registers a company; the creator becomes its OWNER member.
func (u *CompanyService) Create(ctx context.Context, actor Actor, in CreateCompanyInput) (repository.Company, error) {
	if actor.UserID == uuid.Nil {
		return repository.Company{}, ErrUnauthorized
	}
	if in.Name == "" {
		return repository.Company{}, ErrInvalidInput
	}

	created, err := u.companies.Create(ctx, repository.Company{
		ID:          uuid.New(),
		Name:        in.Name,
		Website:     in.Website,
		Description: in.Description,
		Industry:    in.Industry,
		LogoURL:     in.LogoURL,
		IsActive:    true,
	})
	if err != nil {
		return repository.Company{}, ErrInternal
	}

	_, err = u.members.Create(ctx, repository.CompanyMember{
		ID:        uuid.New(),
		UserID:    actor.UserID,
		CompanyID: created.ID,
		Role:      repository.MemberRoleOwner,
	})
	if err != nil {
		return repository.Company{}, ErrInternal
	}
	return created, nil
}

func (u *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (repository.Company, error) {
	if id == uuid.Nil {
		return repository.Company{}, ErrInvalidInput
	}
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return repository.Company{}, ErrCompanyNotFound
		}
		return repository.Company{}, ErrInternal
	}
	return c, nil
}

func (u *CompanyService) List(ctx context.Context, page, limit int) ([]repository.Company, Pagination, error) {
	page, limit = normalizePaging(page, limit)
	companies, total, err := u.companies.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	return companies, paginate(page, limit, total), nil
}

func (u *CompanyService) Update(ctx context.Context, actor Actor, id uuid.UUID, upd repository.CompanyUpdate) (repository.Company, error) {
	if err := u.requireRole(ctx, actor, id, repository.MemberRoleOwner, repository.MemberRoleManager); err != nil {
		return repository.Company{}, err
	}
	// Verification status is admin-controlled, never member-editable.
	if !actor.isAdmin() {
		upd.IsVerified = nil
	}

	c, err := u.companies.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return repository.Company{}, ErrCompanyNotFound
		}
		return repository.Company{}, ErrInternal
	}
	return c, nil
}

func (u *CompanyService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := u.requireRole(ctx, actor, id, repository.MemberRoleOwner); err != nil {
		return err
	}
	if err := u.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return ErrCompanyNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *CompanyService) Verify(ctx context.Context, actor Actor, id uuid.UUID) (repository.Company, error) {
	if !actor.isAdmin() {
		return repository.Company{}, ErrForbidden
	}
	verified := true
	c, err := u.companies.Update(ctx, id, repository.CompanyUpdate{IsVerified: &verified})
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return repository.Company{}, ErrCompanyNotFound
		}
		return repository.Company{}, ErrInternal
	}
	return c, nil
}

func (u *CompanyService) ListMembers(ctx context.Context, actor Actor, companyID uuid.UUID) ([]repository.CompanyMemberWithUser, error) {
	if err := u.requireRole(ctx, actor, companyID,
		repository.MemberRoleOwner, repository.MemberRoleManager, repository.MemberRoleMember); err != nil {
		return nil, err
	}
	members, err := u.members.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, ErrInternal
	}
	return members, nil
}

// InviteMember adds a user to the company by email. Owners may grant any
// role below OWNER; managers may only add plain members.
func (u *CompanyService) InviteMember(ctx context.Context, actor Actor, companyID uuid.UUID, in InviteMemberInput) (repository.CompanyMember, error) {
	role := in.Role
	if role == "" {
		role = repository.MemberRoleMember
	}
	if !repository.IsValidMemberRole(role) || role == repository.MemberRoleOwner {
		return repository.CompanyMember{}, ErrInvalidInput
	}

	actorMember, err := u.membership(ctx, actor, companyID)
	if err != nil {
		return repository.CompanyMember{}, err
	}
	if actorMember.Role == repository.MemberRoleManager && role != repository.MemberRoleMember {
		return repository.CompanyMember{}, ErrForbidden
	}

	invitee, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return repository.CompanyMember{}, ErrUserNotFound
		}
		return repository.CompanyMember{}, ErrInternal
	}

	invitedBy := actor.UserID
	created, err := u.members.Create(ctx, repository.CompanyMember{
		ID:        uuid.New(),
		UserID:    invitee.ID,
		CompanyID: companyID,
		Role:      role,
		InvitedBy: &invitedBy,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyMember) {
			return repository.CompanyMember{}, ErrAlreadyMember
		}
		return repository.CompanyMember{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, invitee.ID,
			repository.NotificationTypeCompany,
			"Added to a company",
			"You have been added to a company team.",
			&companyID, "company")
	}
	return created, nil
}

func (u *CompanyService) UpdateMemberRole(ctx context.Context, actor Actor, companyID, memberID uuid.UUID, role string) (repository.CompanyMember, error) {
	if !repository.IsValidMemberRole(role) {
		return repository.CompanyMember{}, ErrInvalidInput
	}
	if err := u.requireRole(ctx, actor, companyID, repository.MemberRoleOwner); err != nil {
		return repository.CompanyMember{}, err
	}

	target, err := u.members.GetByID(ctx, memberID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return repository.CompanyMember{}, ErrMemberNotFound
		}
		return repository.CompanyMember{}, ErrInternal
	}

	// Demoting the last owner would orphan the company.
	if target.Role == repository.MemberRoleOwner && role != repository.MemberRoleOwner {
		if err := u.requireAnotherOwner(ctx, companyID, target.ID); err != nil {
			return repository.CompanyMember{}, err
		}
	}

	updated, err := u.members.UpdateRole(ctx, memberID, role)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return repository.CompanyMember{}, ErrMemberNotFound
		}
		return repository.CompanyMember{}, ErrInternal
	}
	return updated, nil
}

// RemoveMember removes a membership. Owners may remove anyone but the last
// owner; any member may remove themselves (leave).
func (u *CompanyService) RemoveMember(ctx context.Context, actor Actor, companyID, memberID uuid.UUID) error {
	target, err := u.members.GetByID(ctx, memberID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return ErrInternal
	}

	if target.UserID != actor.UserID {
		if err := u.requireRole(ctx, actor, companyID, repository.MemberRoleOwner); err != nil {
			return err
		}
	}

	if target.Role == repository.MemberRoleOwner {
		if err := u.requireAnotherOwner(ctx, companyID, target.ID); err != nil {
			return err
		}
	}

	if err := u.members.Delete(ctx, memberID); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *CompanyService) membership(ctx context.Context, actor Actor, companyID uuid.UUID) (repository.CompanyMember, error) {
	if actor.UserID == uuid.Nil {
		return repository.CompanyMember{}, ErrUnauthorized
	}
	if actor.isAdmin() {
		return repository.CompanyMember{Role: repository.MemberRoleOwner}, nil
	}
	m, err := u.members.GetByUser(ctx, actor.UserID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return repository.CompanyMember{}, ErrForbidden
		}
		return repository.CompanyMember{}, ErrInternal
	}
	if m.Role != repository.MemberRoleOwner && m.Role != repository.MemberRoleManager {
		return repository.CompanyMember{}, ErrForbidden
	}
	return m, nil
}

func (u *CompanyService) requireRole(ctx context.Context, actor Actor, companyID uuid.UUID, roles ...string) error {
	if actor.UserID == uuid.Nil {
		return ErrUnauthorized
	}
	if actor.isAdmin() {
		return nil
	}
	m, err := u.members.GetByUser(ctx, actor.UserID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return ErrForbidden
		}
		return ErrInternal
	}
	for _, r := range roles {
		if m.Role == r {
			return nil
		}
	}
	return ErrForbidden
}

func (u *CompanyService) requireAnotherOwner(ctx context.Context, companyID, excludeMemberID uuid.UUID) error {
	members, err := u.members.ListByCompany(ctx, companyID)
	if err != nil {
		return ErrInternal
	}
	for _, m := range members {
		if m.ID != excludeMemberID && m.Role == repository.MemberRoleOwner {
			return nil
		}
	}
	return ErrForbidden
}
