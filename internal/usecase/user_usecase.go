package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"careerhub/internal/domain/user"
)

type UserUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	List(ctx context.Context, actor Actor, page, limit int) ([]user.User, Pagination, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, in UpdateUserInput) (user.User, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// UpdateUserInput carries optional account fields; nil means keep. Role
// changes are admin-only.
type UpdateUserInput struct {
	FullName *string
	Role     *string
}

type UserService struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *UserService {
	return &UserService{users: users}
}

func (u *UserService) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrInvalidInput
	}
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *UserService) List(ctx context.Context, actor Actor, page, limit int) ([]user.User, Pagination, error) {
	if !actor.isAdmin() {
		return nil, Pagination{}, ErrForbidden
	}
	page, limit = normalizePaging(page, limit)

	users, total, err := u.users.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, paginate(page, limit, total), nil
}

func (u *UserService) Update(ctx context.Context, actor Actor, id uuid.UUID, in UpdateUserInput) (user.User, error) {
	if actor.UserID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	if actor.UserID != id && !actor.isAdmin() {
		return user.User{}, ErrForbidden
	}

	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.FullName = name
	}
	if in.Role != nil {
		if !actor.isAdmin() {
			return user.User{}, ErrForbidden
		}
		if !user.IsValidRole(*in.Role) {
			return user.User{}, ErrInvalidInput
		}
		usr.Role = *in.Role
	}

	if err := u.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// Delete removes an account; users may delete themselves, admins anyone.
func (u *UserService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if actor.UserID == uuid.Nil {
		return ErrUnauthorized
	}
	if actor.UserID != id && !actor.isAdmin() {
		return ErrForbidden
	}
	if err := u.users.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}
	return nil
}
