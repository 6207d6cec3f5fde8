package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerhub/internal/domain/user"
	"careerhub/internal/repository"
)

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, in repository.ProfileUpsert) (user.Profile, error)
}

type ProfileService struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (u *ProfileService) Get(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, in repository.ProfileUpsert) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrUnauthorized
	}
	p, err := u.profiles.Upsert(ctx, userID, in)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return p, nil
}
