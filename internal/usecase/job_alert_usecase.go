package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/domain/user"
	"careerhub/internal/repository"
)

type JobAlertUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]user.JobAlert, error)
	Upsert(ctx context.Context, userID uuid.UUID, in repository.JobAlertUpsert) (user.JobAlert, error)
	Delete(ctx context.Context, userID, alertID uuid.UUID) error
}

type JobAlertService struct {
	alerts repository.JobAlertRepository
}

func NewJobAlertUsecase(alerts repository.JobAlertRepository) *JobAlertService {
	return &JobAlertService{alerts: alerts}
}

func (u *JobAlertService) List(ctx context.Context, userID uuid.UUID) ([]user.JobAlert, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	alerts, err := u.alerts.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return alerts, nil
}

func (u *JobAlertService) Upsert(ctx context.Context, userID uuid.UUID, in repository.JobAlertUpsert) (user.JobAlert, error) {
	if userID == uuid.Nil {
		return user.JobAlert{}, ErrUnauthorized
	}
	if in.Type != nil && *in.Type != "" && !job.IsValidType(*in.Type) {
		return user.JobAlert{}, ErrInvalidInput
	}

	alert, err := u.alerts.Upsert(ctx, userID, in)
	if err != nil {
		return user.JobAlert{}, ErrInternal
	}
	return alert, nil
}

func (u *JobAlertService) Delete(ctx context.Context, userID, alertID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.alerts.Delete(ctx, userID, alertID); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return ErrAlertNotFound
		}
		return ErrInternal
	}
	return nil
}
