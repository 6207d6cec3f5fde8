package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/repository"
)

type SavedJobUsecase interface {
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.SavedJobWithJob, Pagination, error)
	Save(ctx context.Context, userID, jobID uuid.UUID) (repository.SavedJob, error)
	Delete(ctx context.Context, userID, jobID uuid.UUID) error
}

type SavedJobService struct {
	saved repository.SavedJobRepository
	jobs  repository.JobRepository
}

func NewSavedJobUsecase(saved repository.SavedJobRepository, jobs repository.JobRepository) *SavedJobService {
	return &SavedJobService{saved: saved, jobs: jobs}
}

func (u *SavedJobService) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.SavedJobWithJob, Pagination, error) {
	if userID == uuid.Nil {
		return nil, Pagination{}, ErrUnauthorized
	}
	page, limit = normalizePaging(page, limit)

	rows, total, err := u.saved.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	return rows, paginate(page, limit, total), nil
}

// Save bookmarks a job; saving an already-saved job is a no-op.
func (u *SavedJobService) Save(ctx context.Context, userID, jobID uuid.UUID) (repository.SavedJob, error) {
	if userID == uuid.Nil {
		return repository.SavedJob{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return repository.SavedJob{}, ErrInvalidInput
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return repository.SavedJob{}, ErrJobNotFound
		}
		return repository.SavedJob{}, ErrInternal
	}

	sj, err := u.saved.Save(ctx, userID, jobID)
	if err != nil {
		return repository.SavedJob{}, ErrInternal
	}
	return sj, nil
}

func (u *SavedJobService) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.saved.Delete(ctx, userID, jobID); err != nil {
		if errors.Is(err, repository.ErrSavedJobNotFound) {
			return ErrSavedJobNotFound
		}
		return ErrInternal
	}
	return nil
}
