package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerhub/internal/repository"
)

// maxCVsPerUser caps how many CVs one candidate may keep.
const maxCVsPerUser = 5

type CreateCVInput struct {
	Title    string
	FileName string
	FileURL  string
	FileSize int64
}

type CVUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateCVInput) (repository.CV, error)
	List(ctx context.Context, userID uuid.UUID) ([]repository.CV, error)
	Get(ctx context.Context, userID, id uuid.UUID) (repository.CV, error)
	Update(ctx context.Context, userID, id uuid.UUID, upd repository.CVUpdate) (repository.CV, error)
	SetMain(ctx context.Context, userID, id uuid.UUID) (repository.CV, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type CVService struct {
	cvs repository.CVRepository
}

func NewCVUsecase(cvs repository.CVRepository) *CVService {
	return &CVService{cvs: cvs}
}

// Create stores a CV record; the first CV automatically becomes the main one.
func (u *CVService) Create(ctx context.Context, userID uuid.UUID, in CreateCVInput) (repository.CV, error) {
	if userID == uuid.Nil {
		return repository.CV{}, ErrUnauthorized
	}
	if in.Title == "" {
		return repository.CV{}, ErrInvalidInput
	}

	count, err := u.cvs.CountByUser(ctx, userID)
	if err != nil {
		return repository.CV{}, ErrInternal
	}
	if count >= maxCVsPerUser {
		return repository.CV{}, ErrCVLimitReached
	}

	created, err := u.cvs.Create(ctx, repository.CV{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    in.Title,
		FileName: in.FileName,
		FileURL:  in.FileURL,
		FileSize: in.FileSize,
		IsMain:   count == 0,
	})
	if err != nil {
		return repository.CV{}, ErrInternal
	}
	return created, nil
}

func (u *CVService) List(ctx context.Context, userID uuid.UUID) ([]repository.CV, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	cvs, err := u.cvs.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return cvs, nil
}

func (u *CVService) Get(ctx context.Context, userID, id uuid.UUID) (repository.CV, error) {
	if userID == uuid.Nil {
		return repository.CV{}, ErrUnauthorized
	}
	cv, err := u.cvs.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCVNotFound) {
			return repository.CV{}, ErrCVNotFound
		}
		return repository.CV{}, ErrInternal
	}
	return cv, nil
}

func (u *CVService) Update(ctx context.Context, userID, id uuid.UUID, upd repository.CVUpdate) (repository.CV, error) {
	if userID == uuid.Nil {
		return repository.CV{}, ErrUnauthorized
	}
	cv, err := u.cvs.Update(ctx, id, userID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrCVNotFound) {
			return repository.CV{}, ErrCVNotFound
		}
		return repository.CV{}, ErrInternal
	}
	return cv, nil
}

func (u *CVService) SetMain(ctx context.Context, userID, id uuid.UUID) (repository.CV, error) {
	if userID == uuid.Nil {
		return repository.CV{}, ErrUnauthorized
	}
	cv, err := u.cvs.SetMain(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCVNotFound) {
			return repository.CV{}, ErrCVNotFound
		}
		return repository.CV{}, ErrInternal
	}
	return cv, nil
}

// Delete removes a CV; when the main CV is removed the newest remaining one
// is promoted so the user always has a main CV if any exist.
func (u *CVService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	cv, err := u.cvs.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCVNotFound) {
			return ErrCVNotFound
		}
		return ErrInternal
	}

	if err := u.cvs.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrCVNotFound) {
			return ErrCVNotFound
		}
		return ErrInternal
	}

	if cv.IsMain {
		if err := u.cvs.PromoteNewest(ctx, userID); err != nil {
			return ErrInternal
		}
	}
	return nil
}
