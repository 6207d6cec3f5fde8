package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerhub/internal/repository"
)

type CreateReviewInput struct {
	CompanyID       uuid.UUID
	Rating          int
	Title           string
	Comment         string
	Pros            string
	Cons            string
	WorkLifeBalance *int
	SalaryBenefits  *int
	CareerGrowth    *int
	Management      *int
	Culture         *int
	IsAnonymous     bool
}

type CompanyReviews struct {
	Reviews    []repository.Review    `json:"reviews"`
	Stats      repository.ReviewStats `json:"stats"`
	Pagination Pagination             `json:"pagination"`
}

type ReviewUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateReviewInput) (repository.Review, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, sortBy string, page, limit int) (CompanyReviews, error)
	ListMine(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.Review, Pagination, error)
	Update(ctx context.Context, userID, id uuid.UUID, upd repository.ReviewUpdate) (repository.Review, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ReviewService struct {
	reviews   repository.ReviewRepository
	companies repository.CompanyRepository
}

func NewReviewUsecase(reviews repository.ReviewRepository, companies repository.CompanyRepository) *ReviewService {
	return &ReviewService{reviews: reviews, companies: companies}
}

func validRating(r int) bool { return r >= 1 && r <= 5 }

func validFacet(r *int) bool { return r == nil || (*r >= 1 && *r <= 5) }

func (u *ReviewService) Create(ctx context.Context, userID uuid.UUID, in CreateReviewInput) (repository.Review, error) {
	if userID == uuid.Nil {
		return repository.Review{}, ErrUnauthorized
	}
	if in.CompanyID == uuid.Nil || !validRating(in.Rating) {
		return repository.Review{}, ErrInvalidInput
	}
	for _, facet := range []*int{in.WorkLifeBalance, in.SalaryBenefits, in.CareerGrowth, in.Management, in.Culture} {
		if !validFacet(facet) {
			return repository.Review{}, ErrInvalidInput
		}
	}

	if _, err := u.companies.GetByID(ctx, in.CompanyID); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return repository.Review{}, ErrCompanyNotFound
		}
		return repository.Review{}, ErrInternal
	}

	created, err := u.reviews.Create(ctx, repository.Review{
		ID:              uuid.New(),
		UserID:          userID,
		CompanyID:       in.CompanyID,
		Rating:          in.Rating,
		Title:           in.Title,
		Comment:         in.Comment,
		Pros:            in.Pros,
		Cons:            in.Cons,
		WorkLifeBalance: in.WorkLifeBalance,
		SalaryBenefits:  in.SalaryBenefits,
		CareerGrowth:    in.CareerGrowth,
		Management:      in.Management,
		Culture:         in.Culture,
		IsAnonymous:     in.IsAnonymous,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyReviewed) {
			return repository.Review{}, ErrAlreadyReviewed
		}
		return repository.Review{}, ErrInternal
	}
	return created, nil
}

// ListByCompany returns one page of reviews together with the company's
// aggregate rating stats. Anonymous reviews keep their user id server-side
// only; the handler strips it.
func (u *ReviewService) ListByCompany(ctx context.Context, companyID uuid.UUID, sortBy string, page, limit int) (CompanyReviews, error) {
	if companyID == uuid.Nil {
		return CompanyReviews{}, ErrInvalidInput
	}
	page, limit = normalizePaging(page, limit)

	reviews, total, err := u.reviews.ListByCompany(ctx, companyID, sortBy, limit, (page-1)*limit)
	if err != nil {
		return CompanyReviews{}, ErrInternal
	}
	stats, err := u.reviews.StatsByCompany(ctx, companyID)
	if err != nil {
		return CompanyReviews{}, ErrInternal
	}

	return CompanyReviews{
		Reviews:    reviews,
		Stats:      stats,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (u *ReviewService) ListMine(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.Review, Pagination, error) {
	if userID == uuid.Nil {
		return nil, Pagination{}, ErrUnauthorized
	}
	page, limit = normalizePaging(page, limit)

	reviews, total, err := u.reviews.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	return reviews, paginate(page, limit, total), nil
}

func (u *ReviewService) Update(ctx context.Context, userID, id uuid.UUID, upd repository.ReviewUpdate) (repository.Review, error) {
	if userID == uuid.Nil {
		return repository.Review{}, ErrUnauthorized
	}
	if upd.Rating != nil && !validRating(*upd.Rating) {
		return repository.Review{}, ErrInvalidInput
	}
	for _, facet := range []*int{upd.WorkLifeBalance, upd.SalaryBenefits, upd.CareerGrowth, upd.Management, upd.Culture} {
		if !validFacet(facet) {
			return repository.Review{}, ErrInvalidInput
		}
	}

	rv, err := u.reviews.Update(ctx, id, userID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return repository.Review{}, ErrReviewNotFound
		}
		return repository.Review{}, ErrInternal
	}
	return rv, nil
}

func (u *ReviewService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.reviews.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		return ErrInternal
	}
	return nil
}
