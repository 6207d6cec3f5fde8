package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/domain/user"
	"careerhub/internal/repository"
)

const jobSearchCacheTTL = 2 * time.Minute

type CreateJobInput struct {
	CompanyID    uuid.UUID
	Title        string
	Description  string
	Requirements string
	Location     string
	Type         string
}

type UpdateJobInput struct {
	Title        *string
	Description  *string
	Requirements *string
	Location     *string
	Type         *string
	IsActive     *bool
}

type JobSearchResult struct {
	Jobs       []job.Candidate `json:"jobs"`
	Pagination Pagination      `json:"pagination"`
}

type JobUsecase interface {
	Create(ctx context.Context, actor Actor, in CreateJobInput) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Candidate, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, in UpdateJobInput) (job.Job, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	Search(ctx context.Context, f repository.SearchFilter) (JobSearchResult, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, page, limit int) ([]job.Job, Pagination, error)
	Approve(ctx context.Context, actor Actor, id uuid.UUID) (job.Job, error)
	Repost(ctx context.Context, actor Actor, id uuid.UUID) (job.Job, error)
}

// Actor identifies the authenticated caller for permission checks.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func (a Actor) isAdmin() bool { return a.Role == user.RoleAdmin }

type JobService struct {
	jobs    repository.JobRepository
	members repository.CompanyMemberRepository
	cache   SearchCache
}

func NewJobUsecase(jobs repository.JobRepository, members repository.CompanyMemberRepository, cache SearchCache) *JobService {
	return &JobService{jobs: jobs, members: members, cache: cache}
}

func (u *JobService) Create(ctx context.Context, actor Actor, in CreateJobInput) (job.Job, error) {
	if in.CompanyID == uuid.Nil || in.Title == "" || in.Description == "" {
		return job.Job{}, ErrInvalidInput
	}
	if !job.IsValidType(in.Type) {
		return job.Job{}, ErrInvalidInput
	}
	if err := u.requireManager(ctx, actor, in.CompanyID); err != nil {
		return job.Job{}, err
	}

	created, err := u.jobs.Create(ctx, job.Job{
		ID:           uuid.New(),
		CompanyID:    in.CompanyID,
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     in.Location,
		Type:         in.Type,
		IsActive:     true,
	})
	if err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateListings(ctx)
	return created, nil
}

func (u *JobService) GetByID(ctx context.Context, id uuid.UUID) (job.Candidate, error) {
	if id == uuid.Nil {
		return job.Candidate{}, ErrInvalidInput
	}
	c, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Candidate{}, ErrJobNotFound
		}
		return job.Candidate{}, ErrInternal
	}

	// View counting is best effort; a failed insert never fails the read.
	_ = u.jobs.RecordView(ctx, id)
	return c, nil
}

func (u *JobService) Update(ctx context.Context, actor Actor, id uuid.UUID, in UpdateJobInput) (job.Job, error) {
	existing, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return job.Job{}, err
	}
	if in.Type != nil && !job.IsValidType(*in.Type) {
		return job.Job{}, ErrInvalidInput
	}

	updated, err := u.jobs.Update(ctx, existing.ID, repository.JobUpdate{
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     in.Location,
		Type:         in.Type,
		IsActive:     in.IsActive,
	})
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateListings(ctx)
	return updated, nil
}

func (u *JobService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := u.ownedJob(ctx, actor, id); err != nil {
		return err
	}
	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	u.invalidateListings(ctx)
	return nil
}

// Search serves public listings through the redis cache; on a miss the rows
// come from postgres and the page is cached for a short TTL.
func (u *JobService) Search(ctx context.Context, f repository.SearchFilter) (JobSearchResult, error) {
	f.Limit, f.Offset = normalizeSearchPage(f.Limit, f.Offset)

	key := JobsSearchCacheKey(f)
	if u.cache != nil {
		var cached JobSearchResult
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, total, err := u.jobs.Search(ctx, f)
	if err != nil {
		return JobSearchResult{}, ErrInternal
	}

	page := f.Offset/f.Limit + 1
	result := JobSearchResult{
		Jobs:       jobs,
		Pagination: paginate(page, f.Limit, total),
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, result, jobSearchCacheTTL)
	}
	return result, nil
}

func (u *JobService) ListByCompany(ctx context.Context, companyID uuid.UUID, page, limit int) ([]job.Job, Pagination, error) {
	if companyID == uuid.Nil {
		return nil, Pagination{}, ErrInvalidInput
	}
	page, limit = normalizePaging(page, limit)

	jobs, total, err := u.jobs.ListByCompany(ctx, companyID, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	return jobs, paginate(page, limit, total), nil
}

// Approve marks a posting as reviewed; admin only.
func (u *JobService) Approve(ctx context.Context, actor Actor, id uuid.UUID) (job.Job, error) {
	if !actor.isAdmin() {
		return job.Job{}, ErrForbidden
	}
	approved := true
	updated, err := u.jobs.Update(ctx, id, repository.JobUpdate{IsApproved: &approved})
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	u.invalidateListings(ctx)
	return updated, nil
}

// Repost reactivates an expired posting and resets its age so it sorts as new.
func (u *JobService) Repost(ctx context.Context, actor Actor, id uuid.UUID) (job.Job, error) {
	if _, err := u.ownedJob(ctx, actor, id); err != nil {
		return job.Job{}, err
	}
	reposted, err := u.jobs.Repost(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	u.invalidateListings(ctx)
	return reposted, nil
}

func (u *JobService) ownedJob(ctx context.Context, actor Actor, id uuid.UUID) (job.Candidate, error) {
	if id == uuid.Nil {
		return job.Candidate{}, ErrInvalidInput
	}
	existing, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Candidate{}, ErrJobNotFound
		}
		return job.Candidate{}, ErrInternal
	}
	if err := u.requireManager(ctx, actor, existing.CompanyID); err != nil {
		return job.Candidate{}, err
	}
	return existing, nil
}

// requireManager passes for admins and for company members holding the OWNER
// or MANAGER role.
func (u *JobService) requireManager(ctx context.Context, actor Actor, companyID uuid.UUID) error {
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
	if m.Role != repository.MemberRoleOwner && m.Role != repository.MemberRoleManager {
		return ErrForbidden
	}
	return nil
}

func (u *JobService) invalidateListings(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.InvalidateJobListings(ctx)
	}
}

func normalizeSearchPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
