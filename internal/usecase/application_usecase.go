package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/repository"
)

// statusTransitions encodes the recruiter-driven pipeline ending in OFFER or
// REJECTED. WITHDRAWN is the candidate's own terminal move, allowed from any
// non-terminal status.
var statusTransitions = map[string][]string{
	repository.ApplicationStatusPending:   {repository.ApplicationStatusReviewing, repository.ApplicationStatusRejected},
	repository.ApplicationStatusReviewing: {repository.ApplicationStatusInterview, repository.ApplicationStatusRejected},
	repository.ApplicationStatusInterview: {repository.ApplicationStatusOffer, repository.ApplicationStatusRejected},
}

func canTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func isTerminalStatus(s string) bool {
	switch s {
	case repository.ApplicationStatusOffer, repository.ApplicationStatusRejected, repository.ApplicationStatusWithdrawn:
		return true
	}
	return false
}

type ApplyInput struct {
	JobID       uuid.UUID
	CVID        *uuid.UUID
	CoverLetter string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID uuid.UUID, in ApplyInput) (repository.Application, error)
	ListMine(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.ApplicationWithJob, Pagination, error)
	ListApplicants(ctx context.Context, actor Actor, jobID uuid.UUID, page, limit int) ([]repository.ApplicantRow, Pagination, error)
	UpdateStatus(ctx context.Context, actor Actor, applicationID uuid.UUID, status string) (repository.Application, error)
	Withdraw(ctx context.Context, userID, applicationID uuid.UUID) (repository.Application, error)
}

type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	cvs          repository.CVRepository
	members      repository.CompanyMemberRepository
	notifier     Notifier
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	cvs repository.CVRepository,
	members repository.CompanyMemberRepository,
	notifier Notifier,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		cvs:          cvs,
		members:      members,
		notifier:     notifier,
	}
}

func (u *ApplicationService) Apply(ctx context.Context, userID uuid.UUID, in ApplyInput) (repository.Application, error) {
	if userID == uuid.Nil {
		return repository.Application{}, ErrUnauthorized
	}
	if in.JobID == uuid.Nil {
		return repository.Application{}, ErrInvalidInput
	}

	posting, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return repository.Application{}, ErrJobNotFound
		}
		return repository.Application{}, ErrInternal
	}
	if !posting.IsActive || !posting.IsApproved {
		return repository.Application{}, ErrJobClosed
	}

	if in.CVID != nil {
		if _, err := u.cvs.GetByID(ctx, *in.CVID, userID); err != nil {
			if errors.Is(err, repository.ErrCVNotFound) {
				return repository.Application{}, ErrCVNotFound
			}
			return repository.Application{}, ErrInternal
		}
	}

	created, err := u.applications.Create(ctx, repository.Application{
		ID:          uuid.New(),
		UserID:      userID,
		JobID:       in.JobID,
		CVID:        in.CVID,
		CoverLetter: in.CoverLetter,
		Status:      repository.ApplicationStatusPending,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyApplied) {
			return repository.Application{}, ErrAlreadyApplied
		}
		return repository.Application{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, userID,
			repository.NotificationTypeApplication,
			"Application submitted",
			fmt.Sprintf("Your application for %q was submitted.", posting.Title),
			&created.ID, "application")
	}
	return created, nil
}

func (u *ApplicationService) ListMine(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.ApplicationWithJob, Pagination, error) {
	if userID == uuid.Nil {
		return nil, Pagination{}, ErrUnauthorized
	}
	page, limit = normalizePaging(page, limit)

	rows, total, err := u.applications.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	return rows, paginate(page, limit, total), nil
}

func (u *ApplicationService) ListApplicants(ctx context.Context, actor Actor, jobID uuid.UUID, page, limit int) ([]repository.ApplicantRow, Pagination, error) {
	if jobID == uuid.Nil {
		return nil, Pagination{}, ErrInvalidInput
	}
	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, Pagination{}, ErrJobNotFound
		}
		return nil, Pagination{}, ErrInternal
	}
	if err := u.requireMember(ctx, actor, posting.CompanyID); err != nil {
		return nil, Pagination{}, err
	}

	page, limit = normalizePaging(page, limit)
	rows, total, err := u.applications.ListByJob(ctx, jobID, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	return rows, paginate(page, limit, total), nil
}

// UpdateStatus moves an application along the recruiter pipeline, validating
// the transition and notifying the candidate.
func (u *ApplicationService) UpdateStatus(ctx context.Context, actor Actor, applicationID uuid.UUID, status string) (repository.Application, error) {
	if applicationID == uuid.Nil {
		return repository.Application{}, ErrInvalidInput
	}

	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return repository.Application{}, ErrApplicationNotFound
		}
		return repository.Application{}, ErrInternal
	}

	posting, err := u.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return repository.Application{}, ErrJobNotFound
		}
		return repository.Application{}, ErrInternal
	}
	if err := u.requireMember(ctx, actor, posting.CompanyID); err != nil {
		return repository.Application{}, err
	}

	if !canTransition(app.Status, status) {
		return repository.Application{}, ErrInvalidStatus
	}

	updated, err := u.applications.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return repository.Application{}, ErrApplicationNotFound
		}
		return repository.Application{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.Notify(ctx, app.UserID,
			repository.NotificationTypeApplication,
			"Application status updated",
			fmt.Sprintf("Your application for %q is now %s.", posting.Title, status),
			&updated.ID, "application")
	}
	return updated, nil
}

func (u *ApplicationService) Withdraw(ctx context.Context, userID, applicationID uuid.UUID) (repository.Application, error) {
	if userID == uuid.Nil {
		return repository.Application{}, ErrUnauthorized
	}
	if applicationID == uuid.Nil {
		return repository.Application{}, ErrInvalidInput
	}

	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return repository.Application{}, ErrApplicationNotFound
		}
		return repository.Application{}, ErrInternal
	}
	if app.UserID != userID {
		return repository.Application{}, ErrForbidden
	}
	if isTerminalStatus(app.Status) {
		return repository.Application{}, ErrInvalidStatus
	}

	updated, err := u.applications.UpdateStatus(ctx, applicationID, repository.ApplicationStatusWithdrawn)
	if err != nil {
		return repository.Application{}, ErrInternal
	}
	return updated, nil
}

// requireMember passes for admins and any member of the company.
func (u *ApplicationService) requireMember(ctx context.Context, actor Actor, companyID uuid.UUID) error {
	if actor.UserID == uuid.Nil {
		return ErrUnauthorized
	}
	if actor.isAdmin() {
		return nil
	}
	if _, err := u.members.GetByUser(ctx, actor.UserID, companyID); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return ErrForbidden
		}
		return ErrInternal
	}
	return nil
}
