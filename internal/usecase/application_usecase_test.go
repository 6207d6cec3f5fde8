package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/repository"
)

type stubApplicationRepo struct {
	mockApplicationRepo

	app     repository.Application
	created *repository.Application
}

func (s *stubApplicationRepo) Create(_ context.Context, a repository.Application) (repository.Application, error) {
	s.created = &a
	return a, nil
}

func (s *stubApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Application, error) {
	if s.app.ID == id {
		return s.app, nil
	}
	return repository.Application{}, repository.ErrApplicationNotFound
}

func (s *stubApplicationRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status string) (repository.Application, error) {
	updated := s.app
	updated.Status = status
	return updated, nil
}

type stubCVRepo struct {
	cv repository.CV
}

func (s *stubCVRepo) Create(context.Context, repository.CV) (repository.CV, error) {
	return repository.CV{}, nil
}
func (s *stubCVRepo) CountByUser(context.Context, uuid.UUID) (int, error) { return 0, nil }
func (s *stubCVRepo) ListByUser(context.Context, uuid.UUID) ([]repository.CV, error) {
	return nil, nil
}
func (s *stubCVRepo) GetByID(_ context.Context, id, userID uuid.UUID) (repository.CV, error) {
	if s.cv.ID == id && s.cv.UserID == userID {
		return s.cv, nil
	}
	return repository.CV{}, repository.ErrCVNotFound
}
func (s *stubCVRepo) Update(context.Context, uuid.UUID, uuid.UUID, repository.CVUpdate) (repository.CV, error) {
	return repository.CV{}, nil
}
func (s *stubCVRepo) SetMain(context.Context, uuid.UUID, uuid.UUID) (repository.CV, error) {
	return repository.CV{}, nil
}
func (s *stubCVRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (s *stubCVRepo) PromoteNewest(context.Context, uuid.UUID) error     { return nil }

type stubMemberRepo struct {
	member repository.CompanyMember
}

func (s *stubMemberRepo) Create(context.Context, repository.CompanyMember) (repository.CompanyMember, error) {
	return repository.CompanyMember{}, nil
}
func (s *stubMemberRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (repository.CompanyMember, error) {
	return repository.CompanyMember{}, repository.ErrMemberNotFound
}
func (s *stubMemberRepo) GetByUser(_ context.Context, userID, companyID uuid.UUID) (repository.CompanyMember, error) {
	if s.member.UserID == userID && s.member.CompanyID == companyID {
		return s.member, nil
	}
	return repository.CompanyMember{}, repository.ErrMemberNotFound
}
func (s *stubMemberRepo) ListByCompany(context.Context, uuid.UUID) ([]repository.CompanyMemberWithUser, error) {
	return nil, nil
}
func (s *stubMemberRepo) UpdateRole(context.Context, uuid.UUID, string) (repository.CompanyMember, error) {
	return repository.CompanyMember{}, nil
}
func (s *stubMemberRepo) Delete(context.Context, uuid.UUID) error { return nil }

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{repository.ApplicationStatusPending, repository.ApplicationStatusReviewing, true},
		{repository.ApplicationStatusPending, repository.ApplicationStatusRejected, true},
		{repository.ApplicationStatusPending, repository.ApplicationStatusOffer, false},
		{repository.ApplicationStatusReviewing, repository.ApplicationStatusInterview, true},
		{repository.ApplicationStatusInterview, repository.ApplicationStatusOffer, true},
		{repository.ApplicationStatusOffer, repository.ApplicationStatusReviewing, false},
		{repository.ApplicationStatusOffer, repository.ApplicationStatusRejected, false},
		{repository.ApplicationStatusRejected, repository.ApplicationStatusReviewing, false},
		{repository.ApplicationStatusWithdrawn, repository.ApplicationStatusReviewing, false},
	}
	for _, tc := range cases {
		if got := canTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("canTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestApply_ClosedJob(t *testing.T) {
	userID := uuid.New()
	closed := candidateJob("Backend Engineer", "Hanoi", time.Now())
	closed.IsActive = false

	uc := NewApplicationUsecase(
		&stubApplicationRepo{},
		&mockJobsRepo{byID: map[uuid.UUID]job.Candidate{closed.ID: closed}},
		&stubCVRepo{}, &stubMemberRepo{}, nil,
	)

	_, err := uc.Apply(context.Background(), userID, ApplyInput{JobID: closed.ID})
	if !errors.Is(err, ErrJobClosed) {
		t.Fatalf("expected ErrJobClosed, got %v", err)
	}
}

func TestApply_RejectsForeignCV(t *testing.T) {
	userID := uuid.New()
	open := candidateJob("Backend Engineer", "Hanoi", time.Now())
	foreignCV := uuid.New()

	uc := NewApplicationUsecase(
		&stubApplicationRepo{},
		&mockJobsRepo{byID: map[uuid.UUID]job.Candidate{open.ID: open}},
		&stubCVRepo{}, &stubMemberRepo{}, nil,
	)

	_, err := uc.Apply(context.Background(), userID, ApplyInput{JobID: open.ID, CVID: &foreignCV})
	if !errors.Is(err, ErrCVNotFound) {
		t.Fatalf("expected ErrCVNotFound, got %v", err)
	}
}

func TestApply_Success(t *testing.T) {
	userID := uuid.New()
	open := candidateJob("Backend Engineer", "Hanoi", time.Now())

	apps := &stubApplicationRepo{}
	uc := NewApplicationUsecase(
		apps,
		&mockJobsRepo{byID: map[uuid.UUID]job.Candidate{open.ID: open}},
		&stubCVRepo{}, &stubMemberRepo{}, nil,
	)

	created, err := uc.Apply(context.Background(), userID, ApplyInput{JobID: open.ID, CoverLetter: "hello"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != repository.ApplicationStatusPending {
		t.Fatalf("expected PENDING, got %s", created.Status)
	}
	if apps.created == nil {
		t.Fatalf("expected application persisted")
	}
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	recruiterID := uuid.New()
	posting := candidateJob("Backend Engineer", "Hanoi", time.Now())

	app := repository.Application{
		ID:     uuid.New(),
		UserID: uuid.New(),
		JobID:  posting.ID,
		Status: repository.ApplicationStatusPending,
	}

	uc := NewApplicationUsecase(
		&stubApplicationRepo{app: app},
		&mockJobsRepo{byID: map[uuid.UUID]job.Candidate{posting.ID: posting}},
		&stubCVRepo{},
		&stubMemberRepo{member: repository.CompanyMember{
			UserID:    recruiterID,
			CompanyID: posting.CompanyID,
			Role:      repository.MemberRoleOwner,
		}},
		nil,
	)

	_, err := uc.UpdateStatus(context.Background(), Actor{UserID: recruiterID}, app.ID, repository.ApplicationStatusOffer)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestWithdraw_OnlyOwnApplication(t *testing.T) {
	app := repository.Application{
		ID:     uuid.New(),
		UserID: uuid.New(),
		JobID:  uuid.New(),
		Status: repository.ApplicationStatusPending,
	}

	uc := NewApplicationUsecase(
		&stubApplicationRepo{app: app},
		&mockJobsRepo{}, &stubCVRepo{}, &stubMemberRepo{}, nil,
	)

	if _, err := uc.Withdraw(context.Background(), uuid.New(), app.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := uc.Withdraw(context.Background(), app.UserID, app.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != repository.ApplicationStatusWithdrawn {
		t.Fatalf("expected WITHDRAWN, got %s", updated.Status)
	}
}
