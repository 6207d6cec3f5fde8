package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/domain/scoring"
	"careerhub/internal/domain/user"
	"careerhub/internal/repository"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func (m *mockUserRepo) Create(context.Context, user.User) error { return nil }
func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}
func (m *mockUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m *mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m *mockUserRepo) List(context.Context, int, int) ([]user.User, int, error) {
	return nil, 0, nil
}
func (m *mockUserRepo) Update(context.Context, user.User) error { return nil }
func (m *mockUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

type mockProfileRepo struct {
	profile *user.Profile
}

func (m *mockProfileRepo) GetByUserID(context.Context, uuid.UUID) (user.Profile, error) {
	if m.profile == nil {
		return user.Profile{}, repository.ErrProfileNotFound
	}
	return *m.profile, nil
}
func (m *mockProfileRepo) Upsert(context.Context, uuid.UUID, repository.ProfileUpsert) (user.Profile, error) {
	return user.Profile{}, nil
}

type mockAlertRepo struct {
	alerts []user.JobAlert
}

func (m *mockAlertRepo) ListByUser(context.Context, uuid.UUID) ([]user.JobAlert, error) {
	return m.alerts, nil
}
func (m *mockAlertRepo) Upsert(context.Context, uuid.UUID, repository.JobAlertUpsert) (user.JobAlert, error) {
	return user.JobAlert{}, nil
}
func (m *mockAlertRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type mockApplicationRepo struct {
	appliedIDs []uuid.UUID
}

func (m *mockApplicationRepo) Create(context.Context, repository.Application) (repository.Application, error) {
	return repository.Application{}, nil
}
func (m *mockApplicationRepo) GetByID(context.Context, uuid.UUID) (repository.Application, error) {
	return repository.Application{}, repository.ErrApplicationNotFound
}
func (m *mockApplicationRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]repository.ApplicationWithJob, int, error) {
	return nil, 0, nil
}
func (m *mockApplicationRepo) ListByJob(context.Context, uuid.UUID, int, int) ([]repository.ApplicantRow, int, error) {
	return nil, 0, nil
}
func (m *mockApplicationRepo) ListAppliedJobIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return m.appliedIDs, nil
}
func (m *mockApplicationRepo) UpdateStatus(context.Context, uuid.UUID, string) (repository.Application, error) {
	return repository.Application{}, nil
}

type mockJobsRepo struct {
	candidates []job.Candidate
	openByIDs  []job.Candidate
	byID       map[uuid.UUID]job.Candidate

	lastFilter repository.CandidateFilter
}

func (m *mockJobsRepo) Create(context.Context, job.Job) (job.Job, error) { return job.Job{}, nil }
func (m *mockJobsRepo) GetByID(_ context.Context, id uuid.UUID) (job.Candidate, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return job.Candidate{}, job.ErrNotFound
}
func (m *mockJobsRepo) Update(context.Context, uuid.UUID, repository.JobUpdate) (job.Job, error) {
	return job.Job{}, nil
}
func (m *mockJobsRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (m *mockJobsRepo) Search(context.Context, repository.SearchFilter) ([]job.Candidate, int, error) {
	return nil, 0, nil
}
func (m *mockJobsRepo) ListByCompany(context.Context, uuid.UUID, int, int) ([]job.Job, int, error) {
	return nil, 0, nil
}
func (m *mockJobsRepo) ListCandidates(_ context.Context, f repository.CandidateFilter) ([]job.Candidate, error) {
	m.lastFilter = f
	return m.candidates, nil
}
func (m *mockJobsRepo) ListOpenByIDs(context.Context, []uuid.UUID) ([]job.Candidate, error) {
	return m.openByIDs, nil
}
func (m *mockJobsRepo) RecordView(context.Context, uuid.UUID) error { return nil }
func (m *mockJobsRepo) Repost(context.Context, uuid.UUID) (job.Job, error) {
	return job.Job{}, nil
}

type mockRecRepo struct {
	upserts  []repository.RecommendationUpsert
	notFound bool
}

func (m *mockRecRepo) Upsert(_ context.Context, up repository.RecommendationUpsert) (uuid.UUID, error) {
	m.upserts = append(m.upserts, up)
	return uuid.New(), nil
}
func (m *mockRecRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]repository.SavedRecommendationRow, int, error) {
	return nil, 0, nil
}
func (m *mockRecRepo) UpdateFeedback(context.Context, uuid.UUID, uuid.UUID, float64, *string) (repository.Recommendation, error) {
	if m.notFound {
		return repository.Recommendation{}, repository.ErrRecommendationNotFound
	}
	return repository.Recommendation{}, nil
}
func (m *mockRecRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	if m.notFound {
		return repository.ErrRecommendationNotFound
	}
	return nil
}

func candidateJob(title, location string, created time.Time) job.Candidate {
	return job.Candidate{
		Job: job.Job{
			ID:          uuid.New(),
			Title:       title,
			Description: "We build services in Go and React.",
			Location:    location,
			Type:        job.TypeFullTime,
			IsActive:    true,
			IsApproved:  true,
			CreatedAt:   created,
		},
	}
}

func newRecommendationUsecase(users *mockUserRepo, profiles *mockProfileRepo, alerts *mockAlertRepo, apps *mockApplicationRepo, jobs *mockJobsRepo, recs *mockRecRepo) *Recommendation {
	return NewRecommendationUsecase(users, profiles, alerts, apps, jobs, recs, scoring.NewHeuristic())
}

func TestGenerate_UserNotFound(t *testing.T) {
	uc := newRecommendationUsecase(
		&mockUserRepo{users: map[uuid.UUID]user.User{}},
		&mockProfileRepo{}, &mockAlertRepo{}, &mockApplicationRepo{},
		&mockJobsRepo{}, &mockRecRepo{},
	)

	_, _, err := uc.Generate(context.Background(), uuid.New(), GenerateParams{Page: 1, Limit: 10})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGenerate_ExcludesAppliedJobs(t *testing.T) {
	userID := uuid.New()
	applied := []uuid.UUID{uuid.New(), uuid.New()}

	jobs := &mockJobsRepo{}
	uc := newRecommendationUsecase(
		&mockUserRepo{users: map[uuid.UUID]user.User{userID: {ID: userID}}},
		&mockProfileRepo{}, &mockAlertRepo{},
		&mockApplicationRepo{appliedIDs: applied},
		jobs, &mockRecRepo{},
	)

	if _, _, err := uc.Generate(context.Background(), userID, GenerateParams{Page: 1, Limit: 10}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs.lastFilter.ExcludeIDs) != 2 {
		t.Fatalf("expected 2 excluded ids, got %d", len(jobs.lastFilter.ExcludeIDs))
	}
}

func TestGenerate_SortsAndPersistsPage(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	// Profile location matches only the Hanoi job, making it score highest.
	hanoi := candidateJob("Backend Engineer", "Hanoi", now.Add(-2*time.Hour))
	remote := candidateJob("Frontend Engineer", "Remote", now.Add(-1*time.Hour))
	saigon := candidateJob("Data Engineer", "Saigon", now)

	recs := &mockRecRepo{}
	uc := newRecommendationUsecase(
		&mockUserRepo{users: map[uuid.UUID]user.User{userID: {ID: userID}}},
		&mockProfileRepo{profile: &user.Profile{UserID: userID, Location: "Hanoi"}},
		&mockAlertRepo{}, &mockApplicationRepo{},
		&mockJobsRepo{candidates: []job.Candidate{remote, hanoi, saigon}},
		recs,
	)

	items, page, err := uc.Generate(context.Background(), userID, GenerateParams{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != hanoi.ID {
		t.Fatalf("expected location-matched job first")
	}
	// Equal scores fall back to newest job first.
	if items[1].ID != saigon.ID {
		t.Fatalf("expected newest job on tie, got %q", items[1].Title)
	}
	if items[0].RecommendationID == uuid.Nil || items[1].RecommendationID == uuid.Nil {
		t.Fatalf("expected persisted recommendation ids on returned items")
	}
	if len(recs.upserts) != 2 {
		t.Fatalf("expected upserts for the returned page only, got %d", len(recs.upserts))
	}
	if page.Total != 3 || page.TotalPages != 2 {
		t.Fatalf("unexpected pagination: %+v", page)
	}
}

func TestGenerate_ScoresStayInRange(t *testing.T) {
	userID := uuid.New()
	rich := candidateJob("Go Engineer", "Hanoi", time.Now())
	rich.Description = "Senior Go, React and TypeScript role."
	rich.Company.IsVerified = true
	rich.ApplicationCount = 50
	rich.ViewCount = 100

	uc := newRecommendationUsecase(
		&mockUserRepo{users: map[uuid.UUID]user.User{userID: {ID: userID}}},
		&mockProfileRepo{profile: &user.Profile{
			UserID:     userID,
			Skills:     "Go,React,TypeScript",
			Location:   "Hanoi",
			Experience: "Senior engineer",
		}},
		&mockAlertRepo{alerts: []user.JobAlert{{Keywords: "go"}}},
		&mockApplicationRepo{},
		&mockJobsRepo{candidates: []job.Candidate{rich}},
		&mockRecRepo{},
	)

	items, _, err := uc.Generate(context.Background(), userID, GenerateParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, it := range items {
		if it.Score < 0 || it.Score > 1 {
			t.Fatalf("score out of range: %f", it.Score)
		}
	}
}

func TestGenerate_NoProfileNoAlerts(t *testing.T) {
	userID := uuid.New()
	plain := candidateJob("Backend Engineer", "Hanoi", time.Now())

	uc := newRecommendationUsecase(
		&mockUserRepo{users: map[uuid.UUID]user.User{userID: {ID: userID}}},
		&mockProfileRepo{}, &mockAlertRepo{}, &mockApplicationRepo{},
		&mockJobsRepo{candidates: []job.Candidate{plain}},
		&mockRecRepo{},
	)

	items, _, err := uc.Generate(context.Background(), userID, GenerateParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Score != 0.5 {
		t.Fatalf("expected base score 0.5, got %f", items[0].Score)
	}
	if len(items[0].Reasons) != 0 {
		t.Fatalf("expected no reasons, got %v", items[0].Reasons)
	}
}

func TestUpdateFeedback_NotFound(t *testing.T) {
	uc := newRecommendationUsecase(
		&mockUserRepo{}, &mockProfileRepo{}, &mockAlertRepo{}, &mockApplicationRepo{},
		&mockJobsRepo{}, &mockRecRepo{notFound: true},
	)

	_, err := uc.UpdateFeedback(context.Background(), uuid.New(), FeedbackInput{JobID: uuid.New(), Score: 0.8})
	if !errors.Is(err, ErrRecommendationNotFound) {
		t.Fatalf("expected ErrRecommendationNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	uc := newRecommendationUsecase(
		&mockUserRepo{}, &mockProfileRepo{}, &mockAlertRepo{}, &mockApplicationRepo{},
		&mockJobsRepo{}, &mockRecRepo{notFound: true},
	)

	if err := uc.Delete(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrRecommendationNotFound) {
		t.Fatalf("expected ErrRecommendationNotFound, got %v", err)
	}
}
