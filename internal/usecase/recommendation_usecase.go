package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/domain/scoring"
	"careerhub/internal/domain/user"
	"careerhub/internal/repository"
)

type GenerateParams struct {
	Page  int
	Limit int
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// RecommendedJob is a candidate job annotated with its computed score, the
// ordered reasons behind it, and the id of the persisted recommendation row.
type RecommendedJob struct {
	job.Candidate
	RecommendationID uuid.UUID `json:"recommendation_id"`
	Score            float64   `json:"score"`
	Reasons          []string  `json:"reasons"`
}

type FeedbackInput struct {
	JobID  uuid.UUID
	Score  float64
	Reason *string
}

type RecommendationUsecase interface {
	Generate(ctx context.Context, userID uuid.UUID, params GenerateParams) ([]RecommendedJob, Pagination, error)
	ListSaved(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.SavedRecommendationRow, Pagination, error)
	UpdateFeedback(ctx context.Context, userID uuid.UUID, in FeedbackInput) (repository.Recommendation, error)
	Delete(ctx context.Context, userID, jobID uuid.UUID) error
}

type Recommendation struct {
	users        user.Repository
	profiles     repository.ProfileRepository
	alerts       repository.JobAlertRepository
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	recs         repository.RecommendationRepository
	scorer       scoring.Scorer
}

func NewRecommendationUsecase(
	users user.Repository,
	profiles repository.ProfileRepository,
	alerts repository.JobAlertRepository,
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	recs repository.RecommendationRepository,
	scorer scoring.Scorer,
) *Recommendation {
	return &Recommendation{
		users:        users,
		profiles:     profiles,
		alerts:       alerts,
		applications: applications,
		jobs:         jobs,
		recs:         recs,
		scorer:       scorer,
	}
}

// Generate scores every open job the user has not applied to, sorts by score
// descending (newest job first on equal scores), persists the requested page
// via upsert and returns it.
func (u *Recommendation) Generate(ctx context.Context, userID uuid.UUID, params GenerateParams) ([]RecommendedJob, Pagination, error) {
	if userID == uuid.Nil {
		return nil, Pagination{}, ErrUnauthorized
	}
	page, limit := normalizePaging(params.Page, params.Limit)

	if _, err := u.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, Pagination{}, ErrUserNotFound
		}
		return nil, Pagination{}, ErrInternal
	}

	var scoringProfile *scoring.Profile
	profile, err := u.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		scoringProfile = &scoring.Profile{
			Skills:     profile.Skills,
			Location:   profile.Location,
			Experience: profile.Experience,
		}
	case errors.Is(err, repository.ErrProfileNotFound):
		// No profile yet; base score plus job-only bonuses still apply.
	default:
		return nil, Pagination{}, ErrInternal
	}

	userAlerts, err := u.alerts.ListByUser(ctx, userID)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	scoringAlerts := make([]scoring.Alert, 0, len(userAlerts))
	for _, a := range userAlerts {
		scoringAlerts = append(scoringAlerts, scoring.Alert{
			Keywords: a.Keywords,
			Location: a.Location,
			Type:     a.Type,
		})
	}

	appliedIDs, err := u.applications.ListAppliedJobIDs(ctx, userID)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}

	candidates, err := u.jobs.ListCandidates(ctx, repository.CandidateFilter{
		ExcludeIDs: appliedIDs,
		Alerts:     userAlerts,
	})
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}

	scored := make([]RecommendedJob, 0, len(candidates))
	for _, c := range candidates {
		result := u.scorer.Score(scoringProfile, scoringAlerts, scoring.Job{
			Title:           c.Title,
			Description:     c.Description,
			Requirements:    c.Requirements,
			Location:        c.Location,
			Type:            c.Type,
			CompanyVerified: c.Company.IsVerified,
			Applications:    c.ApplicationCount,
			Views:           c.ViewCount,
		})
		scored = append(scored, RecommendedJob{
			Candidate: c,
			Score:     result.Score,
			Reasons:   result.Reasons,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].CreatedAt.After(scored[j].CreatedAt)
	})

	total := len(scored)
	pageItems := pageSlice(scored, page, limit)

	for i := range pageItems {
		id, err := u.recs.Upsert(ctx, repository.RecommendationUpsert{
			UserID: userID,
			JobID:  pageItems[i].ID,
			Score:  pageItems[i].Score,
			Reason: strings.Join(pageItems[i].Reasons, "; "),
		})
		if err != nil {
			return nil, Pagination{}, ErrInternal
		}
		pageItems[i].RecommendationID = id
	}

	return pageItems, paginate(page, limit, total), nil
}

func (u *Recommendation) ListSaved(ctx context.Context, userID uuid.UUID, page, limit int) ([]repository.SavedRecommendationRow, Pagination, error) {
	if userID == uuid.Nil {
		return nil, Pagination{}, ErrUnauthorized
	}
	page, limit = normalizePaging(page, limit)

	rows, total, err := u.recs.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}
	return rows, paginate(page, limit, total), nil
}

// UpdateFeedback overwrites the stored score (and optionally the reason) for
// an existing recommendation. The score is validated at the HTTP boundary and
// stored as given.
func (u *Recommendation) UpdateFeedback(ctx context.Context, userID uuid.UUID, in FeedbackInput) (repository.Recommendation, error) {
	if userID == uuid.Nil {
		return repository.Recommendation{}, ErrUnauthorized
	}
	if in.JobID == uuid.Nil {
		return repository.Recommendation{}, ErrInvalidInput
	}

	rec, err := u.recs.UpdateFeedback(ctx, userID, in.JobID, in.Score, in.Reason)
	if err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return repository.Recommendation{}, ErrRecommendationNotFound
		}
		return repository.Recommendation{}, ErrInternal
	}
	return rec, nil
}

func (u *Recommendation) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return ErrInvalidInput
	}

	if err := u.recs.Delete(ctx, userID, jobID); err != nil {
		if errors.Is(err, repository.ErrRecommendationNotFound) {
			return ErrRecommendationNotFound
		}
		return ErrInternal
	}
	return nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	return page, limit
}

func pageSlice(items []RecommendedJob, page, limit int) []RecommendedJob {
	start := (page - 1) * limit
	if start >= len(items) {
		return []RecommendedJob{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func paginate(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
