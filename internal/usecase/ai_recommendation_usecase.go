package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/infrastructure/ai"
	"careerhub/internal/repository"
)

var ErrAIServiceUnavailable = errors.New("AI service unavailable")

const aiReason = "AI-powered recommendation based on profile and preferences"

// JobMatcher is the remote ranking service; ai.Client implements it.
type JobMatcher interface {
	JobMatches(ctx context.Context, userID uuid.UUID, k int) ([]uuid.UUID, error)
}

type AIRecommendationResult struct {
	Recommendations []RecommendedJob `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}

type AIRecommendationUsecase interface {
	Recommend(ctx context.Context, userID uuid.UUID, k int) (AIRecommendationResult, error)
}

type AIRecommendation struct {
	matcher JobMatcher
	jobs    repository.JobRepository
	recs    repository.RecommendationRepository
}

func NewAIRecommendationUsecase(matcher JobMatcher, jobs repository.JobRepository, recs repository.RecommendationRepository) *AIRecommendation {
	return &AIRecommendation{matcher: matcher, jobs: jobs, recs: recs}
}

// Recommend asks the remote service for a ranked list of job ids, keeps only
// jobs that are still open, assigns a synthetic descending score and persists
// each row. An unreachable service is a typed failure; an empty ranking is a
// soft empty result.
func (u *AIRecommendation) Recommend(ctx context.Context, userID uuid.UUID, k int) (AIRecommendationResult, error) {
	if userID == uuid.Nil {
		return AIRecommendationResult{}, ErrUnauthorized
	}
	if k <= 0 {
		k = 10
	}
	if k > 50 {
		k = 50
	}

	ids, err := u.matcher.JobMatches(ctx, userID, k)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) || errors.Is(err, ai.ErrNotConfigured) {
			return AIRecommendationResult{}, ErrAIServiceUnavailable
		}
		return AIRecommendationResult{}, ErrInternal
	}
	if len(ids) == 0 {
		return AIRecommendationResult{
			Recommendations: []RecommendedJob{},
			Message:         "No recommendations found from AI service",
		}, nil
	}

	open, err := u.jobs.ListOpenByIDs(ctx, ids)
	if err != nil {
		return AIRecommendationResult{}, ErrInternal
	}
	byID := make(map[uuid.UUID]job.Candidate, len(open))
	for _, c := range open {
		byID[c.ID] = c
	}

	// Remote ordering wins: rank 0 scores 1.0, each next rank 0.1 less.
	out := make([]RecommendedJob, 0, len(open))
	rank := 0
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			continue
		}
		score := 1.0 - 0.1*float64(rank)
		if score < 0 {
			score = 0
		}
		rank++

		recID, err := u.recs.Upsert(ctx, repository.RecommendationUpsert{
			UserID: userID,
			JobID:  c.ID,
			Score:  score,
			Reason: aiReason,
		})
		if err != nil {
			return AIRecommendationResult{}, ErrInternal
		}

		out = append(out, RecommendedJob{
			Candidate:        c,
			RecommendationID: recID,
			Score:            score,
			Reasons:          []string{aiReason},
		})
	}

	if len(out) == 0 {
		return AIRecommendationResult{
			Recommendations: []RecommendedJob{},
			Message:         "No recommendations found from AI service",
		}, nil
	}
	return AIRecommendationResult{Recommendations: out}, nil
}
