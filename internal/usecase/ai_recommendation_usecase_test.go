package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"careerhub/internal/domain/job"
	"careerhub/internal/infrastructure/ai"
)

type mockMatcher struct {
	ids []uuid.UUID
	err error
}

func (m mockMatcher) JobMatches(context.Context, uuid.UUID, int) ([]uuid.UUID, error) {
	return m.ids, m.err
}

func TestAIRecommend_EmptyIsSoftFailure(t *testing.T) {
	uc := NewAIRecommendationUsecase(mockMatcher{}, &mockJobsRepo{}, &mockRecRepo{})

	res, err := uc.Recommend(context.Background(), uuid.New(), 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Recommendations) != 0 {
		t.Fatalf("expected empty result, got %d", len(res.Recommendations))
	}
	if res.Message == "" {
		t.Fatalf("expected explanatory message on empty result")
	}
}

func TestAIRecommend_UnavailableIsTyped(t *testing.T) {
	uc := NewAIRecommendationUsecase(mockMatcher{err: ai.ErrUnavailable}, &mockJobsRepo{}, &mockRecRepo{})

	_, err := uc.Recommend(context.Background(), uuid.New(), 10)
	if !errors.Is(err, ErrAIServiceUnavailable) {
		t.Fatalf("expected ErrAIServiceUnavailable, got %v", err)
	}
}

func TestAIRecommend_SyntheticScoresFollowRemoteOrder(t *testing.T) {
	first := candidateJob("Go Engineer", "Hanoi", time.Now())
	second := candidateJob("Platform Engineer", "Remote", time.Now())
	closed := uuid.New() // not returned by ListOpenByIDs

	recs := &mockRecRepo{}
	uc := NewAIRecommendationUsecase(
		mockMatcher{ids: []uuid.UUID{first.ID, closed, second.ID}},
		&mockJobsRepo{openByIDs: []job.Candidate{second, first}},
		recs,
	)

	res, err := uc.Recommend(context.Background(), uuid.New(), 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(res.Recommendations))
	}
	if res.Recommendations[0].ID != first.ID || res.Recommendations[1].ID != second.ID {
		t.Fatalf("expected remote ordering preserved")
	}
	if res.Recommendations[0].Score != 1.0 {
		t.Fatalf("expected top score 1.0, got %f", res.Recommendations[0].Score)
	}
	if res.Recommendations[1].Score != 0.9 {
		t.Fatalf("expected second score 0.9, got %f", res.Recommendations[1].Score)
	}
	if len(recs.upserts) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(recs.upserts))
	}
	if recs.upserts[0].Reason == "" {
		t.Fatalf("expected fixed reason on persisted rows")
	}
}
