package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"careerhub/internal/repository"
)

// SearchCache is the subset of the redis cache the job usecase needs; a nil
// implementation reads as miss and writes as no-op.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateJobListings(ctx context.Context) error
}

type jobSearchCacheKeyInput struct {
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func JobsSearchCacheKey(f repository.SearchFilter) string {
	in := jobSearchCacheKeyInput{
		Keyword:  normalizeSearchValue(f.Keyword),
		Location: normalizeSearchValue(f.Location),
		Type:     normalizeSearchValue(f.Type),
		Limit:    f.Limit,
		Offset:   f.Offset,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}
