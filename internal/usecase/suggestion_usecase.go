package usecase

import (
	"context"
	"strings"
	"time"

	"career-map/internal/repository"
)

const (
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 50
)

type SuggestionItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type SuggestionCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type SuggestionUsecase interface {
	SearchSuggestions(ctx context.Context, query string, limit int) ([]SuggestionItem, error)
}

type Suggestion struct {
	repo  repository.SkillSuggestionRepository
	cache SuggestionCache
	ttl   time.Duration
}

func NewSuggestionUsecase(repo repository.SkillSuggestionRepository, cache SuggestionCache, ttl time.Duration) *Suggestion {
	return &Suggestion{repo: repo, cache: cache, ttl: ttl}
}

func (u *Suggestion) SearchSuggestions(ctx context.Context, query string, limit int) ([]SuggestionItem, error) {
	query = strings.TrimSpace(query)
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = defaultSuggestionLimit
	}
	if limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}

	key := SuggestionCacheKey(query, limit)
	if u.cache != nil {
		var cached []SuggestionItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := u.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SuggestionItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, SuggestionItem{Name: r.Name, Category: r.Category})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, u.ttl)
	}
	return out, nil
}
