package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type suggestionCacheKeyInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func SuggestionCacheKey(query string, limit int) string {
	in := suggestionCacheKeyInput{
		Query: normalizeCacheValue(query),
		Limit: limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "skills:suggest:" + hex.EncodeToString(sum[:])
}
