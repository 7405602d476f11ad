package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RecommendationCache is the optional read-through cache for ranked lists.
// Implementations must treat unavailability as a miss, never as a failure.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const recommendationCacheTTL = 5 * time.Minute

type jobRecCacheKeyInput struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Skills      string    `json:"skills"`
	Limit       int       `json:"limit"`
}

type candidateRecCacheKeyInput struct {
	JobID        uuid.UUID `json:"job_id"`
	Requirements string    `json:"requirements"`
	Limit        int       `json:"limit"`
}

// JobRecommendationsCacheKey hashes the candidate, their current skill
// string and the limit. Folding the skills in means a profile write-back
// naturally moves to a fresh key instead of needing invalidation.
func JobRecommendationsCacheKey(candidateID uuid.UUID, skills string, limit int) string {
	return recCacheKey("rec:jobs:", jobRecCacheKeyInput{CandidateID: candidateID, Skills: skills, Limit: limit})
}

func CandidateRecommendationsCacheKey(jobID uuid.UUID, requirements string, limit int) string {
	return recCacheKey("rec:candidates:", candidateRecCacheKeyInput{JobID: jobID, Requirements: requirements, Limit: limit})
}

func recCacheKey(prefix string, in any) string {
	raw, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return prefix + hex.EncodeToString(sum[:])
}
