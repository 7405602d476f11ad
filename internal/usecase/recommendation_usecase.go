package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"talentmatch/internal/domain/matching"
	"talentmatch/internal/repository"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

// recommendationFloor is the strict lower bound for a pair to appear in a
// ranked list; the pair's MatchResult row is persisted either way.
const recommendationFloor = 0.1

const defaultRecommendationLimit = 10

type JobRecommendation struct {
	Job           repository.Job `json:"job"`
	Score         float64        `json:"score"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
	Percentage    int            `json:"percentage"`
}

type CandidateRecommendation struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	Score         float64   `json:"score"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
	Percentage    int       `json:"percentage"`
}

type RecommendationUsecase interface {
	RecommendJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]JobRecommendation, error)
	RecommendCandidates(ctx context.Context, jobID uuid.UUID, limit int) ([]CandidateRecommendation, error)
	SkillGaps(ctx context.Context, candidateID uuid.UUID) ([]string, error)
}

type Recommendation struct {
	profiles repository.CandidateProfileRepository
	jobs     repository.JobRepository
	matches  repository.MatchResultRepository
	cache    RecommendationCache
	logger   *log.Logger
}

func NewRecommendationUsecase(
	profiles repository.CandidateProfileRepository,
	jobs repository.JobRepository,
	matches repository.MatchResultRepository,
	cache RecommendationCache,
	logger *log.Logger,
) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{profiles: profiles, jobs: jobs, matches: matches, cache: cache, logger: logger}
}

// RecommendJobs scores the candidate against every active job, persists a
// MatchResult per pair, and returns the pairs above the noise floor sorted
// by score. A candidate without a profile gets an empty list, not an error.
func (u *Recommendation) RecommendJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]JobRecommendation, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	profile, err := u.profiles.GetByUserID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return []JobRecommendation{}, nil
		}
		return nil, ErrInternal
	}

	cacheKey := JobRecommendationsCacheKey(candidateID, profile.Skills, limit)
	if u.cache != nil {
		var cached []JobRecommendation
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	mp := profile.Matching()
	out := make([]JobRecommendation, 0, len(jobs))
	for _, job := range jobs {
		mj := job.Matching()
		score := matching.Score(mp, mj)
		matched, missing := matching.MatchedMissing(mp, mj)

		u.persistMatch(ctx, repository.MatchResultUpsert{
			CandidateID:   candidateID,
			JobID:         job.ID,
			Score:         score,
			MatchedSkills: strings.Join(matched, ", "),
			MissingSkills: strings.Join(missing, ", "),
		})

		if score > recommendationFloor {
			out = append(out, JobRecommendation{
				Job:           job,
				Score:         score,
				MatchedSkills: matched,
				MissingSkills: missing,
				Percentage:    int(score * 100),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, recommendationCacheTTL); err != nil {
			u.logger.Printf("[Recommendation] cache set failed: %v", err)
		}
	}

	return out, nil
}

// RecommendCandidates is the company-facing mirror: every available
// candidate profile scored against one job.
func (u *Recommendation) RecommendCandidates(ctx context.Context, jobID uuid.UUID, limit int) ([]CandidateRecommendation, error) {
	if jobID == uuid.Nil {
		return nil, ErrJobNotFound
	}
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	cacheKey := CandidateRecommendationsCacheKey(job.ID, job.Requirements, limit)
	if u.cache != nil {
		var cached []CandidateRecommendation
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	profiles, err := u.profiles.ListAvailable(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	mj := job.Matching()
	out := make([]CandidateRecommendation, 0, len(profiles))
	for _, profile := range profiles {
		mp := profile.Matching()
		score := matching.Score(mp, mj)
		matched, missing := matching.MatchedMissing(mp, mj)

		u.persistMatch(ctx, repository.MatchResultUpsert{
			CandidateID:   profile.UserID,
			JobID:         job.ID,
			Score:         score,
			MatchedSkills: strings.Join(matched, ", "),
			MissingSkills: strings.Join(missing, ", "),
		})

		if score > recommendationFloor {
			out = append(out, CandidateRecommendation{
				CandidateID:   profile.UserID,
				Score:         score,
				MatchedSkills: matched,
				MissingSkills: missing,
				Percentage:    int(score * 100),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, recommendationCacheTTL); err != nil {
			u.logger.Printf("[Recommendation] cache set failed: %v", err)
		}
	}

	return out, nil
}

// SkillGaps tallies how often recent active jobs require terms the candidate
// lacks, most demanded first; ties keep scan order.
func (u *Recommendation) SkillGaps(ctx context.Context, candidateID uuid.UUID) ([]string, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	profile, err := u.profiles.GetByUserID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return []string{}, nil
		}
		return nil, ErrInternal
	}

	jobs, err := u.jobs.ListRecentActive(ctx, 0)
	if err != nil {
		return nil, ErrInternal
	}

	have := map[string]bool{}
	for _, term := range profile.Matching().SkillList() {
		have[term] = true
	}

	demand := map[string]int{}
	order := make([]string, 0)
	for _, job := range jobs {
		for _, term := range job.Matching().RequirementList() {
			if have[term] {
				continue
			}
			if _, ok := demand[term]; !ok {
				order = append(order, term)
			}
			demand[term]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return demand[order[i]] > demand[order[j]] })
	return order, nil
}

// persistMatch upserts the pair's snapshot. Persistence trouble degrades to a
// log line; the computed recommendation is still served.
func (u *Recommendation) persistMatch(ctx context.Context, m repository.MatchResultUpsert) {
	if err := u.matches.Upsert(ctx, m); err != nil {
		u.logger.Printf("[Recommendation] match upsert failed for candidate=%s job=%s: %v", m.CandidateID, m.JobID, err)
	}
}
