// Package matching computes the compatibility score between one candidate
// profile and one job posting. Everything here is a pure function of its
// inputs; vocabulary lookups happen upstream at profile-save time.
package matching

import (
	"math"
	"strings"
)

// Sub-score weights. Empirical constants carried over from production
// behavior; tune together, they must sum to 1.
const (
	weightSkills     = 0.50
	weightExperience = 0.25
	weightLocation   = 0.15
	weightSalary     = 0.10
)

// WorkMode values accepted on a job posting.
const (
	WorkModeOnsite = "onsite"
	WorkModeRemote = "remote"
	WorkModeHybrid = "hybrid"
)

// Profile is the candidate side of a match, read-only here. A nil *Profile
// means the candidate has not completed a profile.
type Profile struct {
	Skills          string
	ExperienceYears int
	Location        string
	City            string
	State           string
	DesiredSalary   *float64
}

// FullLocation prefers "city, state" and falls back to the free-form
// location field.
func (p Profile) FullLocation() string {
	if p.City != "" && p.State != "" {
		return p.City + ", " + p.State
	}
	if p.Location != "" {
		return p.Location
	}
	return p.City
}

// SkillList splits the stored comma-joined skill string into trimmed
// lowercase terms.
func (p Profile) SkillList() []string {
	return SplitTerms(p.Skills)
}

// Job is the posting side of a match, read-only here.
type Job struct {
	Requirements    string
	ExperienceYears int
	WorkMode        string
	Location        string
	SalaryMin       *float64
	SalaryMax       *float64
}

// RequirementList splits the comma-joined requirements into trimmed
// lowercase terms.
func (j Job) RequirementList() []string {
	return SplitTerms(j.Requirements)
}

// SplitTerms splits a comma-joined term string, trimming, lowercasing and
// dropping empty tokens.
func SplitTerms(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Score returns the weighted compatibility score in [0, 1], rounded to four
// decimal places. A missing profile scores exactly 0.
func Score(profile *Profile, job Job) float64 {
	if profile == nil {
		return 0.0
	}

	total := SkillsScore(*profile, job)*weightSkills +
		ExperienceScore(*profile, job)*weightExperience +
		LocationScore(*profile, job)*weightLocation +
		SalaryScore(*profile, job)*weightSalary

	return math.Round(total*10000) / 10000
}

// SkillsScore blends exact term overlap (60%) with TF-IDF cosine similarity
// of the raw skill strings (40%). Either side empty scores 0.
func SkillsScore(profile Profile, job Job) float64 {
	if profile.Skills == "" || job.Requirements == "" {
		return 0.0
	}

	candidateSet := termSet(profile.SkillList())
	requirementSet := termSet(job.RequirementList())

	exactScore := 0.0
	if len(requirementSet) > 0 {
		matches := 0
		for term := range requirementSet {
			if candidateSet[term] {
				matches++
			}
		}
		exactScore = float64(matches) / float64(len(requirementSet))
	}

	similarity, err := CosineSimilarity(profile.Skills, job.Requirements)
	if err != nil {
		// Degenerate vocabulary; the exact overlap still counts.
		similarity = 0.0
	}

	return exactScore*0.6 + similarity*0.4
}

// ExperienceScore gives full credit at or above the requirement and tiered
// partial credit below it.
func ExperienceScore(profile Profile, job Job) float64 {
	required := job.ExperienceYears
	if required <= 0 {
		return 1.0
	}

	have := profile.ExperienceYears
	if have < 0 {
		have = 0
	}

	switch {
	case have >= required:
		return 1.0
	case float64(have) >= float64(required)*0.7:
		return 0.8
	case float64(have) >= float64(required)*0.5:
		return 0.5
	default:
		return float64(have) / float64(required)
	}
}

// LocationScore compares normalized location strings unless the job is
// remote. Checks run most-specific first since an exact match is also a
// substring match.
func LocationScore(profile Profile, job Job) float64 {
	if job.WorkMode == WorkModeRemote {
		return 1.0
	}

	candidateLoc := strings.ToLower(strings.TrimSpace(profile.FullLocation()))
	jobLoc := strings.ToLower(strings.TrimSpace(job.Location))

	if candidateLoc == "" || jobLoc == "" {
		return 0.5
	}

	if candidateLoc == jobLoc {
		return 1.0
	}

	if strings.Contains(jobLoc, candidateLoc) || strings.Contains(candidateLoc, jobLoc) {
		return 0.8
	}

	candidateCity := strings.TrimSpace(strings.SplitN(candidateLoc, ",", 2)[0])
	jobCity := strings.TrimSpace(strings.SplitN(jobLoc, ",", 2)[0])
	if candidateCity == jobCity {
		return 0.9
	}

	if job.WorkMode == WorkModeHybrid {
		return 0.5
	}
	return 0.3
}

// SalaryScore rates how the desired salary sits against the job's range.
// Missing data on either side is neutral (0.7), not an error. When the job
// states only a minimum, the maximum is derived as min*1.5; with no minimum
// the bounds collapse to zero.
func SalaryScore(profile Profile, job Job) float64 {
	if profile.DesiredSalary == nil || *profile.DesiredSalary == 0 {
		return 0.7
	}
	if floatOrZero(job.SalaryMin) == 0 && floatOrZero(job.SalaryMax) == 0 {
		return 0.7
	}

	salaryMin := floatOrZero(job.SalaryMin)
	salaryMax := 0.0
	if salaryMin != 0 {
		salaryMax = floatOrZero(job.SalaryMax)
		if salaryMax == 0 {
			salaryMax = salaryMin * 1.5
		}
	}

	desired := *profile.DesiredSalary

	if salaryMin <= desired && desired <= salaryMax {
		return 1.0
	}
	if desired < salaryMin {
		// Candidate costs less than the floor, full credit.
		return 1.0
	}

	switch {
	case desired <= salaryMax*1.2:
		return 0.7
	case desired <= salaryMax*1.5:
		return 0.4
	default:
		return 0.1
	}
}

// MatchedMissing returns the requirement terms the candidate has and the ones
// they lack, both in the requirement's first-seen order. A nil profile
// matches nothing.
func MatchedMissing(profile *Profile, job Job) (matched, missing []string) {
	matched = []string{}
	missing = []string{}

	var candidateSet map[string]bool
	if profile != nil {
		candidateSet = termSet(profile.SkillList())
	}

	seen := map[string]bool{}
	for _, term := range job.RequirementList() {
		if seen[term] {
			continue
		}
		seen[term] = true
		if candidateSet[term] {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}
	return matched, missing
}

func termSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
