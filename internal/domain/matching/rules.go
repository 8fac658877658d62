package matching

import (
	"math"
	"strings"

	"placement-match/internal/domain/candidate"
)

// Weight tables for the two rule scores. The coarse boost score splits
// 0.4/0.3/0.3 across skills/education/experience; the detailed fallback
// score splits 0.5/0.25/0.20/0.05 across skills/education/experience/
// completeness. The tables are intentionally kept separate: existing callers
// depend on each formula as-is.

// BoostScore is the coarse rule score layered on top of semantic similarity.
// The orchestrator caps its contribution at 20% of the final score.
func BoostScore(p candidate.Profile, requirements []string) float64 {
	reqs := normalizeTerms(requirements)
	score := 0.0

	// Skill overlap: distinct intersection over requirement count.
	skills := normalizeTerms(p.Skills)
	if len(skills) > 0 && len(reqs) > 0 {
		score += exactMatchRatio(skills, reqs) * 0.4
	}

	// Education relevance: flat bonus, first matching entry wins.
	if len(reqs) > 0 {
	education:
		for _, e := range p.Education {
			field := normalizeTerm(e.Field)
			degree := normalizeTerm(e.Degree)
			for _, r := range reqs {
				if containsEither(field, r) || containsEither(degree, r) {
					score += 0.3
					break education
				}
			}
		}
	}

	// Experience scales with total duration and saturates at 24 months.
	months := totalMonths(p.Experience)
	if months > 0 {
		score += math.Min(0.3, float64(months)/24*0.3)
	}

	return clamp01(score)
}

// DetailedScore is the standalone fallback score used when semantic matching
// is unavailable or returns nothing.
func DetailedScore(p candidate.Profile, requirements []string) float64 {
	reqs := normalizeTerms(requirements)
	total := 0.0

	// Skills: exact matches weigh 0.4, partial substring matches 0.1.
	skills := normalizeTerms(p.Skills)
	if len(skills) > 0 && len(reqs) > 0 {
		partial := 0
		for _, s := range skills {
			for _, r := range reqs {
				if containsEither(s, r) {
					partial++
					break
				}
			}
		}
		total += exactMatchRatio(skills, reqs) * 0.4
		total += float64(partial) / float64(len(reqs)) * 0.1
	}

	// Education: only the first (highest-ranked) entry is scored.
	if len(p.Education) > 0 {
		e := p.Education[0]
		field := normalizeTerm(e.Field)
		degree := normalizeTerm(e.Degree)

		eduScore := 0.0
		for _, r := range reqs {
			if containsEither(field, r) || containsEither(degree, r) {
				eduScore += 0.15
				break
			}
		}
		if e.GPA >= 3.5 {
			eduScore += 0.05
		} else if e.GPA >= 3.0 {
			eduScore += 0.03
		}
		if strings.Contains(degree, "master") || strings.Contains(degree, "phd") {
			eduScore += 0.02
		}
		total += math.Min(0.25, eduScore)
	}

	// Experience: duration tiers plus a relevance bump per entry whose
	// description mentions a requirement, capped at the 0.20 ceiling.
	if len(p.Experience) > 0 {
		expScore := 0.0
		switch months := totalMonths(p.Experience); {
		case months >= 24:
			expScore += 0.15
		case months >= 12:
			expScore += 0.10
		case months >= 6:
			expScore += 0.05
		}
		for _, e := range p.Experience {
			desc := normalizeTerm(e.Description)
			if desc == "" {
				continue
			}
			for _, r := range reqs {
				if strings.Contains(desc, r) {
					expScore += 0.05
					break
				}
			}
		}
		total += math.Min(0.20, expScore)
	}

	// Profile completeness: a token bonus per populated section.
	if strings.TrimSpace(p.Bio) != "" {
		total += 0.01
	}
	if len(p.Skills) > 0 {
		total += 0.01
	}
	if len(p.Education) > 0 {
		total += 0.01
	}
	if len(p.Experience) > 0 {
		total += 0.01
	}
	if len(p.Interests) > 0 {
		total += 0.01
	}

	return clamp01(total)
}

func exactMatchRatio(skills, reqs []string) float64 {
	reqSet := make(map[string]struct{}, len(reqs))
	for _, r := range reqs {
		reqSet[r] = struct{}{}
	}

	matched := make(map[string]struct{})
	for _, s := range skills {
		if _, ok := reqSet[s]; ok {
			matched[s] = struct{}{}
		}
	}
	return float64(len(matched)) / float64(len(reqs))
}

func totalMonths(experience []candidate.Experience) int {
	total := 0
	for _, e := range experience {
		if e.DurationMonths > 0 {
			total += e.DurationMonths
		}
	}
	return total
}

// containsEither reports substring containment in either direction. Empty
// terms never match: an empty string is a substring of everything, which
// would hand out bonuses for blank profile fields.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeTerms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := normalizeTerm(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
