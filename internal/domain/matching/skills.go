package matching

import "strings"

// ExtractMatchedSkills returns the candidate skills that overlap the
// requirement list, deduplicated, in the candidate's original order and
// casing. Exact matches are case-insensitive; partial substring matches
// (either direction) only count when the contained term is longer than three
// characters, so trivial fragments never count as evidence.
func ExtractMatchedSkills(candidateSkills, requirements []string) []string {
	if len(candidateSkills) == 0 || len(requirements) == 0 {
		return nil
	}
	reqs := normalizeTerms(requirements)

	matched := make([]string, 0, len(candidateSkills))
	seen := make(map[string]struct{}, len(candidateSkills))
	for _, raw := range candidateSkills {
		skill := normalizeTerm(raw)
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		if skillMatches(skill, reqs) {
			matched = append(matched, raw)
		}
	}
	return matched
}

func skillMatches(skill string, reqs []string) bool {
	for _, r := range reqs {
		if skill == r {
			return true
		}
		if len(skill) > 3 && strings.Contains(r, skill) {
			return true
		}
		if len(r) > 3 && strings.Contains(skill, r) {
			return true
		}
	}
	return false
}
