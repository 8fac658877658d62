package matching

import "fmt"

// SemanticExplanation describes how a semantic match score was assembled.
func SemanticExplanation(similarity, boost, final float64) string {
	return fmt.Sprintf("Semantic similarity: %.3f, Rule boost: %.3f, Final score: %.3f", similarity, boost, final)
}

// RuleExplanation describes a score produced by the rule-based fallback.
func RuleExplanation(score float64) string {
	return fmt.Sprintf("Rule-based matching score: %.3f", score)
}

// QualityLabel bands a score into a human-readable label.
func QualityLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "excellent"
	case score >= 0.6:
		return "good"
	case score >= 0.4:
		return "fair"
	default:
		return "basic"
	}
}
