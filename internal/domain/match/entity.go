package match

import (
	"time"

	"github.com/google/uuid"
)

const (
	MethodSemantic  = "semantic"
	MethodRuleBased = "rule_based"
	MethodNone      = "none"
	MethodError     = "error"
)

// Result is one scored candidate-job pairing. Exactly one Result exists per
// (student, job) pair in the match store; recomputing overwrites it in place.
type Result struct {
	StudentID     uuid.UUID `json:"student_id"`
	JobID         uuid.UUID `json:"job_id"`
	Score         float64   `json:"match_score"`
	MatchedSkills []string  `json:"matched_skills"`
	Explanation   string    `json:"explanation"`
	Method        string    `json:"method"`
	CreatedAt     time.Time `json:"created_at"`
}
