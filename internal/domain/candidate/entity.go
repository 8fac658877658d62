package candidate

import "github.com/google/uuid"

const RoleStudent = "student"

// Candidate is a student profile eligible for job matching. The profile
// document lives in a jsonb column owned by the user subsystem; matching
// treats it as read-only input.
type Candidate struct {
	ID      uuid.UUID
	Email   string
	Role    string
	Active  bool
	Profile Profile
}

// Profile is the typed view of the semi-structured profile document. Absent
// sections decode to zero values; every consumer resolves defaults through
// the struct instead of raw map lookups.
type Profile struct {
	Name       string       `json:"name,omitempty"`
	Bio        string       `json:"bio,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
	Interests  []string     `json:"interests,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
}

type Education struct {
	Degree      string  `json:"degree,omitempty"`
	Field       string  `json:"field,omitempty"`
	Institution string  `json:"institution,omitempty"`
	GPA         float64 `json:"gpa,omitempty"`
}

type Experience struct {
	Description    string `json:"description,omitempty"`
	DurationMonths int    `json:"duration_months,omitempty"`
}

// Matchable reports whether the candidate belongs in the matching pool.
func (c Candidate) Matchable() bool {
	return c.Active && c.Role == RoleStudent
}
