package job

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posted opportunity with requirements to match candidates against.
// Owned by the posting subsystem; read-only input for matching.
type Job struct {
	ID           uuid.UUID
	Title        string
	Company      string
	JobType      string
	Location     string
	SalaryRange  string
	Description  string
	Requirements []string
	CreatedAt    time.Time
}
