package matching

import (
	"strings"

	"placement-match/internal/domain/candidate"
	"placement-match/internal/domain/job"
)

const notSpecified = "Not specified"

// JobText renders a job into the canonical text used for embedding.
// The output is deterministic: identical jobs always produce byte-identical
// text, which keeps embedding cache keys stable.
func JobText(j job.Job) string {
	location := j.Location
	if strings.TrimSpace(location) == "" {
		location = notSpecified
	}
	salary := j.SalaryRange
	if strings.TrimSpace(salary) == "" {
		salary = notSpecified
	}

	lines := []string{
		"Job Title: " + j.Title,
		"Company: " + j.Company,
		"Job Type: " + j.JobType,
		"Location: " + location,
		"Salary Range: " + salary,
		"Description: " + j.Description,
		"Requirements: " + strings.Join(j.Requirements, " "),
	}
	return strings.Join(lines, "\n")
}

// CandidateText renders a candidate profile into the canonical text used for
// embedding. Absent sections contribute empty segments rather than
// placeholder text, so a sparse profile never pollutes the embedding.
func CandidateText(c candidate.Candidate) string {
	p := c.Profile

	education := make([]string, 0, len(p.Education))
	for _, e := range p.Education {
		education = append(education, e.Degree+" "+e.Field+" "+e.Institution)
	}

	experience := make([]string, 0, len(p.Experience))
	for _, e := range p.Experience {
		experience = append(experience, e.Description)
	}

	lines := []string{
		"Student Profile",
		"Skills: " + strings.Join(p.Skills, " "),
		"Education: " + strings.Join(education, " "),
		"Experience: " + strings.Join(experience, " "),
		"Bio: " + p.Bio,
		"Interests: " + strings.Join(p.Interests, " "),
	}
	return strings.Join(lines, "\n")
}
