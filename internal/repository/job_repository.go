package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"placement-match/internal/database"
	"placement-match/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository interface {
	// FindByID returns nil without error when no job exists for the id.
	FindByID(ctx context.Context, id uuid.UUID) (*job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, title, company, job_type, location, salary_range, description, requirements, created_at
		 FROM jobs
		 WHERE id = $1`,
		id,
	)

	var (
		j            job.Job
		title        *string
		company      *string
		jobType      *string
		location     *string
		salaryRange  *string
		description  *string
		requirements []byte
	)
	if err := row.Scan(&j.ID, &title, &company, &jobType, &location, &salaryRange, &description, &requirements, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	j.Title = deref(title)
	j.Company = deref(company)
	j.JobType = deref(jobType)
	j.Location = deref(location)
	j.SalaryRange = deref(salaryRange)
	j.Description = deref(description)
	j.Requirements = decodeRequirements(requirements)

	return &j, nil
}

// decodeRequirements accepts both shapes the jsonb column carries in
// practice: an array of requirement strings, or a single delimited blob
// which counts as one requirement.
func decodeRequirements(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, s := range list {
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && strings.TrimSpace(single) != "" {
		return []string{single}
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
