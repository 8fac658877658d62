package repository

import (
	"context"
	"encoding/json"

	"placement-match/internal/database"
	"placement-match/internal/domain/candidate"
)

type CandidateRepository interface {
	// ListActive returns the matchable candidate pool in stable load order.
	ListActive(ctx context.Context) ([]candidate.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) ListActive(ctx context.Context) ([]candidate.Candidate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, email, role, is_active, profile_data
		 FROM users
		 WHERE role = $1 AND is_active = TRUE
		 ORDER BY created_at ASC`,
		candidate.RoleStudent,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		var (
			c       candidate.Candidate
			email   *string
			profile []byte
		)
		if err := rows.Scan(&c.ID, &email, &c.Role, &c.Active, &profile); err != nil {
			return nil, err
		}
		c.Email = deref(email)
		if len(profile) > 0 {
			// A malformed document leaves the profile empty; the candidate
			// still participates with whatever scored zero.
			_ = json.Unmarshal(profile, &c.Profile)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
