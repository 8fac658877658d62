package repository

import (
	"context"
	"encoding/json"
	"time"

	"placement-match/internal/database"

	"github.com/google/uuid"
)

type MatchUpsert struct {
	StudentID     uuid.UUID
	JobID         uuid.UUID
	Score         float64
	MatchedSkills []string
	Explanation   string
	Method        string
	CreatedAt     time.Time
}

type MatchRepository interface {
	// Upsert is keyed on (student_id, job_id); a later call for the same
	// pair overwrites score, skills and explanation in place.
	Upsert(ctx context.Context, m MatchUpsert) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, m MatchUpsert) error {
	if m.StudentID == uuid.Nil || m.JobID == uuid.Nil {
		return nil
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	skills := m.MatchedSkills
	if skills == nil {
		skills = []string{}
	}
	encoded, err := json.Marshal(skills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO ai_matches (id, student_id, job_id, match_score, matched_skills, explanation, method, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (student_id, job_id) DO UPDATE SET
			match_score = EXCLUDED.match_score,
			matched_skills = EXCLUDED.matched_skills,
			explanation = EXCLUDED.explanation,
			method = EXCLUDED.method,
			created_at = EXCLUDED.created_at`,
		uuid.New(),
		m.StudentID,
		m.JobID,
		m.Score,
		encoded,
		m.Explanation,
		m.Method,
		m.CreatedAt,
	)
	return err
}
