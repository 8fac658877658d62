package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"placement-match/internal/domain/candidate"
	"placement-match/internal/domain/job"
	"placement-match/internal/domain/match"
	"placement-match/internal/domain/matching"
	"placement-match/internal/repository"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("Job not found")

const (
	DefaultMinScore = 0.6
	DefaultLimit    = 50

	// The rule boost contributes at most 20% of a semantic score.
	boostWeight = 0.2
)

type MatchParams struct {
	MinScore float64
	Limit    int
}

// MatchOutcome is what every invocation returns. Errors never escape as raw
// faults: a failed run carries MethodUsed "error" and the message.
type MatchOutcome struct {
	Matches    []match.Result `json:"matches"`
	MethodUsed string         `json:"method_used"`
	Error      string         `json:"error,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

type BatchOutcome struct {
	MatchOutcome
	Notified int `json:"notified"`
}

type MatchingUsecase interface {
	FindMatches(ctx context.Context, jobID uuid.UUID, params MatchParams) MatchOutcome
	ProcessNewJob(ctx context.Context, jobID uuid.UUID, autoNotify bool) BatchOutcome
}

// Notifier receives high-scoring matches after a batch run. Delivery is a
// downstream concern; failures are logged and never abort the batch.
type Notifier interface {
	NotifyMatch(ctx context.Context, m match.Result) error
}

type Matching struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	matches    repository.MatchRepository
	embedder   *Embedder
	notifier   Notifier
	log        *log.Logger
	now        func() time.Time
}

func NewMatchingUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	matches repository.MatchRepository,
	embedder *Embedder,
	notifier Notifier,
	logger *log.Logger,
) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{
		jobs:       jobs,
		candidates: candidates,
		matches:    matches,
		embedder:   embedder,
		notifier:   notifier,
		log:        logger,
		now:        time.Now,
	}
}

// FindMatches scores every active candidate against the job. Semantic
// matching runs first; when it fails or yields nothing the rule-based
// fallback runs over the same pool with the same threshold and limit.
func (u *Matching) FindMatches(ctx context.Context, jobID uuid.UUID, params MatchParams) MatchOutcome {
	minScore := params.MinScore
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		u.log.Printf("matching job_id=%s status=error err=%v", jobID, err)
		return u.errorOutcome(err)
	}
	if j == nil {
		u.log.Printf("matching job_id=%s status=not_found", jobID)
		return MatchOutcome{
			Matches:    []match.Result{},
			MethodUsed: match.MethodNone,
			Error:      ErrJobNotFound.Error(),
			Timestamp:  u.now(),
		}
	}

	pool, err := u.candidates.ListActive(ctx)
	if err != nil {
		u.log.Printf("matching job_id=%s status=error err=%v", jobID, err)
		return u.errorOutcome(err)
	}
	u.log.Printf("matching job_id=%s candidates=%d min_score=%.2f limit=%d", j.ID, len(pool), minScore, limit)

	results, err := u.semanticPass(ctx, j, pool, minScore)
	if err != nil {
		u.log.Printf("matching job_id=%s phase=semantic status=failed err=%v", j.ID, err)
		if ctx.Err() != nil {
			return u.errorOutcome(ctx.Err())
		}
	}
	if err == nil && len(results) > 0 {
		return u.finish(ctx, j.ID, results, limit, match.MethodSemantic)
	}

	results, err = u.rulePass(ctx, j, pool, minScore)
	if err != nil {
		return u.errorOutcome(err)
	}
	return u.finish(ctx, j.ID, results, limit, match.MethodRuleBased)
}

// ProcessNewJob runs a wide matching pass for a freshly posted job and,
// when asked, hands every match scoring at least the notification threshold
// to the notifier.
func (u *Matching) ProcessNewJob(ctx context.Context, jobID uuid.UUID, autoNotify bool) BatchOutcome {
	const (
		batchMinScore   = 0.3
		notifyThreshold = 0.6
	)

	out := u.FindMatches(ctx, jobID, MatchParams{MinScore: batchMinScore, Limit: DefaultLimit})
	batch := BatchOutcome{MatchOutcome: out}
	if !autoNotify || u.notifier == nil {
		return batch
	}
	if out.MethodUsed == match.MethodNone || out.MethodUsed == match.MethodError {
		return batch
	}

	for _, m := range out.Matches {
		if m.Score < notifyThreshold {
			continue
		}
		if err := u.notifier.NotifyMatch(ctx, m); err != nil {
			u.log.Printf("notify student_id=%s job_id=%s status=failed err=%v", m.StudentID, m.JobID, err)
			continue
		}
		batch.Notified++
		u.log.Printf("notify student_id=%s job_id=%s quality=%s score=%.3f", m.StudentID, m.JobID, matching.QualityLabel(m.Score), m.Score)
	}
	return batch
}

func (u *Matching) semanticPass(ctx context.Context, j *job.Job, pool []candidate.Candidate, minScore float64) ([]match.Result, error) {
	jobVec, err := u.embedder.GetEmbedding(ctx, "job_"+j.ID.String(), matching.JobText(*j))
	if err != nil {
		return nil, err
	}

	results := make([]match.Result, 0)
	for _, c := range pool {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !c.Matchable() {
			continue
		}
		res, ok, err := u.scoreSemantic(ctx, j, jobVec, c, minScore)
		if err != nil {
			// One broken candidate never aborts the batch.
			u.log.Printf("matching job_id=%s student_id=%s status=skipped err=%v", j.ID, c.ID, err)
			continue
		}
		if !ok {
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

func (u *Matching) scoreSemantic(ctx context.Context, j *job.Job, jobVec []float64, c candidate.Candidate, minScore float64) (match.Result, bool, error) {
	vec, err := u.embedder.GetEmbedding(ctx, "student_"+c.ID.String(), matching.CandidateText(c))
	if err != nil {
		return match.Result{}, false, err
	}
	if len(vec) != len(jobVec) {
		return match.Result{}, false, fmt.Errorf("embedding length mismatch: job=%d student=%d", len(jobVec), len(vec))
	}

	similarity := matching.CosineSimilarity(jobVec, vec)
	boost := matching.BoostScore(c.Profile, j.Requirements)
	final := math.Min(1.0, similarity+boost*boostWeight)
	if final < minScore {
		return match.Result{}, false, nil
	}

	return match.Result{
		StudentID:     c.ID,
		JobID:         j.ID,
		Score:         final,
		MatchedSkills: matching.ExtractMatchedSkills(c.Profile.Skills, j.Requirements),
		Explanation:   matching.SemanticExplanation(similarity, boost, final),
		Method:        match.MethodSemantic,
		CreatedAt:     u.now(),
	}, true, nil
}

func (u *Matching) rulePass(ctx context.Context, j *job.Job, pool []candidate.Candidate, minScore float64) ([]match.Result, error) {
	results := make([]match.Result, 0)
	for _, c := range pool {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !c.Matchable() {
			continue
		}

		score := matching.DetailedScore(c.Profile, j.Requirements)
		if score < minScore {
			continue
		}
		results = append(results, match.Result{
			StudentID:     c.ID,
			JobID:         j.ID,
			Score:         score,
			MatchedSkills: matching.ExtractMatchedSkills(c.Profile.Skills, j.Requirements),
			Explanation:   matching.RuleExplanation(score),
			Method:        match.MethodRuleBased,
			CreatedAt:     u.now(),
		})
	}
	return results, nil
}

// finish orders, truncates and persists one phase's results. Candidates with
// equal scores keep their pool order.
func (u *Matching) finish(ctx context.Context, jobID uuid.UUID, results []match.Result, limit int, method string) MatchOutcome {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	for _, m := range results {
		err := u.matches.Upsert(ctx, repository.MatchUpsert{
			StudentID:     m.StudentID,
			JobID:         m.JobID,
			Score:         m.Score,
			MatchedSkills: m.MatchedSkills,
			Explanation:   m.Explanation,
			Method:        m.Method,
			CreatedAt:     m.CreatedAt,
		})
		if err != nil {
			// Best effort: the caller still gets the in-memory result.
			u.log.Printf("matching upsert student_id=%s job_id=%s status=failed err=%v", m.StudentID, m.JobID, err)
		}
	}

	u.log.Printf("matching job_id=%s method=%s matches=%d", jobID, method, len(results))
	return MatchOutcome{
		Matches:    results,
		MethodUsed: method,
		Timestamp:  u.now(),
	}
}

func (u *Matching) errorOutcome(err error) MatchOutcome {
	return MatchOutcome{
		Matches:    []match.Result{},
		MethodUsed: match.MethodError,
		Error:      err.Error(),
		Timestamp:  u.now(),
	}
}
