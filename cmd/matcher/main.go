package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"placement-match/internal/app"
	"placement-match/internal/config"
	"placement-match/internal/domain/match"
	"placement-match/internal/infrastructure/notify"
	"placement-match/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	jobFlag := flag.String("job", "", "job id to match against (required)")
	minScore := flag.Float64("min-score", 0, "minimum score to include (default 0.6)")
	limit := flag.Int("limit", 0, "maximum matches to return (default 50)")
	notifyFlag := flag.Bool("notify", false, "run the new-job batch pass and publish notifications")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	jobID, err := uuid.Parse(strings.TrimSpace(*jobFlag))
	if err != nil {
		log.Fatalf("provide -job with a valid job id: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var notifier usecase.Notifier
	if *notifyFlag {
		rn := notify.NewRedisNotifier(log.Default())
		defer func() { _ = rn.Close() }()
		notifier = rn
	}

	c, err := app.NewContainer(ctx, cfg, log.Default(), notifier)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	var (
		outcome usecase.MatchOutcome
		report  any
	)
	if *notifyFlag {
		batch := c.Matching.ProcessNewJob(ctx, jobID, true)
		log.Printf("batch job_id=%s matches=%d notified=%d", jobID, len(batch.Matches), batch.Notified)
		outcome = batch.MatchOutcome
		report = batch
	} else {
		outcome = c.Matching.FindMatches(ctx, jobID, usecase.MatchParams{
			MinScore: *minScore,
			Limit:    *limit,
		})
		report = outcome
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatalf("encode outcome: %v", err)
	}

	if outcome.MethodUsed == match.MethodError {
		os.Exit(1)
	}
}
