package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"veristat/app"
	"veristat/domain/core"
	"veristat/domain/record"
	"veristat/domain/verdict"
	"veristat/ports"
)

// RunRepositoryImpl implements RunStorePort for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL batch-run repository
func NewRunRepository(db *sqlx.DB) *RunRepositoryImpl {
	return &RunRepositoryImpl{db: db}
}

var _ ports.RunStorePort = (*RunRepositoryImpl)(nil)

// EnsureSchema creates the batch_runs table if it does not exist
func (r *RunRepositoryImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS batch_runs (
			id UUID PRIMARY KEY,
			kind TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			outcomes JSONB NOT NULL,
			summary JSONB NOT NULL,
			inputs JSONB NOT NULL DEFAULT '{}'::jsonb
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure batch_runs schema: %w", err)
	}
	return nil
}

// SaveRun persists a batch run, outcomes and summary as JSONB
func (r *RunRepositoryImpl) SaveRun(ctx context.Context, run app.BatchRun) error {
	outcomesJSON, err := json.Marshal(run.Outcomes)
	if err != nil {
		return fmt.Errorf("failed to marshal outcomes: %w", err)
	}
	summaryJSON, err := json.Marshal(run.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	inputsJSON, err := json.Marshal(runInputs{Tests: run.Tests, Means: run.Means})
	if err != nil {
		return fmt.Errorf("failed to marshal inputs: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO batch_runs (id, kind, created_at, outcomes, summary, inputs)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			outcomes = EXCLUDED.outcomes,
			summary = EXCLUDED.summary,
			inputs = EXCLUDED.inputs`,
		run.ID.String(), string(run.Kind), run.CreatedAt.Time(), outcomesJSON, summaryJSON, inputsJSON)
	if err != nil {
		return fmt.Errorf("failed to save batch run: %w", err)
	}
	return nil
}

// GetRun loads a batch run by ID; returns core.ErrBatchNotFound when absent
func (r *RunRepositoryImpl) GetRun(ctx context.Context, id core.BatchID) (*app.BatchRun, error) {
	row := r.db.QueryRowxContext(ctx, `
		SELECT id, kind, created_at, outcomes, summary, inputs
		FROM batch_runs WHERE id = $1`, id.String())

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, core.ErrBatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load batch run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns the most recent batch runs, newest first
func (r *RunRepositoryImpl) ListRuns(ctx context.Context, limit int) ([]app.BatchRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryxContext(ctx, `
		SELECT id, kind, created_at, outcomes, summary, inputs
		FROM batch_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch runs: %w", err)
	}
	defer rows.Close()

	var runs []app.BatchRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type runInputs struct {
	Tests []record.TestRecord `json:"tests,omitempty"`
	Means []record.MeanRecord `json:"means,omitempty"`
}

func scanRun(row rowScanner) (*app.BatchRun, error) {
	var (
		id        string
		kind      string
		createdAt time.Time
		outcomes  []byte
		summary   []byte
		inputs    []byte
	)
	if err := row.Scan(&id, &kind, &createdAt, &outcomes, &summary, &inputs); err != nil {
		return nil, err
	}

	run := app.BatchRun{
		ID:        core.BatchID(id),
		Kind:      app.RunKind(kind),
		CreatedAt: core.NewTimestamp(createdAt),
	}
	if err := json.Unmarshal(outcomes, &run.Outcomes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outcomes: %w", err)
	}
	if run.Outcomes == nil {
		run.Outcomes = []verdict.Outcome{}
	}
	if err := json.Unmarshal(summary, &run.Summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	var in runInputs
	if len(inputs) > 0 {
		if err := json.Unmarshal(inputs, &in); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inputs: %w", err)
		}
	}
	run.Tests = in.Tests
	run.Means = in.Means
	return &run, nil
}
