package app

import (
	"veristat/domain/core"
	"veristat/domain/record"
	"veristat/domain/verdict"
)

// RunKind distinguishes statcheck batches from GRIM batches
type RunKind string

const (
	RunStatcheck RunKind = "statcheck"
	RunGrim      RunKind = "grim"
)

// BatchRun is the persisted artifact of one batch verification: the
// ordered outcomes plus the summary, stamped with an ID so repeated checks
// of the same paper stay auditable.
type BatchRun struct {
	ID        core.BatchID      `json:"id"`
	Kind      RunKind           `json:"kind"`
	CreatedAt core.Timestamp    `json:"created_at"`
	Outcomes  []verdict.Outcome `json:"outcomes"`
	Summary   BatchSummary      `json:"summary"`

	// The candidate records as the extractor emitted them, kept so the
	// report can print the reported values next to the recomputed ones.
	Tests []record.TestRecord `json:"tests,omitempty"`
	Means []record.MeanRecord `json:"means,omitempty"`
}

// NewStatcheckRun stamps a fresh statcheck run artifact
func NewStatcheckRun(tests []record.TestRecord, outcomes []verdict.Outcome) BatchRun {
	return BatchRun{
		ID:        core.BatchID(core.NewID()),
		Kind:      RunStatcheck,
		CreatedAt: core.Now(),
		Outcomes:  outcomes,
		Summary:   Summarize(outcomes),
		Tests:     tests,
	}
}

// NewGrimRun stamps a fresh GRIM run artifact
func NewGrimRun(means []record.MeanRecord, outcomes []verdict.Outcome) BatchRun {
	return BatchRun{
		ID:        core.BatchID(core.NewID()),
		Kind:      RunGrim,
		CreatedAt: core.Now(),
		Outcomes:  outcomes,
		Summary:   Summarize(outcomes),
		Means:     means,
	}
}
