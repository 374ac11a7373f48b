package app

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"

	"veristat/adapters/stats/engine"
	"veristat/domain/record"
	"veristat/domain/verdict"
)

// VerifyService runs batches of extracted records through the
// verification engine. Records are independent, so each one is verified
// on its own worker, bounded by a weighted semaphore; results are written
// by index so the output always preserves extraction order.
type VerifyService struct {
	verifier   *engine.Verifier
	maxWorkers int64
}

// NewVerifyService creates the batch verification service. alpha is the
// significance boundary (<= 0 means the default .05); maxWorkers bounds
// per-batch parallelism (<= 0 means 8).
func NewVerifyService(alpha float64, maxWorkers int) *VerifyService {
	if maxWorkers <= 0 {
		maxWorkers = 8
	}
	return &VerifyService{
		verifier:   engine.NewVerifier(alpha),
		maxWorkers: int64(maxWorkers),
	}
}

// VerifyBatch validates and verifies every test record in the batch.
// Partial-failure semantics: a malformed record yields an unverifiable
// outcome with its reason, never an error for the whole batch. The only
// returned error is context cancellation.
func (s *VerifyService) VerifyBatch(ctx context.Context, records []record.TestRecord) ([]verdict.Outcome, error) {
	outcomes := make([]verdict.Outcome, len(records))

	sem := semaphore.NewWeighted(s.maxWorkers)
	var wg sync.WaitGroup

	for i, rec := range records {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, rec record.TestRecord) {
			defer wg.Done()
			defer sem.Release(1)
			outcomes[i] = s.verifyOne(i, rec)
		}(i, rec)
	}

	wg.Wait()
	return outcomes, nil
}

func (s *VerifyService) verifyOne(index int, rec record.TestRecord) verdict.Outcome {
	if err := rec.Validate(); err != nil {
		out := verdict.Outcome{
			Index:  index,
			Status: verdict.StatusUnverifiable,
			Reason: err.Error(),
		}
		// "ns" reports still get an APA reconstruction for the table
		if errors.Is(err, record.ErrReportedNS) {
			out.APA = engine.APAReconstruction(rec, engine.Correction{}) + ", ns"
		}
		return out
	}

	v, err := s.verifier.Verify(rec)
	if err != nil {
		return verdict.Outcome{
			Index:  index,
			Status: verdict.StatusUnverifiable,
			Reason: err.Error(),
		}
	}
	return verdict.Outcome{
		Index:   index,
		Status:  verdict.StatusVerified,
		Verdict: &v,
		APA:     v.APA,
	}
}

// CheckMeans runs the GRIM feasibility engine over a batch of mean
// records, with the same ordering and partial-failure guarantees as
// VerifyBatch.
func (s *VerifyService) CheckMeans(ctx context.Context, means []record.MeanRecord) ([]verdict.Outcome, error) {
	outcomes := make([]verdict.Outcome, len(means))

	sem := semaphore.NewWeighted(s.maxWorkers)
	var wg sync.WaitGroup

	for i, m := range means {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, m record.MeanRecord) {
			defer wg.Done()
			defer sem.Release(1)
			outcomes[i] = s.checkOneMean(i, m)
		}(i, m)
	}

	wg.Wait()
	return outcomes, nil
}

func (s *VerifyService) checkOneMean(index int, m record.MeanRecord) verdict.Outcome {
	if err := m.Validate(); err != nil {
		return verdict.Outcome{
			Index:  index,
			Status: verdict.StatusUnverifiable,
			Reason: err.Error(),
		}
	}

	gv := engine.GrimCheck(m)
	if !gv.Applicable {
		return verdict.Outcome{
			Index:  index,
			Status: verdict.StatusUnverifiable,
			Reason: "GRIM not applicable: sample size exceeds the mean's display granularity.",
			Grim:   &gv,
		}
	}
	return verdict.Outcome{
		Index:  index,
		Status: verdict.StatusVerified,
		Grim:   &gv,
	}
}
