package ports

import (
	"context"

	"veristat/domain/record"
)

// RecordSourcePort is the boundary to the external extraction step. The
// engine never parses free text itself; whatever sits behind this port
// (a language-model extractor, a JSON file of its output) must hand over
// fully-materialized candidate records. The records may still be
// malformed - validation happens downstream.
type RecordSourcePort interface {
	TestRecords(ctx context.Context) ([]record.TestRecord, error)
	MeanRecords(ctx context.Context) ([]record.MeanRecord, error)
}
