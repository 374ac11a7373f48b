package ports

import (
	"context"

	"veristat/app"
	"veristat/domain/core"
)

// RunWriterPort provides append-only write access to batch runs
type RunWriterPort interface {
	SaveRun(ctx context.Context, run app.BatchRun) error
}

// RunReaderPort provides read-only access to stored batch runs
type RunReaderPort interface {
	GetRun(ctx context.Context, id core.BatchID) (*app.BatchRun, error)
	ListRuns(ctx context.Context, limit int) ([]app.BatchRun, error)
}

// RunStorePort combines read and write access
type RunStorePort interface {
	RunWriterPort
	RunReaderPort
}
