package extract

import (
	"context"
	"encoding/json"
	"os"

	"veristat/domain/record"
	"veristat/internal/errors"
)

// FileSource reads the materialized output of the external extraction step
// from a JSON file. The file holds candidate records exactly as the
// extractor emitted them; they may be incomplete or malformed and are
// validated downstream.
type FileSource struct {
	filePath string
}

// NewFileSource creates a record source backed by a JSON file
func NewFileSource(filePath string) *FileSource {
	return &FileSource{filePath: filePath}
}

type extractorPayload struct {
	Tests []record.TestRecord `json:"tests"`
	Means []record.MeanRecord `json:"means"`
}

// TestRecords returns the candidate test records from the file
func (s *FileSource) TestRecords(ctx context.Context) ([]record.TestRecord, error) {
	payload, err := s.read()
	if err != nil {
		return nil, err
	}
	return payload.Tests, nil
}

// MeanRecords returns the candidate mean records from the file
func (s *FileSource) MeanRecords(ctx context.Context) ([]record.MeanRecord, error) {
	payload, err := s.read()
	if err != nil {
		return nil, err
	}
	return payload.Means, nil
}

func (s *FileSource) read() (*extractorPayload, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read extractor output %s", s.filePath)
	}
	var payload extractorPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrapf(err, "failed to parse extractor output %s", s.filePath)
	}
	return &payload, nil
}
