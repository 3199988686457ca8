package service

import (
	"context"
	"fmt"
	"os"

	"github.com/forgo/todos/api/internal/model"
)

// ImportSummary counts the outcome of an import
type ImportSummary struct {
	Inserted int
	Failed   int
}

// Summarize tallies import results
func Summarize(results []model.TodoInsertResult) ImportSummary {
	var s ImportSummary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
		} else {
			s.Inserted++
		}
	}
	return s
}

// ImportFile reads a seed file and imports every entry. A file that cannot
// be read or parsed is an error; per-item failures are in the results.
func (s *TodoService) ImportFile(ctx context.Context, path string) ([]model.TodoInsertResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	candidates, err := model.ParseTodoCandidates(data)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, candidates), nil
}
