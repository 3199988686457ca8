package model

import (
	"encoding/json"
	"fmt"
)

// ParseTodoCandidates decodes a seed document: a JSON array of
// {"title", "assignedTo"} objects. Field rules are not checked here;
// TodoService.Import reports them per item.
func ParseTodoCandidates(data []byte) ([]TodoCandidate, error) {
	var candidates []TodoCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("parse todo candidates: %w", err)
	}
	if candidates == nil {
		candidates = []TodoCandidate{}
	}
	return candidates, nil
}
