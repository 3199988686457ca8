package repository

import (
	"fmt"
	"strconv"

	"github.com/forgo/todos/api/internal/database"
	"github.com/forgo/todos/api/internal/model"
)

// parseTodoRow maps a database row onto a stored todo
func parseTodoRow(row database.Row) (model.TodoRow, error) {
	id, ok := database.RecordKey(row["id"])
	if !ok {
		return model.TodoRow{}, fmt.Errorf("%w: todo row has no usable id: %v", database.ErrQuery, row["id"])
	}

	return model.TodoRow{
		ID:         id,
		Title:      getString(row, "title"),
		AssignedTo: getString(row, "assignedTo"),
		Done:       getInt(row, "done"),
	}, nil
}

// getString extracts a string value from a row
func getString(m database.Row, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

// getInt extracts an int value from a row. Drivers disagree on the numeric
// type they decode into, and SQLite may hand back text for an INTEGER column
// written by another client.
func getInt(m database.Row, key string) int {
	switch v := m[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case int32:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
