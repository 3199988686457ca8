package model

import (
	"bytes"
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// todoEnvelopeSchema checks the shape of {"todo": {...}} bodies. Content
// rules (whitelist, length, required) live in the request Validate methods
// so that their messages come out in a fixed order.
const todoEnvelopeSchemaJSON = `{
	"type": "object",
	"required": ["todo"],
	"properties": {
		"todo": {
			"type": "object",
			"properties": {
				"title": {"type": "string"},
				"assignedTo": {"type": "string"},
				"done": {"type": "boolean"}
			}
		}
	}
}`

var todoEnvelopeSchema = jsonschema.MustCompileString("todo_envelope.json", todoEnvelopeSchemaJSON)

// schemaFields maps an instance location to its field and message. Lower
// index wins when several locations fail.
var schemaFields = []struct {
	location string
	field    string
	message  string
}{
	{"", "todo", MsgTodoMissing},
	{"/todo", "todo", MsgTodoMissing},
	{"/todo/title", "title", MsgTitleRequired},
	{"/todo/assignedTo", "assignedTo", MsgAssignedToRequired},
	{"/todo/done", "done", MsgDoneInvalid},
}

// DecodeCreateTodo parses and validates a create body
func DecodeCreateTodo(data []byte) (*CreateTodoRequest, error) {
	var envelope struct {
		Todo *CreateTodoRequest `json:"todo"`
	}
	if err := decodeTodoEnvelope(data, &envelope); err != nil {
		return nil, err
	}
	if err := envelope.Todo.Validate(); err != nil {
		return nil, err
	}
	return envelope.Todo, nil
}

// DecodeUpdateTodo parses and validates a partial update body
func DecodeUpdateTodo(data []byte) (*UpdateTodoRequest, error) {
	var envelope struct {
		Todo *UpdateTodoRequest `json:"todo"`
	}
	if err := decodeTodoEnvelope(data, &envelope); err != nil {
		return nil, err
	}
	if err := envelope.Todo.Validate(); err != nil {
		return nil, err
	}
	return envelope.Todo, nil
}

func decodeTodoEnvelope(data []byte, dst interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewValidationError("todo", MsgTodoMissing)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return NewValidationError("body", MsgInvalidBody)
	}

	obj, ok := doc.(map[string]interface{})
	if !ok || obj["todo"] == nil {
		return NewValidationError("todo", MsgTodoMissing)
	}

	if err := todoEnvelopeSchema.Validate(doc); err != nil {
		return schemaError(err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return NewValidationError("todo", MsgTodoMissing)
	}
	return nil
}

// schemaError reduces a schema failure to the highest-priority field error
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return NewValidationError("todo", MsgTodoMissing)
	}

	best := len(schemaFields)
	collectSchemaLeaves(ve, func(location string) {
		for i, f := range schemaFields {
			if f.location == location && i < best {
				best = i
			}
		}
	})

	if best == len(schemaFields) {
		return NewValidationError("todo", MsgTodoMissing)
	}
	return NewValidationError(schemaFields[best].field, schemaFields[best].message)
}

func collectSchemaLeaves(err *jsonschema.ValidationError, visit func(location string)) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		visit(err.InstanceLocation)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaLeaves(cause, visit)
	}
}
