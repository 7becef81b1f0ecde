package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"todolist/internal/service"
)

type textBody struct {
	Text string `json:"text"`
}

// wireTask is the task shape on the wire. The backend keys tasks by "_id";
// "id" is accepted too. Either may be a string or a number.
type wireTask struct {
	MongoID   json.RawMessage `json:"_id"`
	ID        json.RawMessage `json:"id"`
	Text      *string         `json:"text"`
	Completed *bool           `json:"completed"`
}

func (w wireTask) toTask() (service.Task, error) {
	raw := w.MongoID
	if len(raw) == 0 || string(raw) == "null" {
		raw = w.ID
	}
	id, err := parseID(raw)
	if err != nil {
		return service.Task{}, err
	}
	if w.Text == nil {
		return service.Task{}, fmt.Errorf("task %s: missing text", id)
	}
	t := service.Task{ID: id, Text: *w.Text}
	if w.Completed != nil {
		t.Completed = *w.Completed
	}
	return t, nil
}

func parseID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", errors.New("task without id")
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("bad id: %w", err)
		}
		if strings.TrimSpace(s) == "" {
			return "", errors.New("task with empty id")
		}
		return s, nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", fmt.Errorf("bad id %s", raw)
		}
		return n.String(), nil
	}
}

func decodeTask(body []byte) (service.Task, error) {
	var w wireTask
	if err := json.Unmarshal(body, &w); err != nil {
		return service.Task{}, fmt.Errorf("decode task: %w", err)
	}
	return w.toTask()
}

func decodeTasks(body []byte) ([]service.Task, error) {
	var ws []wireTask
	if err := json.Unmarshal(body, &ws); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	tasks := make([]service.Task, 0, len(ws))
	for i, w := range ws {
		t, err := w.toTask()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
