// Package tasklist keeps the local task sequence and the view state in sync
// with a remote task store.
//
// State is an immutable snapshot. Every change is made by a reducer that
// returns a new State and never writes to the slices of its input, so a
// snapshot handed to a renderer stays valid while later changes land.
// Store owns the current snapshot and runs the remote calls.
package tasklist

import (
	"fmt"
	"slices"
	"strings"

	"todolist/internal/service"
)

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter parses a filter name (case-insensitive, trimmed).
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, "":
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("invalid filter: %s", s)
}

// Match reports whether t is visible under f.
func (f Filter) Match(t service.Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter after f in display order, wrapping around.
func (f Filter) Next() Filter {
	i := slices.Index(Filters, f)
	return Filters[(i+1)%len(Filters)]
}

// State is one snapshot of the task sequence plus view state.
type State struct {
	Tasks  []service.Task
	Filter Filter

	// Input is the new-task input buffer.
	Input string

	// EditingID is the task in edit mode, "" when none.
	EditingID string
	EditText  string
}

// NewState returns the empty startup state.
func NewState() State {
	return State{Filter: FilterAll}
}

// Editing reports whether a task is in edit mode.
func (s State) Editing() bool { return s.EditingID != "" }

// Visible returns the visible subset for the current filter.
func (s State) Visible() []service.Task { return Visible(s.Tasks, s.Filter) }

// Find returns the task with the given id.
func (s State) Find(id string) (service.Task, bool) {
	i := indexOf(s.Tasks, id)
	if i < 0 {
		return service.Task{}, false
	}
	return s.Tasks[i], true
}

// Visible projects tasks through f, keeping their relative order.
func Visible(tasks []service.Task, f Filter) []service.Task {
	if f != FilterActive && f != FilterCompleted {
		return slices.Clone(tasks)
	}
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func indexOf(tasks []service.Task, id string) int {
	return slices.IndexFunc(tasks, func(t service.Task) bool { return t.ID == id })
}

// Loaded replaces the sequence with a fresh load. Later duplicates of an id
// are dropped. Tasks already known keep their local completion flag.
func Loaded(s State, tasks []service.Task) State {
	seen := make(map[string]bool, len(tasks))
	next := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		if old, ok := s.Find(t.ID); ok {
			t.Completed = old.Completed
		}
		next = append(next, t)
	}
	s.Tasks = next
	if s.Editing() && !seen[s.EditingID] {
		s = EditEnded(s)
	}
	return s
}

// Appended adds a created task at the end. The input buffer is cleared
// only while it still holds submitted, so text typed since is kept.
// If the id is already present the existing row is replaced in place.
func Appended(s State, t service.Task, submitted string) State {
	if i := indexOf(s.Tasks, t.ID); i >= 0 {
		s.Tasks = slices.Clone(s.Tasks)
		s.Tasks[i] = t
	} else {
		s.Tasks = append(slices.Clip(s.Tasks), t)
	}
	if s.Input == submitted {
		s.Input = ""
	}
	return s
}

// Replaced swaps in the backend's copy of a task. The local completion flag
// is kept. A task no longer present is not brought back.
func Replaced(s State, t service.Task) State {
	i := indexOf(s.Tasks, t.ID)
	if i < 0 {
		return s
	}
	t.Completed = s.Tasks[i].Completed
	s.Tasks = slices.Clone(s.Tasks)
	s.Tasks[i] = t
	return s
}

// Removed drops the task with the given id, ending its edit if any.
func Removed(s State, id string) State {
	i := indexOf(s.Tasks, id)
	if i < 0 {
		return s
	}
	s.Tasks = slices.Delete(slices.Clone(s.Tasks), i, i+1)
	if s.EditingID == id {
		s = EditEnded(s)
	}
	return s
}

// Toggled flips the completion flag of one task.
func Toggled(s State, id string) State {
	i := indexOf(s.Tasks, id)
	if i < 0 {
		return s
	}
	s.Tasks = slices.Clone(s.Tasks)
	s.Tasks[i].Completed = !s.Tasks[i].Completed
	return s
}

// WithFilter sets the active filter. Unknown values fall back to all.
func WithFilter(s State, f Filter) State {
	if f != FilterActive && f != FilterCompleted {
		f = FilterAll
	}
	s.Filter = f
	return s
}

// WithInput sets the new-task input buffer.
func WithInput(s State, text string) State {
	s.Input = text
	return s
}

// EditStarted puts a task in edit mode, seeding the buffer with its text.
// Any edit in progress is abandoned without saving.
func EditStarted(s State, id string) State {
	t, ok := s.Find(id)
	if !ok {
		return s
	}
	s.EditingID = t.ID
	s.EditText = t.Text
	return s
}

// WithEditText sets the edit buffer. Without an active edit it does nothing.
func WithEditText(s State, text string) State {
	if !s.Editing() {
		return s
	}
	s.EditText = text
	return s
}

// EditEnded leaves edit mode and clears the buffer.
func EditEnded(s State) State {
	s.EditingID = ""
	s.EditText = ""
	return s
}
