package tasklist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"todolist/internal/service"
)

var (
	// ErrUnknownTask is returned when an id is not in the local sequence.
	ErrUnknownTask = errors.New("unknown task")

	// ErrNotEditing is returned by CommitEdit without an active edit.
	ErrNotEditing = errors.New("no task in edit mode")
)

// Store is the task store client. It owns the current State snapshot,
// issues remote calls through a service.Service and folds the results back
// in with the reducers in this package.
//
// Remote calls run without holding the lock; each result is applied to the
// snapshot current at the time it arrives. Failures are logged and leave the
// state as it was before the call; the error is returned for callers that
// want it.
type Store struct {
	svc service.Service
	log *slog.Logger

	mu    sync.Mutex
	state State
}

// NewStore creates a store over svc. A nil logger discards.
func NewStore(svc service.Service, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{svc: svc, log: logger, state: NewState()}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Visible returns the visible subset of the current state.
func (s *Store) Visible() []service.Task {
	return s.Snapshot().Visible()
}

func (s *Store) apply(fn func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	return s.state
}

// LoadAll fetches the whole collection. On failure the local sequence is
// left as it was (empty at startup) and nothing is retried.
func (s *Store) LoadAll(ctx context.Context) ([]service.Task, error) {
	tasks, err := s.svc.ListTasks(ctx)
	if err != nil {
		s.log.Error("error fetching tasks", "error", err)
		return nil, err
	}
	st := s.apply(func(st State) State { return Loaded(st, tasks) })
	s.log.Debug("tasks loaded", "count", len(st.Tasks))
	return st.Tasks, nil
}

// Create adds a task. Blank text fails validation before any remote call.
// The task only appears locally once the backend has returned it.
func (s *Store) Create(ctx context.Context, text string) (service.Task, error) {
	if strings.TrimSpace(text) == "" {
		return service.Task{}, service.EmptyText()
	}
	task, err := s.svc.CreateTask(ctx, text)
	if err != nil {
		s.log.Error("error adding task", "error", err)
		return service.Task{}, err
	}
	s.apply(func(st State) State { return Appended(st, task, text) })
	s.log.Debug("task added", "id", task.ID)
	return task, nil
}

// Update replaces the text of a task. Edit mode on that task is left only
// when the backend confirms; after a failure the edit buffer is kept so the
// user can retry.
func (s *Store) Update(ctx context.Context, id, text string) (service.Task, error) {
	if strings.TrimSpace(text) == "" {
		return service.Task{}, service.EmptyText()
	}
	if _, ok := s.Snapshot().Find(id); !ok {
		return service.Task{}, ErrUnknownTask
	}
	task, err := s.svc.UpdateTask(ctx, id, text)
	if err != nil {
		s.log.Error("error updating task", "id", id, "error", err)
		return service.Task{}, err
	}
	// The backend may echo a different id; the row we asked about is the
	// one being replaced.
	task.ID = id
	st := s.apply(func(st State) State {
		st = Replaced(st, task)
		if st.EditingID == id {
			st = EditEnded(st)
		}
		return st
	})
	if cur, ok := st.Find(id); ok {
		task = cur
	} else {
		s.log.Warn("updated task no longer present", "id", id)
	}
	return task, nil
}

// Remove deletes a task remotely and then locally. An id that is not
// present locally is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	if _, ok := s.Snapshot().Find(id); !ok {
		return nil
	}
	if err := s.svc.DeleteTask(ctx, id); err != nil {
		s.log.Error("error deleting task", "id", id, "error", err)
		return err
	}
	s.apply(func(st State) State { return Removed(st, id) })
	s.log.Debug("task deleted", "id", id)
	return nil
}

// ToggleCompleted flips completion locally. The backend is not told.
func (s *Store) ToggleCompleted(id string) {
	s.apply(func(st State) State { return Toggled(st, id) })
}

// SetFilter changes the visible subset.
func (s *Store) SetFilter(f Filter) {
	s.apply(func(st State) State { return WithFilter(st, f) })
}

// SetInput sets the new-task input buffer.
func (s *Store) SetInput(text string) {
	s.apply(func(st State) State { return WithInput(st, text) })
}

// BeginEdit puts a task in edit mode. It reports false for an unknown id.
func (s *Store) BeginEdit(id string) bool {
	st := s.apply(func(st State) State { return EditStarted(st, id) })
	_, ok := st.Find(id)
	return ok && st.EditingID == id
}

// SetEditText sets the edit buffer.
func (s *Store) SetEditText(text string) {
	s.apply(func(st State) State { return WithEditText(st, text) })
}

// CommitEdit sends the edit buffer for the task in edit mode.
func (s *Store) CommitEdit(ctx context.Context) (service.Task, error) {
	st := s.Snapshot()
	if !st.Editing() {
		return service.Task{}, ErrNotEditing
	}
	return s.Update(ctx, st.EditingID, st.EditText)
}

// CancelEdit leaves edit mode without saving.
func (s *Store) CancelEdit() {
	s.apply(EditEnded)
}

// Reorder moves a task between two visible positions. The new order lives
// only in memory.
func (s *Store) Reorder(from, to int) {
	s.apply(func(st State) State { return Reordered(st, from, to) })
}
