package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/tasklist"
)

// Completion messages. Errors are already logged by the store; the model
// only needs to know that a call finished so it can re-render.
type (
	tasksLoadedMsg struct{ err error }
	taskCreatedMsg struct{ err error }
	taskUpdatedMsg struct{ err error }
	taskRemovedMsg struct{ err error }
	copiedMsg      struct{ err error }
)

func loadCmd(ctx context.Context, store *tasklist.Store) tea.Cmd {
	return func() tea.Msg {
		_, err := store.LoadAll(ctx)
		return tasksLoadedMsg{err: err}
	}
}

func createCmd(ctx context.Context, store *tasklist.Store, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := store.Create(ctx, text)
		return taskCreatedMsg{err: err}
	}
}

func commitEditCmd(ctx context.Context, store *tasklist.Store) tea.Cmd {
	return func() tea.Msg {
		_, err := store.CommitEdit(ctx)
		return taskUpdatedMsg{err: err}
	}
}

func removeCmd(ctx context.Context, store *tasklist.Store, id string) tea.Cmd {
	return func() tea.Msg {
		return taskRemovedMsg{err: store.Remove(ctx, id)}
	}
}

func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}
