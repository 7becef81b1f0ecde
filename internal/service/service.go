// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for remote task store operations.
// All HTTP calls go through this interface.
// The tasklist and commands packages never import a transport directly.
type Service interface {
	// ListTasks returns the full collection in backend order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns it with its backend-assigned ID.
	CreateTask(ctx context.Context, text string) (Task, error)

	// UpdateTask replaces the text of a task and returns the stored task.
	UpdateTask(ctx context.Context, id, text string) (Task, error)

	// DeleteTask deletes a task. A nil error means the backend confirmed it.
	DeleteTask(ctx context.Context, id string) error
}
