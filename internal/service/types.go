// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single to-do entry.
type Task struct {
	ID        string
	Text      string
	Completed bool // local only, never sent to the backend
}
