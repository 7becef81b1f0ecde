package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/service"
	"todolist/internal/tasklist"
)

// reportError prints err and returns the matching exit code.
func reportError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	case errors.Is(err, tasklist.ErrUnknownTask):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case service.IsNotFound(err):
		fmt.Fprintln(errOut, "error: task not found on server")
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// loadTasks fetches the collection into the store.
// ok is false when the caller should exit with code.
func loadTasks(ctx context.Context, env Env, errOut io.Writer) (st tasklist.State, code int, ok bool) {
	if _, err := env.Store.LoadAll(ctx); err != nil {
		return tasklist.State{}, reportError(errOut, err), false
	}
	return env.Store.Snapshot(), exitcode.Success, true
}

// resolveArgs loads the tasks and resolves the leading task reference.
func resolveArgs(ctx context.Context, env Env, args []string, byID bool, errOut io.Writer) (service.Task, []string, int, bool) {
	ref, rest, err := ParseTaskRef(args, byID)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Task{}, nil, exitcode.UserError, false
	}
	st, code, ok := loadTasks(ctx, env, errOut)
	if !ok {
		return service.Task{}, nil, code, false
	}
	task, err := ResolveTaskRef(st, ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return service.Task{}, nil, exitcode.UserError, false
	}
	return task, rest, exitcode.Success, true
}
