// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"
	"log/slog"

	"todolist/internal/config"
	"todolist/internal/tasklist"
)

// Env carries what a command runs with.
type Env struct {
	// Config is always provided (config dir, API URL).
	Config *config.Config

	// Store is nil if NeedsBackend() returns false.
	Store *tasklist.Store

	// Log is never nil.
	Log *slog.Logger
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command talks to the task API.
	// Commands like help and version return false.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env Env, args []string, out, errOut io.Writer) int
}

// Interactive is implemented by commands that take over the terminal.
// Their debug logs go to a file instead of stderr.
type Interactive interface {
	Interactive() bool
}
