package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct {
	byID bool
}

// SetByID sets the --id flag (for testing).
func (c *EditCmd) SetByID(byID bool) {
	c.byID = byID
}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return []string{"update"} }
func (c *EditCmd) Synopsis() string   { return "Change the text of a task" }
func (c *EditCmd) Usage() string      { return "todolist edit [--id] <ref> <text...>" }
func (c *EditCmd) NeedsBackend() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

func (c *EditCmd) Run(ctx context.Context, env Env, args []string, out, errOut io.Writer) int {
	task, rest, code, ok := resolveArgs(ctx, env, args, c.byID, errOut)
	if !ok {
		return code
	}

	text := strings.Join(rest, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}

	// Same path as the interactive editor: enter edit mode, then commit.
	env.Store.BeginEdit(task.ID)
	env.Store.SetEditText(text)
	if _, err := env.Store.CommitEdit(ctx); err != nil {
		return reportError(errOut, err)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
