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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todolist help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText(DefaultRegistry))
	return exitcode.Success
}

// HelpText renders usage for every command in r.
func HelpText(r *Registry) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  todolist                         Same as todolist ls\n")
	for _, cmd := range r.All() {
		fmt.Fprintf(&b, "  %-44s %s\n", cmd.Usage(), cmd.Synopsis())
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			fmt.Fprintf(&b, "      aliases: %s\n", strings.Join(aliases, ", "))
		}
	}
	b.WriteString(commonFlags)
	return b.String()
}

const commonFlags = `
Task references are the numbers printed by ls, or remote ids with --id.

Common flags:
  --config <dir>   Override config directory
  --api <url>      Base URL of the task API (or TODOLIST_API_URL)
  --quiet          Suppress informational output
  --debug          Print debug logs (the tui logs to todolist.log)
`
