package commands_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/service"
	"todolist/internal/tasklist"
	"todolist/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
// A nil svc runs the command without a store.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	env := commands.Env{
		Config: &config.Config{Dir: t.TempDir(), Quiet: quiet},
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if svc != nil {
		env.Store = tasklist.NewStore(svc, nil)
	}

	code = cmd.Run(context.Background(), env, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func seededService() *testutil.FakeService {
	svc := testutil.NewFakeService()
	svc.AddTask("1", "buy milk")
	svc.AddTask("2", "walk the dog")
	return svc
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todolist 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "todolist add <text...>", "aliases: create", "todolist tui", "--api <url>"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

func TestRegistry_AliasesResolve(t *testing.T) {
	for alias, name := range map[string]string{
		"list":   "ls",
		"create": "add",
		"update": "edit",
		"delete": "rm",
	} {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %q not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolved to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := r.Register(&commands.AddCmd{}); err == nil {
		t.Error("expected error registering a duplicate name")
	}
	if got := len(r.All()); got != 1 {
		t.Errorf("expected 1 command, got %d", got)
	}
}

// Tests for ls command
func TestListCommand(t *testing.T) {
	svc := seededService()

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "   1  [ ]  buy milk\n   2  [ ]  walk the dog\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_IDs(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("1", "buy milk")
	svc.AddTask("64f1c2", "walk the dog")
	svc.AddTask("7", "   ")
	svc.AddTask("8", "call mom\nback")

	cmd := &commands.ListCmd{}
	cmd.SetShowIDs(true)
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	testutil.Golden(t, "ls_ids", stdout)
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected 'no tasks found', got %q", stdout)
	}

	stdout, _, _ = runCommand(t, &commands.ListCmd{}, svc, nil, true)
	if stdout != "" {
		t.Errorf("expected no output in quiet mode, got %q", stdout)
	}
}

func TestListCommand_Filter(t *testing.T) {
	svc := seededService()

	// The backend does not store completion, so active shows everything
	// and completed shows nothing after a fresh load.
	cmd := &commands.ListCmd{}
	cmd.SetFilter("active")
	stdout, _, code := runCommand(t, cmd, svc, nil, false)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "   1  [ ]  buy milk\n   2  [ ]  walk the dog\n" {
		t.Errorf("unexpected active output %q", stdout)
	}

	cmd.SetFilter("completed")
	stdout, _, _ = runCommand(t, cmd, svc, nil, false)
	if stdout != "no tasks found\n" {
		t.Errorf("unexpected completed output %q", stdout)
	}
}

func TestListCommand_InvalidFilter(t *testing.T) {
	svc := seededService()

	cmd := &commands.ListCmd{}
	cmd.SetFilter("done")
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid filter: done\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if len(svc.Calls) != 0 {
		t.Errorf("expected no backend calls, got %v", svc.Calls)
	}
}

func TestListCommand_UnexpectedArg(t *testing.T) {
	_, stderr, code := runCommand(t, &commands.ListCmd{}, seededService(), []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestListCommand_BackendError(t *testing.T) {
	svc := seededService()
	svc.ListTasksErr = testutil.NetworkErr("list tasks")

	_, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.HasPrefix(stderr, "error: backend error: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.NextID = func() string { return "abc" }

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"buy", "milk"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok abc\n" {
		t.Errorf("expected %q, got %q", "ok abc\n", stdout)
	}
	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "buy milk" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.AddCmd{}, svc, []string{"milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no output, got %q", stdout)
	}
}

func TestAddCommand_EmptyText(t *testing.T) {
	for _, args := range [][]string{nil, {""}, {"  ", " "}} {
		svc := testutil.NewFakeService()

		_, stderr, code := runCommand(t, &commands.AddCmd{}, svc, args, false)

		if code != exitcode.UserError {
			t.Errorf("%q: expected exit code %d, got %d", args, exitcode.UserError, code)
		}
		if stderr != "error: text required\n" {
			t.Errorf("%q: unexpected stderr %q", args, stderr)
		}
		if len(svc.Calls) != 0 {
			t.Errorf("%q: expected no backend calls, got %v", args, svc.Calls)
		}
	}
}

func TestAddCommand_ServerError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = &service.ServerError{Op: "create task", Status: 500, Message: "boom"}

	_, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"milk"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "boom") {
		t.Errorf("expected server message in stderr, got %q", stderr)
	}
}

// Tests for edit command
func TestEditCommand(t *testing.T) {
	svc := seededService()

	stdout, stderr, code := runCommand(t, &commands.EditCmd{}, svc, []string{"2", "walk", "the", "cat"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if got := svc.Tasks()[1].Text; got != "walk the cat" {
		t.Errorf("expected updated text, got %q", got)
	}
}

func TestEditCommand_ByID(t *testing.T) {
	svc := seededService()

	cmd := &commands.EditCmd{}
	cmd.SetByID(true)
	_, stderr, code := runCommand(t, cmd, svc, []string{"1", "oat milk"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if got := svc.Tasks()[0].Text; got != "oat milk" {
		t.Errorf("expected updated text, got %q", got)
	}
}

func TestEditCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		byID     bool
		args     []string
		wantCode int
		wantErr  string
	}{
		{"missing ref", false, nil, exitcode.UserError, "error: task reference required\n"},
		{"bad ref", false, []string{"one", "x"}, exitcode.UserError, "error: invalid task reference: one\n"},
		{"out of range", false, []string{"9", "x"}, exitcode.UserError, "error: task number out of range: 9\n"},
		{"unknown id", true, []string{"zz", "x"}, exitcode.UserError, "error: task not found: zz\n"},
		{"missing text", false, []string{"1"}, exitcode.UserError, "error: text required\n"},
		{"blank text", false, []string{"1", "  "}, exitcode.UserError, "error: text required\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := seededService()
			cmd := &commands.EditCmd{}
			cmd.SetByID(tt.byID)

			_, stderr, code := runCommand(t, cmd, svc, tt.args, false)

			if code != tt.wantCode {
				t.Errorf("expected exit code %d, got %d", tt.wantCode, code)
			}
			if stderr != tt.wantErr {
				t.Errorf("expected %q, got %q", tt.wantErr, stderr)
			}
			if n := svc.CallCount("UpdateTask"); n != 0 {
				t.Errorf("expected no update calls, got %d", n)
			}
		})
	}
}

func TestEditCommand_NotFoundOnServer(t *testing.T) {
	svc := seededService()
	svc.UpdateTaskErr = testutil.ErrNotFound

	_, stderr, code := runCommand(t, &commands.EditCmd{}, svc, []string{"1", "x"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found on server\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for rm command
func TestRmCommand(t *testing.T) {
	svc := seededService()

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "2" {
		t.Errorf("unexpected tasks after rm: %+v", tasks)
	}
}

func TestRmCommand_ByID(t *testing.T) {
	svc := seededService()

	cmd := &commands.RmCmd{}
	cmd.SetByID(true)
	_, _, code := runCommand(t, cmd, svc, []string{"2"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if tasks := svc.Tasks(); len(tasks) != 1 || tasks[0].ID != "1" {
		t.Errorf("unexpected tasks after rm: %+v", tasks)
	}
}

func TestRmCommand_ExtraArg(t *testing.T) {
	svc := seededService()

	_, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1", "2"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: 2\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if n := svc.CallCount("DeleteTask"); n != 0 {
		t.Errorf("expected no delete calls, got %d", n)
	}
}

func TestRmCommand_NetworkError(t *testing.T) {
	svc := seededService()
	svc.DeleteTaskErr = testutil.NetworkErr("delete task")

	_, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.HasPrefix(stderr, "error: backend error: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if len(svc.Tasks()) != 2 {
		t.Error("task should survive a failed delete")
	}
}
