package commands

import (
	"testing"

	"todolist/internal/service"
	"todolist/internal/tasklist"
)

func TestParseTaskRef_Numeric(t *testing.T) {
	ref, rest, err := ParseTaskRef([]string{"5", "new", "text"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ByID() {
		t.Error("expected positional reference")
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
	if len(rest) != 2 || rest[0] != "new" {
		t.Errorf("unexpected rest %v", rest)
	}
}

func TestParseTaskRef_ByID(t *testing.T) {
	ref, _, err := ParseTaskRef([]string{"65a1f"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByID() || ref.ID != "65a1f" {
		t.Errorf("unexpected ref %+v", ref)
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	_, _, err := ParseTaskRef([]string{"a1"}, false)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "invalid task reference: a1" {
		t.Errorf("unexpected error %q", err.Error())
	}
}

func TestParseTaskRef_NoArgs(t *testing.T) {
	_, _, err := ParseTaskRef(nil, false)
	if err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
	_, _, err = ParseTaskRef([]string{" "}, true)
	if err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestResolveTaskRef(t *testing.T) {
	st := tasklist.Loaded(tasklist.NewState(), []service.Task{
		{ID: "x", Text: "first"},
		{ID: "y", Text: "second"},
	})

	task, err := ResolveTaskRef(st, TaskRef{Num: 2})
	if err != nil || task.ID != "y" {
		t.Errorf("expected y, got %+v %v", task, err)
	}
	task, err = ResolveTaskRef(st, TaskRef{ID: "x"})
	if err != nil || task.Text != "first" {
		t.Errorf("expected x, got %+v %v", task, err)
	}
	if _, err := ResolveTaskRef(st, TaskRef{Num: 3}); err == nil || err.Error() != "task number out of range: 3" {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := ResolveTaskRef(st, TaskRef{Num: 0}); err == nil {
		t.Error("expected out of range for 0")
	}
	if _, err := ResolveTaskRef(st, TaskRef{ID: "z"}); err == nil || err.Error() != "task not found: z" {
		t.Errorf("unexpected error %v", err)
	}
}
