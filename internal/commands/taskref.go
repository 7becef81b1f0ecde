package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"todolist/internal/service"
	"todolist/internal/tasklist"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// TaskRef is a parsed task reference: a 1-based position in the list as
// printed by ls, or a remote id when --id is given.
type TaskRef struct {
	Num int
	ID  string
}

// ByID reports whether the reference names a remote id.
func (r TaskRef) ByID() bool { return r.ID != "" }

// ParseTaskRef parses the first argument as a task reference and returns
// the remaining arguments.
func ParseTaskRef(args []string, byID bool) (TaskRef, []string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return TaskRef{}, nil, ErrTaskRefRequired
	}
	first, rest := strings.TrimSpace(args[0]), args[1:]

	if byID {
		return TaskRef{ID: first}, rest, nil
	}
	if !isAllDigits(first) {
		return TaskRef{}, nil, fmt.Errorf("invalid task reference: %s", first)
	}
	num, err := strconv.Atoi(first)
	if err != nil {
		return TaskRef{}, nil, fmt.Errorf("invalid task reference: %s", first)
	}
	return TaskRef{Num: num}, rest, nil
}

// isAllDigits returns true if s consists only of digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveTaskRef finds the referenced task in a loaded state.
func ResolveTaskRef(st tasklist.State, ref TaskRef) (service.Task, error) {
	if ref.ByID() {
		task, ok := st.Find(ref.ID)
		if !ok {
			return service.Task{}, fmt.Errorf("task not found: %s", ref.ID)
		}
		return task, nil
	}
	if ref.Num < 1 || ref.Num > len(st.Tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", ref.Num)
	}
	return st.Tasks[ref.Num-1], nil
}
