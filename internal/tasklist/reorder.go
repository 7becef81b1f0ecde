package tasklist

import (
	"slices"

	"todolist/internal/service"
)

// NoDestination marks a drag that was dropped outside the list.
const NoDestination = -1

// Reorder moves the task at visible position from to visible position to.
// Positions index the list as shown under filter. The visible tasks are
// spliced as a list of their own and written back into the slots they
// occupied, so tasks hidden by the filter keep their places.
// Under FilterAll this is remove-at-from, insert-at-to.
// A missing destination or an out-of-range index leaves the order unchanged.
// The result always shares no memory with tasks.
func Reorder(tasks []service.Task, filter Filter, from, to int) []service.Task {
	out := slices.Clone(tasks)
	if from < 0 || to < 0 || from == to {
		return out
	}

	slots := visiblePositions(tasks, filter)
	if from >= len(slots) || to >= len(slots) {
		return out
	}

	shown := make([]service.Task, len(slots))
	for i, pos := range slots {
		shown[i] = tasks[pos]
	}
	moved := shown[from]
	shown = slices.Insert(slices.Delete(shown, from, from+1), to, moved)
	for i, pos := range slots {
		out[pos] = shown[i]
	}
	return out
}

// Reordered applies Reorder to the state's sequence using its filter.
func Reordered(s State, from, to int) State {
	s.Tasks = Reorder(s.Tasks, s.Filter, from, to)
	return s
}

// visiblePositions returns the index in tasks of each visible task.
func visiblePositions(tasks []service.Task, filter Filter) []int {
	positions := make([]int, 0, len(tasks))
	for i, t := range tasks {
		if filter.Match(t) {
			positions = append(positions, i)
		}
	}
	return positions
}
