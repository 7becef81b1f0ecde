package ui

import (
	"fmt"
	"strings"

	"todolist/internal/output"
	"todolist/internal/service"
	"todolist/internal/tasklist"
)

var filterLabels = map[tasklist.Filter]string{
	tasklist.FilterAll:       "All",
	tasklist.FilterActive:    "Active",
	tasklist.FilterCompleted: "Completed",
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("To-Do List"))
	b.WriteString("\n")

	if m.mode == modeInput {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.styles.Subtle.Render("press a to add a task"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	b.WriteString(m.renderTasks())

	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderFilters() string {
	parts := make([]string, 0, len(tasklist.Filters))
	for _, f := range tasklist.Filters {
		style := m.styles.Filter
		if f == m.state.Filter {
			style = m.styles.FilterActive
		}
		parts = append(parts, style.Render(filterLabels[f]))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTasks() string {
	if !m.loaded {
		return m.styles.Subtle.Render("loading...") + "\n"
	}
	visible := m.state.Visible()
	if len(visible) == 0 {
		return m.styles.Subtle.Render("no tasks") + "\n"
	}

	var b strings.Builder
	for i, task := range visible {
		b.WriteString(m.renderTask(i, task))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTask(i int, task service.Task) string {
	pointer := "  "
	if i == m.cursor {
		pointer = m.styles.Cursor.Render("> ")
	}
	box := output.Checkbox(task.Completed)

	if m.mode == modeEdit && task.ID == m.state.EditingID {
		return pointer + box + " " + m.editor.View()
	}

	style := m.styles.Task
	if task.Completed {
		style = m.styles.TaskDone
	}
	return pointer + box + " " + style.Render(output.NormalizeText(task.Text))
}

func (m Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	total := len(m.state.Tasks)
	done := 0
	for _, t := range m.state.Tasks {
		if t.Completed {
			done++
		}
	}
	line := fmt.Sprintf("%d tasks, %d done", total, done)
	if m.inFlight > 0 {
		line += " · syncing"
	}
	return line
}
