// Package ui is the interactive terminal front end. It renders snapshots of
// a tasklist.Store and turns key presses into store operations; every
// remote call runs as a tea.Cmd so the view keeps responding meanwhile.
package ui

import (
	"context"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/tasklist"
)

type mode int

const (
	modeBrowse mode = iota
	modeInput
	modeEdit
)

// Model is the Bubble Tea model for the task list.
type Model struct {
	ctx   context.Context
	store *tasklist.Store
	log   *slog.Logger

	// state is the snapshot being rendered.
	state tasklist.State

	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model
	editor textinput.Model

	mode     mode
	cursor   int // index into the visible list
	inFlight int
	loaded   bool
	width    int
	status   string

	writeClipboard func(string) error
}

// NewModel creates the model. The initial load starts in Init.
func NewModel(ctx context.Context, store *tasklist.Store, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	input := textinput.New()
	input.Placeholder = "Enter a task"
	input.Prompt = "+ "
	input.CharLimit = 500

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 500

	return Model{
		ctx:            ctx,
		store:          store,
		log:            logger,
		state:          store.Snapshot(),
		keys:           DefaultKeyMap(),
		styles:         NewStyles(),
		help:           help.New(),
		input:          input,
		editor:         editor,
		writeClipboard: clipboard.WriteAll,
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, store *tasklist.Store, logger *slog.Logger) error {
	p := tea.NewProgram(NewModel(ctx, store, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.start(loadCmd(m.ctx, m.store))
}

// start counts an in-flight remote call.
func (m *Model) start(cmd tea.Cmd) tea.Cmd {
	m.inFlight++
	return cmd
}

func (m *Model) finish() {
	if m.inFlight > 0 {
		m.inFlight--
	}
}

// sync pulls the latest snapshot and keeps the cursor and mode consistent
// with it.
func (m *Model) sync() {
	m.state = m.store.Snapshot()
	visible := m.state.Visible()
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.mode == modeEdit && !m.state.Editing() {
		m.mode = modeBrowse
		m.editor.Blur()
	}
}

// selected returns the id under the cursor.
func (m Model) selected() (string, bool) {
	visible := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return "", false
	}
	return visible[m.cursor].ID, true
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		m.editor.Width = max(msg.Width-12, 10)
		return m, nil

	case tasksLoadedMsg:
		m.finish()
		m.loaded = true
		m.sync()
		return m, nil

	case taskCreatedMsg:
		m.finish()
		m.sync()
		if msg.err == nil && m.state.Input == "" {
			m.input.Reset()
		}
		return m, nil

	case taskUpdatedMsg, taskRemovedMsg:
		m.finish()
		m.sync()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("clipboard write failed", "error", msg.err)
			m.status = "clipboard unavailable"
		} else {
			m.status = "copied"
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeInput
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.selected(); ok {
			m.store.ToggleCompleted(id)
			m.sync()
		}

	case key.Matches(msg, m.keys.Edit):
		if id, ok := m.selected(); ok && m.store.BeginEdit(id) {
			m.sync()
			m.mode = modeEdit
			m.editor.SetValue(m.state.EditText)
			m.editor.CursorEnd()
			return m, m.editor.Focus()
		}

	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selected(); ok {
			return m, m.start(removeCmd(m.ctx, m.store, id))
		}

	case key.Matches(msg, m.keys.MoveUp):
		if m.cursor > 0 {
			m.store.Reorder(m.cursor, m.cursor-1)
			m.cursor--
			m.sync()
		}

	case key.Matches(msg, m.keys.MoveDown):
		if m.cursor < len(m.state.Visible())-1 {
			m.store.Reorder(m.cursor, m.cursor+1)
			m.cursor++
			m.sync()
		}

	case key.Matches(msg, m.keys.Copy):
		visible := m.state.Visible()
		if m.cursor < len(visible) {
			return m, copyCmd(m.writeClipboard, visible[m.cursor].Text)
		}

	case key.Matches(msg, m.keys.Reload):
		return m, m.start(loadCmd(m.ctx, m.store))

	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(tasklist.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		m.setFilter(tasklist.FilterActive)
	case key.Matches(msg, m.keys.FilterCompleted):
		m.setFilter(tasklist.FilterCompleted)
	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(m.state.Filter.Next())
	}
	return m, nil
}

func (m *Model) setFilter(f tasklist.Filter) {
	if m.state.Filter != f {
		m.cursor = 0
	}
	m.store.SetFilter(f)
	m.sync()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		// Blank text is rejected by the store before any remote call.
		text := m.input.Value()
		m.store.SetInput(text)
		return m, m.start(createCmd(m.ctx, m.store, text))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.store.CancelEdit()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.store.SetEditText(m.editor.Value())
		m.sync()
		return m, m.start(commitEditCmd(m.ctx, m.store))
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.store.SetEditText(m.editor.Value())
	return m, cmd
}
