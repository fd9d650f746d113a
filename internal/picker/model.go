package picker

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type State int

const (
	StateIdle State = iota
	StateAwaitingInput
	StateFiltering
	StateSelected
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting-input"
	case StateFiltering:
		return "filtering"
	case StateSelected:
		return "selected"
	case StateCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

const defaultVisibleRows = 15

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	separatorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle       = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	prompt Prompt
	input  textinput.Model
	rows   []Row
	cursor int
	state  State
	chosen Row
	height int
}

func NewModel(p Prompt) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to search"
	ti.SetValue(p.Query)
	ti.Focus()

	m := Model{prompt: p, input: ti}
	m.refilter()
	return m
}

func (m Model) State() State {
	return m.state
}

// Chosen returns the selected row once the model reached StateSelected.
func (m Model) Chosen() (Row, bool) {
	return m.chosen, m.state == StateSelected
}

func (m Model) Rows() []Row {
	return m.rows
}

// Cursor is the index into Rows of the highlighted row, -1 when nothing is
// selectable.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.state = StateCancelled
			return m, tea.Quit
		case "enter":
			if m.cursor < 0 {
				return m, nil
			}
			m.chosen = m.rows[m.cursor]
			m.state = StateSelected
			return m, tea.Quit
		case "up", "ctrl+p", "shift+tab":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n", "tab":
			m.move(1)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) refilter() {
	query := m.input.Value()
	m.rows = m.prompt.Rows(query)
	m.cursor = m.nextSelectable(-1, 1)
	if strings.TrimSpace(query) == "" {
		m.state = StateAwaitingInput
	} else {
		m.state = StateFiltering
	}
}

func (m *Model) move(delta int) {
	if next := m.nextSelectable(m.cursor, delta); next >= 0 {
		m.cursor = next
	}
}

func (m Model) nextSelectable(from, delta int) int {
	for i := from + delta; i >= 0 && i < len(m.rows); i += delta {
		if m.rows[i].Selectable() {
			return i
		}
	}
	return -1
}

func (m Model) visibleRows() int {
	if m.height > 4 {
		return m.height - 4
	}
	return defaultVisibleRows
}

func (m Model) View() string {
	if m.state == StateSelected || m.state == StateCancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt.Title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("  No matching projects"))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.visibleRows()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	// Keep the heading of the topmost group on screen.
	if start > 0 && m.rows[start-1].Separator {
		start--
	}
	end := min(len(m.rows), max(start+visible, m.cursor+1))

	for i := start; i < end; i++ {
		row := m.rows[i]
		switch {
		case row.Separator:
			b.WriteString(separatorStyle.Render(row.Label))
		case i == m.cursor:
			b.WriteString(cursorStyle.Render("> " + row.Label))
		default:
			b.WriteString("  " + row.Label)
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("↑/↓ move · enter open · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// TeaPrompter runs each prompt as a bubbletea program. Output defaults to
// the program's standard output; use stderr to keep stdout for results.
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (tp TeaPrompter) Choose(p Prompt) (Row, error) {
	var opts []tea.ProgramOption
	if tp.In != nil {
		opts = append(opts, tea.WithInput(tp.In))
	}
	if tp.Out != nil {
		opts = append(opts, tea.WithOutput(tp.Out))
	}

	final, err := tea.NewProgram(NewModel(p), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return Row{}, ErrCancelled
	}
	if err != nil {
		return Row{}, err
	}

	if row, ok := final.(Model).Chosen(); ok {
		return row, nil
	}
	return Row{}, ErrCancelled
}
