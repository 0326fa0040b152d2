package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/calculator/engine"
	"github.com/wippyai/calculator/keypad"
	"github.com/wippyai/calculator/session"
)

const displayWidth = 23

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	displayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Width(displayWidth).
			Align(lipgloss.Right)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(displayWidth + 2).
			Align(lipgloss.Right)

	buttonStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Margin(0, 1, 0, 0)

	classStyles = map[keypad.Class]lipgloss.Style{
		keypad.ClassDigit:     buttonStyle.Foreground(lipgloss.Color("#FAFAFA")),
		keypad.ClassOperator:  buttonStyle.Foreground(lipgloss.Color("#FFB347")),
		keypad.ClassEquals:    buttonStyle.Foreground(lipgloss.Color("#98FB98")),
		keypad.ClassClear:     buttonStyle.Foreground(lipgloss.Color("#FF6B6B")),
		keypad.ClassAllClear:  buttonStyle.Foreground(lipgloss.Color("#FF6B6B")),
		keypad.ClassBackspace: buttonStyle.Foreground(lipgloss.Color("#FF6B6B")),
	}

	selectedStyle = buttonStyle.
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Press     key.Binding
	Equals    key.Binding
	Backspace key.Binding
	Clear     key.Binding
	AllClear  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Equals, k.AllClear, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Equals, k.Backspace},
		{k.Clear, k.AllClear},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
	Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	Press:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press")),
	Equals:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "equals")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete digit")),
	Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear entry")),
	AllClear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "all clear")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}

type interactiveModel struct {
	session *session.Session
	keys    keyMap
	help    help.Model
	row     int
	col     int
}

func newInteractiveModel(s *session.Session) *interactiveModel {
	return &interactiveModel{
		session: s,
		keys:    keys,
		help:    help.New(),
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.move(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.move(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.move(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.move(0, 1)
		case key.Matches(msg, m.keys.Press):
			m.session.Press(m.selected())
		case key.Matches(msg, m.keys.Equals):
			m.session.Apply(engine.Equals())
		case key.Matches(msg, m.keys.Backspace):
			m.session.Apply(engine.Backspace())
		case key.Matches(msg, m.keys.Clear):
			m.session.Apply(engine.Clear())
		case key.Matches(msg, m.keys.AllClear):
			m.session.Reset()
		default:
			if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
				if k, ok := keypad.Lookup(string(msg.Runes)); ok {
					m.session.Apply(k.Event)
					m.focus(k.Label)
				}
			}
		}
	}

	return m, nil
}

func (m *interactiveModel) move(dr, dc int) {
	rows := len(keypad.Layout)
	m.row = (m.row + dr + rows) % rows
	cols := len(keypad.Layout[m.row])
	m.col = (m.col + dc + cols) % cols
}

// focus moves the cursor to label if it is on the grid.
func (m *interactiveModel) focus(label string) {
	for r, row := range keypad.Layout {
		for c, l := range row {
			if l == label {
				m.row, m.col = r, c
				return
			}
		}
	}
}

func (m *interactiveModel) selected() string {
	return keypad.Layout[m.row][m.col]
}

func (m *interactiveModel) View() string {
	st := m.session.State()

	var b strings.Builder

	b.WriteString(titleStyle.Render("Calculator"))
	b.WriteString("\n\n")

	pending := " "
	if st.Pending != engine.OpNone {
		pending = fmt.Sprintf("%s %s", st.First, st.Pending)
	}
	b.WriteString(pendingStyle.Render(pending))
	b.WriteString("\n")
	b.WriteString(displayStyle.Render(st.Display))
	b.WriteString("\n\n")

	for r, row := range keypad.Layout {
		cells := make([]string, len(row))
		for c, label := range row {
			style := classStyles[keypad.ClassOf(label)]
			if r == m.row && c == m.col {
				style = selectedStyle
			}
			cells[c] = style.Render(label)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if st.History.Len() > 0 {
		b.WriteString("\n")
		for _, entry := range st.History.Items() {
			b.WriteString(historyStyle.Render(entry))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func runInteractive(s *session.Session) error {
	p := tea.NewProgram(newInteractiveModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
