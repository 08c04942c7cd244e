package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mewisme/wtf/internal/match"
)

// KeyMap defines keybindings for the picker
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "q"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// IsInteractive reports whether stdout is a terminal the picker can use.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PickerModel lets the user choose one suggestion with the arrow keys.
type PickerModel struct {
	list     list.Model
	keys     KeyMap
	quitting bool
	selected int // index into suggestions, -1 when cancelled
}

// NewPickerModel creates a picker over the given suggestions.
func NewPickerModel(suggestions []match.Suggestion) *PickerModel {
	items := make([]list.Item, len(suggestions))
	for i, s := range suggestions {
		items[i] = suggestionItem{
			index:       i,
			command:     s.Command,
			explanation: s.Explanation,
			confidence:  s.Confidence,
			score:       s.Score,
		}
	}

	height := len(suggestions)*2 + 6
	l := list.New(items, newSuggestionDelegate(), 76, height)
	l.Title = "Did you mean:"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.Styles.Title = cyanStyle.Bold(true)

	return &PickerModel{
		list:     l,
		keys:     DefaultKeyMap(),
		selected: -1,
	}
}

// Init initializes the model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.selected = -1
			return m, tea.Quit

		case key.Matches(msg, m.keys.Accept):
			if i, ok := m.list.SelectedItem().(suggestionItem); ok {
				m.selected = i.index
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.list.CursorUp()
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.list.CursorDown()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 4)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(HiBlack("↑/↓: navigate • enter: run • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen suggestion index, or -1 if cancelled.
func (m PickerModel) Selected() int {
	return m.selected
}

// Pick runs the interactive picker and returns the chosen index, or -1
// when the user cancels.
func Pick(suggestions []match.Suggestion) (int, error) {
	model := NewPickerModel(suggestions)
	p := tea.NewProgram(model)

	final, err := p.Run()
	if err != nil {
		return -1, err
	}

	if m, ok := final.(PickerModel); ok {
		return m.Selected(), nil
	}
	return -1, nil
}

type suggestionItem struct {
	index       int
	command     string
	explanation string
	confidence  match.Confidence
	score       float64
}

func (i suggestionItem) FilterValue() string { return i.command }

type suggestionDelegate struct{}

func newSuggestionDelegate() list.ItemDelegate {
	return suggestionDelegate{}
}

func (d suggestionDelegate) Height() int  { return 2 }
func (d suggestionDelegate) Spacing() int { return 0 }

func (d suggestionDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d suggestionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(suggestionItem)
	if !ok {
		return
	}

	line := i.command
	if index == m.Index() {
		line = Green("> " + line)
	} else {
		line = "  " + line
	}
	fmt.Fprintf(w, "%s\n", line)

	detail := confidenceLabel(i.confidence, i.score)
	if i.explanation != "" {
		detail += " · " + i.explanation
	}
	fmt.Fprintf(w, "%s\n", HiBlack("    "+detail))
}

func confidenceLabel(c match.Confidence, score float64) string {
	switch c {
	case match.ConfidenceCustom:
		return "custom"
	case match.ConfidenceExact:
		return "exact"
	default:
		return fmt.Sprintf("fuzzy %.0f%%", score*100)
	}
}
