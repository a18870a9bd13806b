package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"encyclopedia/internal/adapters/tui/styles"
	"encyclopedia/internal/application/commands"
	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// searchChrome is the number of rows used around the result list
const searchChrome = 12

// SearchModel resolves the query as the user types.
// Enter on an exact title opens it; otherwise it opens the selected result.
type SearchModel struct {
	ViewState
	store  ports.EntryStore
	input  textinput.Model
	result domain.QueryResult
	query  string // Query the result belongs to
	cursor int
}

type searchResultsMsg struct {
	query  string
	result domain.QueryResult
}

// NewSearchModel creates a new search view model
func NewSearchModel(store ports.EntryStore) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search titles..."
	input.CharLimit = domain.MaxTitleLength
	input.Focus()

	return &SearchModel{
		store: store,
		input: input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears the query and results
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.result = domain.QueryResult{}
	m.query = ""
	m.cursor = 0
	m.ClearMessage()
	m.input.Focus()
}

// Refresh resolves the current query again, for example after the store changed
func (m *SearchModel) Refresh() tea.Cmd {
	return m.search(m.input.Value())
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		if msg.query != m.input.Value() {
			// Stale result for an earlier keystroke
			return m, nil
		}
		m.query = msg.query
		m.result = msg.result
		m.cursor = min(m.cursor, max(len(m.matches())-1, 0))
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg { return SwitchToIndexMsg{} }

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.matches())-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			return m, m.selectCmd()
		}
	}

	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if query := m.input.Value(); query != before {
		m.cursor = 0
		m.ClearMessage()
		return m, tea.Batch(cmd, m.search(query))
	}

	return m, cmd
}

func (m *SearchModel) selectCmd() tea.Cmd {
	if m.query != m.input.Value() || strings.TrimSpace(m.query) == "" {
		return nil
	}

	if title, ok := m.result.Redirect(); ok {
		return func() tea.Msg { return OpenEntryMsg{Title: title} }
	}

	if matches := m.matches(); m.cursor < len(matches) {
		title := matches[m.cursor]
		return func() tea.Msg { return OpenEntryMsg{Title: title} }
	}

	title := m.query
	return func() tea.Msg { return SwitchToAddMsg{Title: title} }
}

// matches returns the selectable titles for the current result
func (m *SearchModel) matches() []string {
	if title, ok := m.result.Redirect(); ok {
		return []string{title}
	}
	return m.result.Results
}

func (m *SearchModel) search(query string) tea.Cmd {
	if strings.TrimSpace(query) == "" {
		m.query = query
		m.result = domain.QueryResult{}
		return nil
	}
	return func() tea.Msg {
		result, err := commands.NewSearchCommand(m.store, query).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg{query: query, result: result}
	}
}

// SetSize updates the view dimensions
func (m *SearchModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.input.Width = max(width-10, 20)
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder().Title("Search").
		Line(styles.InputFocused.Render(m.input.View())).
		BlankLine()

	matches := m.matches()
	_, redirect := m.result.Redirect()

	switch {
	case strings.TrimSpace(m.input.Value()) == "":
		v.Muted("Type a title or part of one")
	case m.query != m.input.Value():
		v.Muted("Searching...")
	case redirect:
		v.Line(styles.Redirect.Render("Exact match, enter opens it"))
		v.BlankLine()
	case len(matches) == 0:
		v.Muted("No results found. Press enter to create this entry.")
	default:
		v.Subtitle(fmt.Sprintf("%d results", len(matches)))
	}

	limit := m.bodyHeight(searchChrome)
	start := 0
	if m.cursor >= limit {
		start = m.cursor - limit + 1
	}
	end := min(start+limit, len(matches))
	for i := start; i < end; i++ {
		if i == m.cursor {
			v.Line(styles.EntrySelected.Render(matches[i]))
		} else {
			v.Line(HighlightMatch(matches[i], m.query))
		}
	}
	if end < len(matches) {
		v.Muted(fmt.Sprintf("... and %d more", len(matches)-end))
	}

	return v.Message(m.Message, m.MessageErr).
		Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel).
		String()
}
