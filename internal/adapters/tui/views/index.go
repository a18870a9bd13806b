package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"encyclopedia/internal/adapters/tui/styles"
	"encyclopedia/internal/application/commands"
	"encyclopedia/internal/ports"
)

// IndexKeyMap defines key bindings for the index view
type IndexKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	New      key.Binding
	Search   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var IndexKeys = IndexKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// indexChrome is the number of rows used around the title list
const indexChrome = 9

// IndexModel lists every entry title, one page at a time
type IndexModel struct {
	ViewState
	store     ports.EntryStore
	titles    []string
	paginator *Paginator
	loaded    bool
}

// TitlesLoadedMsg carries a fresh title list for the index
type TitlesLoadedMsg struct {
	Titles []string
}

// NewIndexModel creates a new index model
func NewIndexModel(store ports.EntryStore) *IndexModel {
	return &IndexModel{
		store:     store,
		paginator: NewPaginator(20),
	}
}

// Init loads the title list
func (m *IndexModel) Init() tea.Cmd {
	return m.loadTitles
}

// Reload reloads titles from the store, keeping the cursor where possible
func (m *IndexModel) Reload() tea.Cmd {
	return m.loadTitles
}

func (m *IndexModel) loadTitles() tea.Msg {
	titles, err := commands.NewListEntriesCommand(m.store).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return TitlesLoadedMsg{Titles: titles}
}

// Titles returns the loaded titles
func (m *IndexModel) Titles() []string {
	return m.titles
}

// Selected returns the title under the cursor
func (m *IndexModel) Selected() (string, bool) {
	c := m.paginator.Cursor()
	if c < 0 || c >= len(m.titles) {
		return "", false
	}
	return m.titles[c], true
}

// Update handles messages for the index
func (m *IndexModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case TitlesLoadedMsg:
		m.titles = msg.Titles
		m.loaded = true
		m.paginator.SetTotal(len(m.titles))
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, IndexKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, IndexKeys.Up):
			m.paginator.CursorUp()

		case key.Matches(msg, IndexKeys.Down):
			m.paginator.CursorDown()

		case key.Matches(msg, IndexKeys.PrevPage):
			m.paginator.PrevPage()

		case key.Matches(msg, IndexKeys.NextPage):
			m.paginator.NextPage()

		case key.Matches(msg, IndexKeys.Open):
			if title, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenEntryMsg{Title: title} }
			}

		case key.Matches(msg, IndexKeys.New):
			return m, func() tea.Msg { return SwitchToAddMsg{} }

		case key.Matches(msg, IndexKeys.Search):
			return m, func() tea.Msg { return SwitchToSearchMsg{} }

		case key.Matches(msg, IndexKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, IndexKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

// SetSize updates the view dimensions and page size
func (m *IndexModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(m.bodyHeight(indexChrome))
}

// View renders the index
func (m *IndexModel) View() string {
	v := NewViewBuilder().Title("Encyclopedia")

	if !m.loaded {
		return v.Muted("Loading...").String()
	}

	v.Subtitle(fmt.Sprintf("%d entries", len(m.titles)))

	if len(m.titles) == 0 {
		v.Muted("No entries yet. Press n to write the first one.")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		if i == m.paginator.Cursor() {
			v.Line(styles.EntrySelected.Render(m.titles[i]))
		} else {
			v.Line(styles.EntryTitle.Render(m.titles[i]))
		}
	}

	if pages := m.paginator.TotalPages(); pages > 1 {
		v.BlankLine().Muted(fmt.Sprintf("Page %d of %d", m.paginator.CurrentPage(), pages))
	}

	return v.Message(m.Message, m.MessageErr).
		Help(IndexKeys.Open, IndexKeys.New, IndexKeys.Search, IndexKeys.PrevPage, IndexKeys.NextPage, IndexKeys.Help, IndexKeys.Quit).
		String()
}
