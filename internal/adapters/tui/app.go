package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"encyclopedia/internal/adapters/editor"
	"encyclopedia/internal/adapters/tui/views"
	"encyclopedia/internal/application/commands"
	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewIndex ViewState = iota
	ViewEntry
	ViewSearch
	ViewForm
	ViewHelp
)

// Options carries the optional collaborators of the App
type Options struct {
	Editor    ports.EditorOpener
	Clipboard ports.Clipboard
	Obsidian  ports.ObsidianOpener
	Changes   <-chan struct{} // Signals that entries changed on disk
	Logger    *slog.Logger
}

// App is the main TUI application model
type App struct {
	store   ports.EntryStore
	editor  ports.EditorOpener
	changes <-chan struct{}
	logger  *slog.Logger

	state    ViewState
	previous ViewState // View that opened help
	index    *views.IndexModel
	entry    *views.EntryModel
	search   *views.SearchModel
	form     *views.FormModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.EntryStore, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		store:   store,
		editor:  opts.Editor,
		changes: opts.Changes,
		logger:  logger,
		state:   ViewIndex,
		index:   views.NewIndexModel(store),
		entry:   views.NewEntryModel(store, opts.Clipboard, opts.Obsidian, opts.Editor != nil),
		search:  views.NewSearchModel(store),
		form:    views.NewFormModel(store),
		help:    views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.index.Init(), a.waitForChange())
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.index.SetSize(msg.Width, msg.Height)
		a.entry.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToIndexMsg:
		a.state = ViewIndex
		return a, a.index.Reload()

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		if a.state != ViewHelp {
			a.previous = a.state
		}
		a.state = ViewHelp
		return a, nil

	case views.CloseHelpMsg:
		a.state = a.previous
		if a.state == ViewIndex {
			return a, a.index.Reload()
		}
		return a, nil

	case views.OpenEntryMsg:
		a.state = ViewEntry
		return a, a.entry.Load(msg.Title)

	case views.SwitchToAddMsg:
		a.state = ViewForm
		return a, a.form.StartAdd(msg.Title)

	case views.SwitchToEditMsg:
		a.state = ViewForm
		return a, a.form.StartEdit(msg.Entry)

	case views.EntrySavedMsg:
		a.logger.Info("entry saved", "title", msg.Title)
		a.state = ViewEntry
		cmd := a.entry.Load(msg.Title)
		a.entry.SetMessage(msg.Message, false)
		return a, tea.Batch(cmd, a.index.Reload())

	case views.EditInEditorMsg:
		return a, a.openEditor(msg.Entry)

	case editorFinishedMsg:
		return a, a.finishEditor(msg)

	case views.TitlesLoadedMsg:
		// The index reloads in the background while other views are active
		_, cmd := a.index.Update(msg)
		return a, cmd

	case views.EntriesChangedMsg:
		a.logger.Debug("entries changed on disk")
		return a, tea.Batch(a.refresh(), a.waitForChange())
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewIndex:
		_, cmd = a.index.Update(msg)
	case ViewEntry:
		_, cmd = a.entry.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// refresh recomputes whatever the active view derives from the store
func (a *App) refresh() tea.Cmd {
	switch a.state {
	case ViewEntry:
		return tea.Batch(a.index.Reload(), a.entry.Reload())
	case ViewSearch:
		return tea.Batch(a.index.Reload(), a.search.Refresh())
	default:
		return a.index.Reload()
	}
}

func (a *App) waitForChange() tea.Cmd {
	if a.changes == nil {
		return nil
	}
	changes := a.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return views.EntriesChangedMsg{}
	}
}

type editorFinishedMsg struct {
	title string
	draft *editor.Draft
	err   error
}

func (a *App) openEditor(entry domain.Entry) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	draft, err := editor.NewDraft(entry.Title, entry.Body)
	if err != nil {
		return func() tea.Msg { return editorFinishedMsg{title: entry.Title, err: err} }
	}

	cmd, err := a.editor.Command(draft.Path())
	if err != nil {
		draft.Remove()
		return func() tea.Msg { return editorFinishedMsg{title: entry.Title, err: err} }
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{title: entry.Title, draft: draft, err: err}
	})
}

// finishEditor saves the draft back as the entry body
func (a *App) finishEditor(msg editorFinishedMsg) tea.Cmd {
	if msg.draft != nil {
		defer msg.draft.Remove()
	}

	if msg.err != nil {
		a.logger.Warn("editor failed", "title", msg.title, "err", msg.err)
		return a.entryStatus(fmt.Sprintf("Editor failed: %v", msg.err))
	}

	body, err := msg.draft.Read()
	if err != nil {
		return a.entryStatus(err.Error())
	}

	if current, ok := a.entry.Entry(); ok && current.Title == msg.title && current.Body == body {
		return nil
	}

	result, err := commands.NewEditEntryCommand(a.store, msg.title, body).Execute(context.Background())
	if err != nil {
		return a.entryStatus(err.Error())
	}

	return func() tea.Msg {
		return views.EntrySavedMsg{Title: result.Title, Message: result.Message}
	}
}

func (a *App) entryStatus(message string) tea.Cmd {
	a.entry.SetMessage(message, true)
	return nil
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEntry:
		return a.entry.View()
	case ViewSearch:
		return a.search.View()
	case ViewForm:
		return a.form.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.index.View()
	}
}
