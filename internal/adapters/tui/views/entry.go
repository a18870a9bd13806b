package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"encyclopedia/internal/adapters/tui/styles"
	"encyclopedia/internal/application"
	"encyclopedia/internal/application/commands"
	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// EntryKeyMap defines key bindings for the entry view
type EntryKeyMap struct {
	Back       key.Binding
	Edit       key.Binding
	EditorEdit key.Binding
	Create     key.Binding
	CopyTitle  key.Binding
	CopyBody   key.Binding
	Obsidian   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var EntryKeys = EntryKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	EditorEdit: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "edit in $EDITOR"),
	),
	Create: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "create"),
	),
	CopyTitle: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy title"),
	),
	CopyBody: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy body"),
	),
	Obsidian: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "obsidian"),
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

// entryChrome is the number of rows used around the body viewport
const entryChrome = 10

// EntryModel shows a single entry in a scrollable viewport
type EntryModel struct {
	ViewState
	store     ports.EntryStore
	clipboard ports.Clipboard
	obsidian  ports.ObsidianOpener
	hasEditor bool

	requested string // Title as requested, any casing
	entry     *domain.Entry
	notFound  bool
	viewport  viewport.Model
}

type entryLoadedMsg struct {
	requested string
	entry     *domain.Entry
	err       error
}

type entryStatusMsg struct {
	message string
	isErr   bool
}

// NewEntryModel creates a new entry view model.
// clipboard and obsidian may be nil, disabling those actions.
func NewEntryModel(store ports.EntryStore, clipboard ports.Clipboard, obsidian ports.ObsidianOpener, hasEditor bool) *EntryModel {
	return &EntryModel{
		store:     store,
		clipboard: clipboard,
		obsidian:  obsidian,
		hasEditor: hasEditor,
		viewport:  viewport.New(80, 20),
	}
}

// Load resets the view and fetches the requested entry
func (m *EntryModel) Load(title string) tea.Cmd {
	m.requested = title
	m.entry = nil
	m.notFound = false
	m.ClearMessage()
	return m.fetch(title)
}

// Reload fetches the current entry again, keeping the scroll position
func (m *EntryModel) Reload() tea.Cmd {
	if m.requested == "" {
		return nil
	}
	return m.fetch(m.requested)
}

// Entry returns the loaded entry, if any
func (m *EntryModel) Entry() (domain.Entry, bool) {
	if m.entry == nil {
		return domain.Entry{}, false
	}
	return *m.entry, true
}

func (m *EntryModel) fetch(title string) tea.Cmd {
	return func() tea.Msg {
		entry, err := commands.NewShowEntryCommand(m.store, title).Execute(context.Background())
		return entryLoadedMsg{requested: title, entry: entry, err: err}
	}
}

// Update handles messages for the entry view
func (m *EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case entryLoadedMsg:
		if msg.requested != m.requested {
			return m, nil
		}
		if msg.err != nil {
			m.entry = nil
			m.notFound = errors.Is(msg.err, application.ErrNotFound)
			if !m.notFound {
				m.SetMessage(msg.err.Error(), true)
			}
			return m, nil
		}
		m.notFound = false
		m.entry = msg.entry
		m.requested = msg.entry.Title
		m.setContent()
		return m, nil

	case entryStatusMsg:
		m.SetMessage(msg.message, msg.isErr)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, EntryKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, EntryKeys.Back):
			return m, func() tea.Msg { return SwitchToIndexMsg{} }

		case key.Matches(msg, EntryKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, EntryKeys.Create):
			if m.notFound {
				title := m.requested
				return m, func() tea.Msg { return SwitchToAddMsg{Title: title} }
			}
			return m, nil
		}

		if m.entry == nil {
			return m, nil
		}
		entry := *m.entry

		switch {
		case key.Matches(msg, EntryKeys.Edit):
			return m, func() tea.Msg { return SwitchToEditMsg{Entry: entry} }

		case key.Matches(msg, EntryKeys.EditorEdit):
			if !m.hasEditor {
				m.SetMessage("No editor available: set $EDITOR", true)
				return m, nil
			}
			return m, func() tea.Msg { return EditInEditorMsg{Entry: entry} }

		case key.Matches(msg, EntryKeys.CopyTitle):
			return m, m.copyText(entry.Title, "Copied title")

		case key.Matches(msg, EntryKeys.CopyBody):
			return m, m.copyText(entry.Body, "Copied body")

		case key.Matches(msg, EntryKeys.Obsidian):
			return m, m.openInObsidian(entry.Title)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *EntryModel) copyText(text, done string) tea.Cmd {
	if m.clipboard == nil {
		m.SetMessage("Clipboard not available", true)
		return nil
	}
	return func() tea.Msg {
		if err := m.clipboard.WriteAll(text); err != nil {
			return entryStatusMsg{fmt.Sprintf("Copy failed: %v", err), true}
		}
		return entryStatusMsg{done, false}
	}
}

func (m *EntryModel) openInObsidian(title string) tea.Cmd {
	if m.obsidian == nil {
		m.SetMessage("Obsidian needs the filesystem backend", true)
		return nil
	}
	return func() tea.Msg {
		if err := m.obsidian.OpenEntry(title); err != nil {
			return entryStatusMsg{fmt.Sprintf("Failed to open Obsidian: %v", err), true}
		}
		return entryStatusMsg{"Opened in Obsidian", false}
	}
}

func (m *EntryModel) setContent() {
	if m.entry == nil {
		return
	}
	width := m.viewport.Width
	m.viewport.SetContent(lipgloss.NewStyle().Width(width).Render(m.entry.Body))
}

// SetSize updates the view dimensions and viewport
func (m *EntryModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = m.bodyHeight(entryChrome)
	m.setContent()
}

// View renders the entry
func (m *EntryModel) View() string {
	switch {
	case m.notFound:
		return NewViewBuilder().
			Title(m.requested).
			Muted("There is no entry with this title yet.").
			Message(m.Message, m.MessageErr).
			Help(EntryKeys.Create, EntryKeys.Back, EntryKeys.Quit).
			String()

	case m.entry == nil:
		return NewViewBuilder().
			Title(m.requested).
			Muted("Loading...").
			Message(m.Message, m.MessageErr).
			Help(EntryKeys.Back, EntryKeys.Quit).
			String()
	}

	editor := EntryKeys.EditorEdit
	editor.SetEnabled(m.hasEditor)
	obsidian := EntryKeys.Obsidian
	obsidian.SetEnabled(m.obsidian != nil)

	return NewViewBuilder().
		Title(m.entry.Title).
		Line(styles.EntryBody.Render(m.viewport.View())).
		Muted(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)).
		Message(m.Message, m.MessageErr).
		Help(EntryKeys.Back, EntryKeys.Edit, editor, EntryKeys.CopyTitle, EntryKeys.CopyBody, obsidian, EntryKeys.Quit).
		String()
}
