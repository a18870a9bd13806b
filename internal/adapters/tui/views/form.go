package views

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"encyclopedia/internal/application"
	"encyclopedia/internal/application/commands"
	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// FormMode selects what the form does on submit
type FormMode int

const (
	FormAdd FormMode = iota
	FormEdit
)

// formChrome is the number of rows used around the body textarea
const formChrome = 16

// FormModel is the add and edit entry form
type FormModel struct {
	ViewState
	store    ports.EntryStore
	form     *InputForm
	mode     FormMode
	original string // Title being edited, empty for add
	saving   bool
}

type formErrMsg struct {
	err error
}

// NewFormModel creates a new form model
func NewFormModel(store ports.EntryStore) *FormModel {
	return &FormModel{
		store: store,
		form:  NewInputForm(),
	}
}

// StartAdd resets the form for a new entry with an optional title
func (m *FormModel) StartAdd(title string) tea.Cmd {
	m.mode = FormAdd
	m.original = ""
	m.saving = false
	m.ClearMessage()
	m.form.Reset()
	m.form.Title.SetValue(title)
	if title != "" {
		m.form.SetFocus(FieldBody)
	}
	return m.form.Init()
}

// StartEdit fills the form with an existing entry and focuses the body
func (m *FormModel) StartEdit(entry domain.Entry) tea.Cmd {
	m.mode = FormEdit
	m.original = entry.Title
	m.saving = false
	m.ClearMessage()
	m.form.SetValues(entry.Title, entry.Body)
	m.form.SetFocus(FieldBody)
	return m.form.Init()
}

// Mode returns the current form mode
func (m *FormModel) Mode() FormMode {
	return m.mode
}

// Update handles messages for the form
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case formErrMsg:
		m.saving = false
		m.SetMessage(describeSaveError(msg.err), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, m.cancel()

		case key.Matches(msg, m.form.Keys.Submit):
			if m.saving {
				return m, nil
			}
			m.ClearMessage()
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *FormModel) cancel() tea.Cmd {
	if m.mode == FormEdit {
		title := m.original
		return func() tea.Msg { return OpenEntryMsg{Title: title} }
	}
	return func() tea.Msg { return SwitchToIndexMsg{} }
}

func (m *FormModel) submit() tea.Cmd {
	title, body := m.form.Values()
	mode := m.mode
	m.saving = true

	return func() tea.Msg {
		var (
			result *commands.EntryResult
			err    error
		)
		if mode == FormEdit {
			result, err = commands.NewEditEntryCommand(m.store, title, body).Execute(context.Background())
		} else {
			result, err = commands.NewAddEntryCommand(m.store, title, body).Execute(context.Background())
		}
		if err != nil {
			return formErrMsg{err}
		}
		return EntrySavedMsg{Title: result.Title, Message: result.Message}
	}
}

func describeSaveError(err error) string {
	var exists *application.EntryExistsError
	if errors.As(err, &exists) {
		return exists.Error() + ", open it and edit instead"
	}
	return err.Error()
}

// SetSize updates the view dimensions
func (m *FormModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.form.SetSize(width-6, m.bodyHeight(formChrome))
}

// View renders the form
func (m *FormModel) View() string {
	heading := "New Entry"
	if m.mode == FormEdit {
		heading = "Edit " + m.original
	}

	v := NewViewBuilder().Title(heading).
		Line(m.form.RenderField(FieldTitle)).
		Line(m.form.RenderField(FieldBody))

	if m.saving {
		v.Muted("Saving...")
	}

	return v.Message(m.Message, m.MessageErr).
		Help(m.form.HelpBindings()...).
		String()
}
