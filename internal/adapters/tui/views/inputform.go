package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"encyclopedia/internal/adapters/tui/styles"
	"encyclopedia/internal/domain"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "next field"),
	),
}

// Form field indexes
const (
	FieldTitle = iota
	FieldBody
)

// InputForm holds the title input and body textarea of an entry form
type InputForm struct {
	Title        textinput.Model
	Body         textarea.Model
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates an empty entry form with the title focused
func NewInputForm() *InputForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = domain.MaxTitleLength

	body := textarea.New()
	body.Placeholder = "Write the entry in markdown..."
	body.ShowLineNumbers = false
	body.CharLimit = 0
	body.MaxHeight = 0

	form := &InputForm{
		Title: title,
		Body:  body,
		Keys:  DefaultInputFormKeys,
	}
	form.SetFocus(FieldTitle)
	return form
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, f.Keys.Tab) {
		f.NextField()
		return true, nil
	}

	var cmd tea.Cmd
	switch f.FocusedField {
	case FieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case FieldBody:
		f.Body, cmd = f.Body.Update(msg)
	}
	return false, cmd
}

// NextField moves focus to the other field
func (f *InputForm) NextField() {
	f.SetFocus((f.FocusedField + 1) % 2)
}

// SetFocus sets focus to a specific field
func (f *InputForm) SetFocus(index int) {
	f.FocusedField = index
	if index == FieldTitle {
		f.Body.Blur()
		f.Title.Focus()
		return
	}
	f.Title.Blur()
	f.Body.Focus()
}

// Values returns the trimmed title and the body as typed
func (f *InputForm) Values() (title, body string) {
	return strings.TrimSpace(f.Title.Value()), f.Body.Value()
}

// SetValues fills both fields
func (f *InputForm) SetValues(title, body string) {
	f.Title.SetValue(title)
	f.Body.SetValue(body)
}

// Reset clears all field values and resets focus to the title
func (f *InputForm) Reset() {
	f.SetValues("", "")
	f.SetFocus(FieldTitle)
}

// SetSize fits the body textarea to the available space
func (f *InputForm) SetSize(width, height int) {
	f.Title.Width = max(width-4, 20)
	f.Body.SetWidth(max(width, 20))
	f.Body.SetHeight(max(height, 3))
}

// RenderField renders a single field with appropriate styling
func (f *InputForm) RenderField(index int) string {
	var label, view string
	switch index {
	case FieldTitle:
		label, view = "Title", f.Title.View()
	case FieldBody:
		label, view = "Body", f.Body.View()
	default:
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.InputLabel.Render(label))
	b.WriteString("\n")

	if index == f.FocusedField {
		b.WriteString(styles.InputFocused.Render(view))
	} else {
		b.WriteString(styles.InputField.Render(view))
	}

	return b.String()
}

// HelpBindings returns the bindings shown under the form
func (f *InputForm) HelpBindings() []key.Binding {
	return []key.Binding{f.Keys.Tab, f.Keys.Submit, f.Keys.Cancel}
}
