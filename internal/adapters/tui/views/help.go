package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"encyclopedia/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Encyclopedia Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("A wiki of markdown entries"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Index"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous/next page"))
	b.WriteString(helpLine("Enter", "Open entry"))
	b.WriteString(helpLine("n", "New entry"))
	b.WriteString(helpLine("/", "Search"))
	b.WriteString(helpLine("r", "Reload"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Entry"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / PgUp / PgDn", "Scroll"))
	b.WriteString(helpLine("e", "Edit in form"))
	b.WriteString(helpLine("E", "Edit in $EDITOR"))
	b.WriteString(helpLine("y / c", "Copy title/body"))
	b.WriteString(helpLine("o", "Open in Obsidian"))
	b.WriteString(helpLine("Esc", "Back to index"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Forms"))
	b.WriteString("\n")
	b.WriteString(helpLine("Tab", "Switch between title and body"))
	b.WriteString(helpLine("Ctrl+S", "Save"))
	b.WriteString(helpLine("Esc", "Cancel"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  An exact title, in any casing, opens the entry."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Anything else lists every title containing the query."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 22)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
