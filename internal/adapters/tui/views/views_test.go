package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"encyclopedia/internal/adapters/memory"
	"encyclopedia/internal/domain"
)

func newStore() *memory.Store {
	return memory.NewStore(
		domain.Entry{Title: "CSS", Body: "# CSS\n\nStyle sheets."},
		domain.Entry{Title: "HTML", Body: "# HTML\n\nMarkup."},
		domain.Entry{Title: "Python", Body: "# Python\n\nA language."},
	)
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends one key message per rune, discarding the cursor commands
func typeText(m tea.Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeObsidian struct {
	opened []string
}

func (o *fakeObsidian) OpenEntry(title string) error {
	o.opened = append(o.opened, title)
	return nil
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if got := p.TotalPages(); got != 3 {
		t.Errorf("TotalPages() = %d, want 3", got)
	}

	for range 3 {
		p.CursorDown()
	}
	if p.Cursor() != 3 || p.CurrentPage() != 2 {
		t.Errorf("cursor = %d page = %d, want 3 and 2", p.Cursor(), p.CurrentPage())
	}

	if !p.NextPage() || p.Cursor() != 6 {
		t.Errorf("NextPage() should land on 6, cursor = %d", p.Cursor())
	}
	if p.NextPage() {
		t.Error("NextPage() past the end should fail")
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("VisibleRange() = (%d, %d), want (6, 7)", start, end)
	}

	p.SetTotal(2)
	if p.Cursor() != 1 || p.CurrentPage() != 1 {
		t.Errorf("shrinking should clamp cursor, got %d on page %d", p.Cursor(), p.CurrentPage())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 || p.CursorDown() || p.CursorUp() {
		t.Error("empty paginator should not move")
	}

	p.SetTotal(10)
	p.SetCursor(8)
	p.SetPageSize(5)
	if p.CurrentPage() != 2 {
		t.Errorf("SetPageSize should keep cursor visible, page = %d", p.CurrentPage())
	}
}

func TestIndexModel(t *testing.T) {
	m := NewIndexModel(newStore())
	m.Update(run(t, m.Init()))

	if diff := strings.Join(m.Titles(), ","); diff != "CSS,HTML,Python" {
		t.Fatalf("titles = %s", diff)
	}

	m.Update(keyPress("down"))
	if title, _ := m.Selected(); title != "HTML" {
		t.Errorf("Selected() = %q, want HTML", title)
	}

	_, cmd := m.Update(keyPress("enter"))
	if msg, ok := run(t, cmd).(OpenEntryMsg); !ok || msg.Title != "HTML" {
		t.Errorf("enter should open HTML, got %#v", msg)
	}

	_, cmd = m.Update(keyPress("/"))
	if _, ok := run(t, cmd).(SwitchToSearchMsg); !ok {
		t.Error("/ should switch to search")
	}

	_, cmd = m.Update(keyPress("n"))
	if _, ok := run(t, cmd).(SwitchToAddMsg); !ok {
		t.Error("n should switch to the add form")
	}

	if view := m.View(); !strings.Contains(view, "3 entries") {
		t.Errorf("view should count entries:\n%s", view)
	}
}

func TestIndexModel_Empty(t *testing.T) {
	m := NewIndexModel(memory.NewStore())
	m.Update(run(t, m.Init()))

	if _, ok := m.Selected(); ok {
		t.Error("empty index should have no selection")
	}
	if _, cmd := m.Update(keyPress("enter")); cmd != nil {
		t.Error("enter on an empty index should do nothing")
	}
	if view := m.View(); !strings.Contains(view, "No entries yet") {
		t.Errorf("expected empty hint:\n%s", view)
	}
}

func TestSearchModel(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantMsg   tea.Msg
		wantInBox string
	}{
		{
			name:      "exact match opens entry with stored casing",
			query:     "python",
			wantMsg:   OpenEntryMsg{Title: "Python"},
			wantInBox: "Exact match",
		},
		{
			name:      "substring opens first result",
			query:     "ht",
			wantMsg:   OpenEntryMsg{Title: "HTML"},
			wantInBox: "1 results",
		},
		{
			name:      "no results offers create",
			query:     "Rust",
			wantMsg:   SwitchToAddMsg{Title: "Rust"},
			wantInBox: "No results found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSearchModel(newStore())
			typeText(m, tt.query)
			m.Update(run(t, m.Refresh()))

			if view := m.View(); !strings.Contains(view, tt.wantInBox) {
				t.Errorf("view missing %q:\n%s", tt.wantInBox, view)
			}

			_, cmd := m.Update(keyPress("enter"))
			if got := run(t, cmd); got != tt.wantMsg {
				t.Errorf("enter produced %#v, want %#v", got, tt.wantMsg)
			}
		})
	}
}

func TestSearchModel_IgnoresStaleResults(t *testing.T) {
	m := NewSearchModel(newStore())
	typeText(m, "c")
	stale := run(t, m.Refresh())
	typeText(m, "ss")

	m.Update(stale)
	if _, cmd := m.Update(keyPress("enter")); cmd != nil {
		t.Error("enter before the current query resolves should do nothing")
	}

	m.Update(run(t, m.Refresh()))
	_, cmd := m.Update(keyPress("enter"))
	if got := run(t, cmd); got != (OpenEntryMsg{Title: "CSS"}) {
		t.Errorf("got %#v", got)
	}
}

func TestSearchModel_BlankQuery(t *testing.T) {
	m := NewSearchModel(newStore())
	typeText(m, "  ")
	if cmd := m.Refresh(); cmd != nil {
		t.Error("blank query should not search")
	}
	if _, cmd := m.Update(keyPress("enter")); cmd != nil {
		t.Error("enter on a blank query should do nothing")
	}
}

func loadEntry(t *testing.T, m *EntryModel, title string) {
	t.Helper()
	m.Update(run(t, m.Load(title)))
}

func TestEntryModel_Load(t *testing.T) {
	m := NewEntryModel(newStore(), nil, nil, false)
	loadEntry(t, m, "pYtHoN")

	entry, ok := m.Entry()
	if !ok {
		t.Fatal("expected entry to load")
	}
	if entry.Title != "Python" || entry.Body != "# Python\n\nA language." {
		t.Errorf("loaded %#v", entry)
	}
	if view := m.View(); !strings.Contains(view, "A language.") {
		t.Errorf("view should show the body:\n%s", view)
	}
}

func TestEntryModel_NotFoundOffersCreate(t *testing.T) {
	m := NewEntryModel(newStore(), nil, nil, false)
	loadEntry(t, m, "Rust")

	if _, ok := m.Entry(); ok {
		t.Fatal("Rust should not load")
	}
	if view := m.View(); !strings.Contains(view, "no entry with this title") {
		t.Errorf("expected not found page:\n%s", view)
	}

	_, cmd := m.Update(keyPress("n"))
	if got := run(t, cmd); got != (SwitchToAddMsg{Title: "Rust"}) {
		t.Errorf("n produced %#v", got)
	}
}

func TestEntryModel_Actions(t *testing.T) {
	clip := &fakeClipboard{}
	obs := &fakeObsidian{}
	m := NewEntryModel(newStore(), clip, obs, true)
	loadEntry(t, m, "CSS")

	_, cmd := m.Update(keyPress("y"))
	m.Update(run(t, cmd))
	if clip.text != "CSS" || m.Message != "Copied title" {
		t.Errorf("copy title: clipboard %q message %q", clip.text, m.Message)
	}

	_, cmd = m.Update(keyPress("c"))
	m.Update(run(t, cmd))
	if clip.text != "# CSS\n\nStyle sheets." {
		t.Errorf("copy body: clipboard %q", clip.text)
	}

	_, cmd = m.Update(keyPress("o"))
	m.Update(run(t, cmd))
	if len(obs.opened) != 1 || obs.opened[0] != "CSS" {
		t.Errorf("obsidian opened %v", obs.opened)
	}

	_, cmd = m.Update(keyPress("e"))
	if msg, ok := run(t, cmd).(SwitchToEditMsg); !ok || msg.Entry.Title != "CSS" {
		t.Errorf("e produced %#v", msg)
	}

	_, cmd = m.Update(keyPress("E"))
	if msg, ok := run(t, cmd).(EditInEditorMsg); !ok || msg.Entry.Title != "CSS" {
		t.Errorf("E produced %#v", msg)
	}

	_, cmd = m.Update(keyPress("esc"))
	if _, ok := run(t, cmd).(SwitchToIndexMsg); !ok {
		t.Error("esc should go back to the index")
	}
}

func TestEntryModel_MissingCollaborators(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	m := NewEntryModel(newStore(), clip, nil, false)
	loadEntry(t, m, "CSS")

	_, cmd := m.Update(keyPress("y"))
	m.Update(run(t, cmd))
	if !m.MessageErr || !strings.Contains(m.Message, "no display") {
		t.Errorf("expected clipboard failure message, got %q", m.Message)
	}

	if _, cmd := m.Update(keyPress("o")); cmd != nil || !m.MessageErr {
		t.Error("obsidian without an opener should report an error")
	}
	if _, cmd := m.Update(keyPress("E")); cmd != nil || !m.MessageErr {
		t.Error("editor edit without an editor should report an error")
	}
}

func TestFormModel_Add(t *testing.T) {
	store := newStore()
	m := NewFormModel(store)
	m.StartAdd("")

	typeText(m, "Git")
	m.Update(keyPress("tab"))
	typeText(m, "# Git")

	_, cmd := m.Update(keyPress("ctrl+s"))
	msg, ok := run(t, cmd).(EntrySavedMsg)
	if !ok {
		t.Fatalf("expected EntrySavedMsg")
	}
	if msg.Title != "Git" || msg.Message != "Created entry: Git" {
		t.Errorf("saved %#v", msg)
	}
	if body, ok, _ := store.GetBody("Git"); !ok || body != "# Git" {
		t.Errorf("GetBody(Git) = (%q, %v)", body, ok)
	}
}

func TestFormModel_AddExistingTitle(t *testing.T) {
	store := newStore()
	m := NewFormModel(store)
	m.StartAdd("css")
	typeText(m, "dup")

	_, cmd := m.Update(keyPress("ctrl+s"))
	m.Update(run(t, cmd))

	if !m.MessageErr || !strings.Contains(m.Message, `"CSS" already exists`) {
		t.Errorf("expected existing entry error, got %q", m.Message)
	}
	if store.Saves() != 0 {
		t.Errorf("duplicate add must not save, got %d saves", store.Saves())
	}
}

func TestFormModel_AddInvalidTitle(t *testing.T) {
	m := NewFormModel(newStore())
	m.StartAdd("")
	typeText(m, "a/b")
	m.Update(keyPress("tab"))
	typeText(m, "body")

	_, cmd := m.Update(keyPress("ctrl+s"))
	m.Update(run(t, cmd))
	if !m.MessageErr || !strings.Contains(m.Message, "title contains") {
		t.Errorf("expected invalid title message, got %q", m.Message)
	}
}

func TestFormModel_Edit(t *testing.T) {
	store := newStore()
	m := NewFormModel(store)
	m.StartEdit(domain.Entry{Title: "HTML", Body: "# HTML"})

	if m.Mode() != FormEdit {
		t.Fatal("expected edit mode")
	}

	typeText(m, "!")
	_, cmd := m.Update(keyPress("ctrl+s"))
	if _, ok := run(t, cmd).(EntrySavedMsg); !ok {
		t.Fatal("expected EntrySavedMsg")
	}

	body, _, _ := store.GetBody("HTML")
	if !strings.Contains(body, "!") {
		t.Errorf("edit should save the typed text, got %q", body)
	}

	_, cmd = m.Update(keyPress("esc"))
	if got := run(t, cmd); got != (OpenEntryMsg{Title: "HTML"}) {
		t.Errorf("esc in edit mode produced %#v", got)
	}
}

func TestHighlightMatch(t *testing.T) {
	if got := HighlightMatch("Python", ""); got != "Python" {
		t.Errorf("empty query should not change the title, got %q", got)
	}
	if got := HighlightMatch("Python", "zz"); got != "Python" {
		t.Errorf("no match should not change the title, got %q", got)
	}
	if got := HighlightMatch("Python", "TH"); !strings.Contains(got, "th") {
		t.Errorf("highlight should keep stored casing, got %q", got)
	}
}

func TestHelpModel_Close(t *testing.T) {
	m := NewHelpModel()
	if view := m.View(); !strings.Contains(view, "Encyclopedia Help") {
		t.Errorf("unexpected help view:\n%s", view)
	}
	_, cmd := m.Update(keyPress("?"))
	if _, ok := run(t, cmd).(CloseHelpMsg); !ok {
		t.Error("? should close help")
	}
}
