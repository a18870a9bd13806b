package views

import "encyclopedia/internal/domain"

// Navigation messages handled by the App

type SwitchToIndexMsg struct{}

type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

// CloseHelpMsg returns to the view that opened help
type CloseHelpMsg struct{}

// SwitchToAddMsg opens the add form, optionally with a prefilled title
type SwitchToAddMsg struct {
	Title string
}

// SwitchToEditMsg opens the edit form for an entry
type SwitchToEditMsg struct {
	Entry domain.Entry
}

// OpenEntryMsg shows an entry. The title may use any casing.
type OpenEntryMsg struct {
	Title string
}

// EditInEditorMsg asks the App to edit an entry body in $EDITOR
type EditInEditorMsg struct {
	Entry domain.Entry
}

// EntrySavedMsg is sent after an add or edit succeeds
type EntrySavedMsg struct {
	Title   string
	Message string
}

// EntriesChangedMsg is sent when the entry store changed outside the TUI
type EntriesChangedMsg struct{}

type errMsg struct {
	err error
}
