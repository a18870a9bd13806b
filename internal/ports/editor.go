package ports

import "os/exec"

// EditorOpener launches the user's text editor on a file
type EditorOpener interface {
	// OpenFile edits path and blocks until the editor exits
	OpenFile(path string) error

	// Command builds the editor process without starting it, for callers
	// that need to hand the terminal over, such as tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}

// Clipboard copies text for the user
type Clipboard interface {
	WriteAll(text string) error
}
