// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard not supported: install xclip, xsel or wl-clipboard")

// System implements ports.Clipboard with the OS clipboard
type System struct{}

// WriteAll replaces the clipboard contents with text
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
