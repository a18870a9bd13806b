package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidTitle is returned when a title cannot be used as a storage key
var ErrInvalidTitle = errors.New("invalid title")

// MaxTitleLength is the longest title accepted, in bytes.
// Leaves room for the ".md" extension under the common 255 byte filename limit.
const MaxTitleLength = 200

// EntryExt is the file extension of stored entries
const EntryExt = ".md"

// forbiddenTitleChars are characters that are illegal in filenames on at
// least one supported platform or would escape the entries directory
const forbiddenTitleChars = `/\:*?"<>|`

// Entry is a single wiki article
type Entry struct {
	Title string // Canonical casing, as stored
	Body  string // Raw markdown
}

// InvalidTitleError describes why a title was rejected
type InvalidTitleError struct {
	Title  string
	Reason string
}

func (e *InvalidTitleError) Error() string {
	return fmt.Sprintf("invalid title %q: %s", e.Title, e.Reason)
}

func (e *InvalidTitleError) Is(target error) bool {
	return target == ErrInvalidTitle
}

// ValidateTitle checks that a title is safe to use as a file base name
func ValidateTitle(title string) error {
	reject := func(reason string) error {
		return &InvalidTitleError{Title: title, Reason: reason}
	}

	switch {
	case title == "":
		return reject("title is empty")
	case title == "." || title == "..":
		return reject("title is a relative path")
	case len(title) > MaxTitleLength:
		return reject(fmt.Sprintf("title is longer than %d bytes", MaxTitleLength))
	case !utf8.ValidString(title):
		return reject("title is not valid UTF-8")
	case strings.HasPrefix(title, "."):
		return reject("title must not start with a dot")
	case strings.HasSuffix(title, ".") || strings.HasSuffix(title, " "):
		return reject("title must not end with a dot or space")
	}

	if i := strings.IndexAny(title, forbiddenTitleChars); i >= 0 {
		return reject(fmt.Sprintf("title contains %q", title[i:i+1]))
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return reject("title contains a control character")
		}
	}

	return nil
}

// FileName returns the stored file name for a title
func FileName(title string) string {
	return title + EntryExt
}

// TitleFromFileName returns the title stored in fileName.
// The second result is false for files that are not entries.
func TitleFromFileName(fileName string) (string, bool) {
	title, ok := strings.CutSuffix(fileName, EntryExt)
	if !ok || title == "" || strings.HasPrefix(title, ".") {
		return "", false
	}
	return title, true
}
