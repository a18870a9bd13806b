package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// bodyFlags are shared by add and edit
type bodyFlags struct {
	body string
	file string
}

func (f *bodyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.body, "body", "", "entry body")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read the body from a file, - for stdin")
	cmd.MarkFlagsMutuallyExclusive("body", "file")
}

// read returns the body from --body, --file or piped stdin, in that order
func (f *bodyFlags) read(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("body") {
		return f.body, nil
	}

	switch f.file {
	case "":
		if isTerminal(cmd.InOrStdin()) {
			return "", errors.New("no body given: use --body, --file or pipe it on stdin")
		}
		return readAll(cmd.InOrStdin())
	case "-":
		return readAll(cmd.InOrStdin())
	default:
		data, err := os.ReadFile(f.file)
		if err != nil {
			return "", fmt.Errorf("failed to read body: %w", err)
		}
		return string(data), nil
	}
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(data), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
