package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"encyclopedia/internal/application/commands"
)

var showTitleOnly bool

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Print an entry",
	Long: `Print the markdown body of an entry. The title may use any casing.

Examples:
  encyclopedia-cli show Python
  encyclopedia-cli show python --title`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := commands.NewShowEntryCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showTitleOnly {
			fmt.Fprintln(out, entry.Title)
			return nil
		}

		fmt.Fprint(out, entry.Body)
		if !strings.HasSuffix(entry.Body, "\n") {
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showTitleOnly, "title", "t", false, "print only the canonical title")
	rootCmd.AddCommand(showCmd)
}
