package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"encyclopedia/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every entry title",
	Long: `List every entry title, one per line, in sorted order.

Examples:
  encyclopedia-cli list
  encyclopedia-cli list --backend sqlite`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		titles, err := commands.NewListEntriesCommand(GetStore()).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(titles) == 0 {
			fmt.Fprintln(out, "No entries")
			return nil
		}
		for _, title := range titles {
			fmt.Fprintln(out, title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
