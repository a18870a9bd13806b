package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"encyclopedia/internal/application/commands"
)

var editBody bodyFlags

var editCmd = &cobra.Command{
	Use:   "edit <title>",
	Short: "Overwrite an entry",
	Long: `Overwrite the body of an entry, creating it if missing. Saving under a
different casing replaces the stored entry and its title casing.

Examples:
  encyclopedia-cli edit Python --body "# Python"
  encyclopedia-cli edit Python --file python.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := editBody.read(cmd)
		if err != nil {
			return err
		}

		result, err := commands.NewEditEntryCommand(GetStore(), args[0], body).Execute(context.Background())
		if err != nil {
			return err
		}
		logger.Debug("entry saved", "title", result.Title)
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	editBody.register(editCmd)
	rootCmd.AddCommand(editCmd)
}
