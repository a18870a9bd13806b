package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"encyclopedia/internal/application/commands"
)

var addBody bodyFlags

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new entry",
	Long: `Create a new entry. Fails when an entry with the same title already
exists in any casing; use edit to change it.

Examples:
  encyclopedia-cli add Git --body "# Git"
  encyclopedia-cli add Git --file git.md
  echo "# Git" | encyclopedia-cli add Git`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := addBody.read(cmd)
		if err != nil {
			return err
		}

		result, err := commands.NewAddEntryCommand(GetStore(), args[0], body).Execute(context.Background())
		if err != nil {
			return err
		}
		logger.Debug("entry created", "title", result.Title)
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	addBody.register(addCmd)
	rootCmd.AddCommand(addCmd)
}
