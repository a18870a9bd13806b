package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"encyclopedia/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entry titles",
	Long: `Search entry titles, ignoring case.

A query that names an entry exactly prints the redirect target. Anything
else lists every title containing the query.

Examples:
  encyclopedia-cli search python
  encyclopedia-cli search ht`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewSearchCommand(GetStore(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if title, ok := result.Redirect(); ok {
			fmt.Fprintf(out, "-> %s\n", title)
			return nil
		}

		if len(result.Results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}
		for _, title := range result.Results {
			fmt.Fprintln(out, title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
