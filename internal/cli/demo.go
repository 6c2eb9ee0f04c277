package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/demo"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference address book walkthrough",
		Long: `Demo builds a book with John and Jane, edits one of John's phones,
looks a phone up, deletes Jane, and prints the book after each step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Run(cmd.OutOrStdout(), state.log)
		},
	}
}
