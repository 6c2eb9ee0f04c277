package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/shell"
	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Manage contacts interactively",
		Long: `Shell reads commands from standard input, one per line, and applies them
to an empty in-memory address book. Type "help" for the command list.

Example:
  printf 'add John 1234567890\nall\n' | addressbook shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			sh := shell.New(types.NewAddressBook(), shell.Options{
				Prompt:      state.cfg.Prompt,
				Interactive: shell.IsTerminal(in),
				Logger:      state.log,
			})
			state.log.Info("shell started")
			return sh.Run(in, cmd.OutOrStdout())
		},
	}
}
