package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/contacts"
)

const modulePath = "github.com/mesh-intelligence/addressbook"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the addressbook version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "addressbook v%s\nmodule: %s\n", contacts.Version, modulePath)
			return nil
		},
	}
}
