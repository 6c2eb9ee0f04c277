package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and config.yaml",
		Long:  "Create the configuration directory and write a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(state.configDir, 0o755); err != nil {
		return withExitCode(exitSysError, fmt.Errorf("create config directory: %w", err))
	}

	written, err := writeConfigIfMissing(state.configDir)
	if err != nil {
		return withExitCode(exitSysError, fmt.Errorf("write config: %w", err))
	}
	state.log.Debug("init", "config_dir", state.configDir, "written", written)

	fmt.Fprintln(cmd.OutOrStdout(), "Address book initialized successfully")
	fmt.Fprintln(cmd.OutOrStdout(), "  config:", state.configDir)
	return nil
}
