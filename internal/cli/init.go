package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a config.yaml seeded from the current flags and environment. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return userError(err)
	}

	path := filepath.Join(s.ConfigDir, configFileExt)
	written, err := writeConfigIfMissing(path, s)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if written {
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration written to", path)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration already exists at", path)
	}
	return nil
}
