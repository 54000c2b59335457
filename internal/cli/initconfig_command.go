// filepath: internal/cli/initconfig_command.go
package cli

import (
	"fmt"
	"os"

	"contactgate/internal/config"
	"contactgate/internal/logging"

	"github.com/spf13/cobra"
)

// newInitConfigCommand creates the "init-config" subcommand, which writes a
// starter configuration file with the current effective settings.
func newInitConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write a starter configuration file",
		Long:  "Writes the current effective configuration (defaults merged with flags and environment) to the config path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(cfgFile); err == nil {
				return fmt.Errorf("config file %s already exists, refusing to overwrite", cfgFile)
			}
			if err := config.SaveConfig(cfgFile, cfg); err != nil {
				return err
			}
			logging.Log.Infof("Wrote starter configuration to %s", cfgFile)
			return nil
		},
	}
}
