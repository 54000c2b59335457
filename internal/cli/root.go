// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "contactgate",
	Short: "ContactGate API",
	Long:  `A documented REST gateway exposing the contacts of a messaging platform over its command protocol.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	StartTime = time.Now()

	RootCmd.AddCommand(newInitConfigCommand())

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
