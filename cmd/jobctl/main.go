// Command jobctl is the operator CLI for migrations, tokens, dashboards and
// Notion exports.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobctl",
		Short:         "Operate the job search backend",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "path to config.yaml (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newMigrateCmd(),
		newTokenCmd(),
		newExportCmd(),
		newDashboardCmd(),
		newVersionCmd(),
	)
	return root
}
