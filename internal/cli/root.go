// Package cli provides the command-line interface for propex.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/propex/internal/app"
	"github.com/bobmcallan/propex/internal/common"
)

// newApp builds the application core; tests replace it
var newApp = app.NewApp

// NewRootCmd returns the propex command tree.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "propex",
		Short: "Real-estate scenario comparisons",
		Long: `Propex compares a client's property portfolios against a 1031 exchange,
a cash-out refinance, or a move into a passive investment.

Scenario files may be JSON or YAML and use the same field names as the
POST /api/scenarios body.`,
		Version:       common.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: PROPEX_CONFIG or propex.toml)")

	loadApp := func() (*app.App, error) {
		a, err := newApp(configPath)
		if err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
		return a, nil
	}

	rootCmd.AddCommand(newRunCmd(loadApp))
	rootCmd.AddCommand(newChartCmd(loadApp))
	rootCmd.AddCommand(newValidateCmd(loadApp))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
