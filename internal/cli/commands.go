package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/propex/internal/app"
	"github.com/bobmcallan/propex/internal/common"
	"github.com/bobmcallan/propex/internal/models"
)

type appLoader func() (*app.App, error)

func newRunCmd(loadApp appLoader) *cobra.Command {
	var (
		output  string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "run <scenario-file>",
		Short: "Run a scenario and print the comparison",
		Long: `Run a scenario against the configured forecasting and amortization
services and write the comparison as JSON.

Examples:
  propex run exchange.yaml
  propex run refi.json -o refi-comparison.json
  cat pi.json | propex run -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.ScenarioService.Run(context.Background(), req)
			if err != nil {
				return fmt.Errorf("%s: %w", models.ErrorCode(err), err)
			}

			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			if !compact {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(models.ComparisonEnvelope{Comparison: resp}); err != nil {
				return fmt.Errorf("encode comparison: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), output, buf.Bytes())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the comparison to a file instead of stdout")
	cmd.Flags().BoolVar(&compact, "compact", false, "single-line JSON")
	return cmd
}

func newChartCmd(loadApp appLoader) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "chart <scenario-file>",
		Short: "Run a scenario and render projected equity as a PNG",
		Long: `Run a scenario and plot each portfolio's projected cumulative equity by
year. The untouched clone portfolio is drawn dashed as the baseline.

Examples:
  propex chart exchange.yaml -o exchange.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.ScenarioService.Run(context.Background(), req)
			if err != nil {
				return fmt.Errorf("%s: %w", models.ErrorCode(err), err)
			}

			var buf bytes.Buffer
			if err := a.ScenarioService.RenderEquityChart(resp, &buf); err != nil {
				return err
			}

			if err := writeOutput(cmd.OutOrStdout(), output, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", buf.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newValidateCmd(loadApp appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario-file>",
		Short: "Check a scenario file without calling any service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.ScenarioService.Validate(req); err != nil {
				return fmt.Errorf("%s: %w", models.ErrorCode(err), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s scenario with %d portfolio(s)\n",
				args[0], req.ScenarioType, len(req.Portfolios))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "propex %s\n", common.GetFullVersion())
		},
	}
}

// writeOutput writes data to path, or to w when path is empty
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
