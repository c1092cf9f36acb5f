// Package cli implements the cocoonmeasure command line.
package cli

import (
	"os"

	"cocoon-morph/internal/logger"
	"cocoon-morph/internal/pipeline"
	"cocoon-morph/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "cocoonmeasure <in_image> <out_image>",
		Short: "Measure cocoons against a reference circle",
		Long: "Measures the width, length and area of every cocoon in a top-down photograph\n" +
			"calibrated by a white reference circle. The measurement table is written to\n" +
			"stdout, diagnostics to stderr and an annotated copy of the photograph to out_image.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := o.logger(cmd)
			if err != nil {
				return err
			}
			settings, err := o.settings(cmd.Flags())
			if err != nil {
				return err
			}
			runner, err := pipeline.NewRunner(settings)
			if err != nil {
				return err
			}

			out := runner.Process(pipeline.Job{Input: args[0], Output: args[1]})
			if out.Err != nil {
				return out.Err
			}

			entry := log.WithField("file", args[0])
			report.LogDiagnostics(entry, out.Result)
			if o.summary {
				report.LogSummary(entry, report.Summarize(out.Result.Measurements))
			}
			return report.WriteTable(cmd.OutOrStdout(), out.Result.Measurements, report.TableOptions{
				Header: o.header,
				Pixels: o.pixels,
			})
		},
	}

	o.register(cmd.PersistentFlags())

	cmd.AddCommand(batchCmd(o))
	cmd.AddCommand(versionCmd())
	return cmd
}

func (o *options) logger(cmd *cobra.Command) (*logrus.Logger, error) {
	return logger.New(logger.Config{
		Level:  o.logLevel,
		Format: o.logFormat,
		Output: cmd.ErrOrStderr(),
	})
}
