package cli

import (
	"fmt"
	"os"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/internal/photo"
	"cocoon-morph/internal/pipeline"
	"cocoon-morph/internal/report"

	"github.com/spf13/cobra"
)

func batchCmd(o *options) *cobra.Command {
	var outDir string
	var jobs int

	c := &cobra.Command{
		Use:   "batch <image|dir>...",
		Short: "Measure several photographs into one table",
		Long: "Processes every listed photograph (directories are expanded to the images they\n" +
			"contain) and prints a single table with a leading file column, in input order.\n" +
			"Annotated copies are written to --out-dir when it is set.",
		Args:         cobra.MinimumNArgs(1),
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

			inputs, err := photo.Expand(args)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no images found")
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}

			js := make([]pipeline.Job, len(inputs))
			for i, in := range inputs {
				js[i] = pipeline.Job{Input: in}
				if outDir != "" {
					js[i].Output = photo.OutputPath(outDir, in)
				}
			}

			table := report.NewTable(cmd.OutOrStdout(), report.TableOptions{
				Header:     o.header,
				FileColumn: true,
				Pixels:     o.pixels,
			})

			var all []cocoon.Measurement
			failed := 0
			for _, out := range runner.ProcessAll(js, jobs) {
				entry := log.WithField("file", out.Job.Input)
				if out.Err != nil {
					entry.WithError(out.Err).Error("photograph failed")
					failed++
				}
				if out.Result == nil {
					continue
				}
				report.LogDiagnostics(entry, out.Result)
				if err := table.Write(out.Job.Input, out.Result.Measurements); err != nil {
					return err
				}
				all = append(all, out.Result.Measurements...)
			}
			if err := table.Flush(); err != nil {
				return err
			}

			if o.summary {
				report.LogSummary(log.WithField("files", len(inputs)), report.Summarize(all))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d photographs failed", failed, len(inputs))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&outDir, "out-dir", "o", "", "directory for annotated copies (skipped when empty)")
	c.Flags().IntVarP(&jobs, "jobs", "j", 0, "photographs processed in parallel (0 = number of CPUs)")
	return c
}
