// Command cocoonview opens a photograph in the review window.
package main

import (
	"os"

	"cocoon-morph/internal/config"
	"cocoon-morph/internal/pipeline"
	"cocoon-morph/ui/review"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appID = "org.cocoon-morph.view"

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:          "cocoonview [image]",
		Short:        "Review cocoon measurements interactively",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			runner, err := pipeline.NewRunner(settings)
			if err != nil {
				return err
			}

			w := review.New(app.NewWithID(appID), runner)
			if len(args) == 1 {
				if err := w.Load(args[0]); err != nil {
					logrus.WithError(err).WithField("path", args[0]).Error("load failed")
				}
			}
			w.ShowAndRun()
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML settings file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
