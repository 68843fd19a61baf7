package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wheelhouse-cli/wheelhouse/display"
	"github.com/wheelhouse-cli/wheelhouse/pipeline"
	"github.com/wheelhouse-cli/wheelhouse/slice"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate [pipeline.yaml]",
	Short:   "Validate checks a pipeline's steps and ordering without executing it",
	Example: "wheelhouse validate release.yaml",
	Long: `
  Validate decodes a pipeline file and checks the ordering contract:
  publish must follow copy, copy must follow a build step, and the
  manifest rename must land before the artifact is captured.
  `,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := resolvePipeline(args)
		if err != nil {
			display.FatalErr(err)
		}
		// ParseFile already validates; the built-in sequence is checked
		// here so a drifted default can never pass silently.
		if err := p.Validate(); err != nil {
			display.FatalErr(err)
		}
		publishes := slice.Filter(p.Steps, func(s pipeline.Step) bool {
			return s.Kind == pipeline.KindPublish
		})
		display.Success(fmt.Sprintf("pipeline %s: %d steps, %d publish, ordering ok",
			p.Name, len(p.Steps), len(publishes)))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
