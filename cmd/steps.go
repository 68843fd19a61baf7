package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wheelhouse-cli/wheelhouse/display"
	"github.com/wheelhouse-cli/wheelhouse/pipeline"
)

// stepsCmd represents the steps command
var stepsCmd = &cobra.Command{
	Use:     "steps [pipeline.yaml]",
	Short:   "Steps prints a pipeline's resolved step list in execution order",
	Example: "wheelhouse steps",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := resolvePipeline(args)
		if err != nil {
			display.FatalErr(err)
		}
		printSteps(p)
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func printSteps(p *pipeline.Pipeline) {
	display.Info(fmt.Sprintf("pipeline %s", p.Name))
	for i, s := range p.Steps {
		fmt.Println(stepLine(i+1, s))
	}
}

func stepLine(n int, s pipeline.Step) string {
	detail := stepDetail(s)
	if detail == "" {
		return fmt.Sprintf("%2d. [%s] %s", n, s.Kind, s.Name)
	}
	return fmt.Sprintf("%2d. [%s] %s: %s", n, s.Kind, s.Name, detail)
}

func stepDetail(s pipeline.Step) string {
	switch s.Kind {
	case pipeline.KindToolSetup:
		return "python " + s.Version
	case pipeline.KindShell:
		return s.Command
	case pipeline.KindRename:
		return fmt.Sprintf("%s: %s -> %s", s.Manifest, s.From, s.To)
	case pipeline.KindCopy:
		return s.Source + "/*.whl -> staging"
	case pipeline.KindPublish:
		return "artifact " + s.Artifact
	}
	return ""
}
