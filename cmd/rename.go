package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wheelhouse-cli/wheelhouse/display"
	"github.com/wheelhouse-cli/wheelhouse/manifest"
	"golang.org/x/term"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:     "rename",
	Short:   "Rename rewrites the package name declared in the project manifest",
	Example: `wheelhouse rename --manifest pyproject.toml --from onnxscript --to onnxscript-preview`,
	Long: `
  Rename rewrites the package name declared in the project manifest.

  The manifest is parsed, not text-substituted: a manifest that does not
  declare the expected current name fails loudly instead of publishing an
  artifact under the wrong name.
  `,
	Run: func(cmd *cobra.Command, _ []string) {
		logger := loggerFromCtx(cmd.Context()).With("command", "rename")

		if !renameYesFlag {
			interactive := term.IsTerminal(int(os.Stdout.Fd()))
			if err := confirmRename(interactive); err != nil {
				display.FatalErr(err)
			}
		}

		if err := manifest.Rename(manifestFlag, fromFlag, toFlag); err != nil {
			display.FatalErr(err)
		}
		logger.Debug("manifest renamed", "manifest", manifestFlag, "from", fromFlag, "to", toFlag)
		display.Success(fmt.Sprintf("%s: %s -> %s", manifestFlag, fromFlag, toFlag))
	},
}

var (
	manifestFlag  string
	fromFlag      string
	toFlag        string
	renameYesFlag bool
)

func init() {
	renameCmd.Flags().StringVar(&manifestFlag, "manifest", "pyproject.toml", "project manifest to rewrite")
	renameCmd.Flags().StringVar(&fromFlag, "from", "", "current declared package name")
	renameCmd.Flags().StringVar(&toFlag, "to", "", "new package name")
	renameCmd.Flags().BoolVarP(&renameYesFlag, "yes", "y", false, "skip the confirmation prompt")
	renameCmd.MarkFlagRequired("from")
	renameCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(renameCmd)
}
