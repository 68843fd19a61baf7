package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/wheelhouse-cli/wheelhouse/config"
	"github.com/wheelhouse-cli/wheelhouse/display"
	"github.com/wheelhouse-cli/wheelhouse/pipeline"
	"github.com/wheelhouse-cli/wheelhouse/runner"
	"github.com/wheelhouse-cli/wheelhouse/theme"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:     "run [pipeline.yaml]",
	Short:   "Run executes a release pipeline step by step",
	Example: "wheelhouse run\n  wheelhouse run release.yaml --staging-dir /tmp/staging",
	Long: `
  Run executes a release pipeline in declared step order.

  Without a pipeline file, run uses the built-in release sequence: set up
  the interpreter, build a preview wheel, stage and publish it, then
  reinstall it and run the test suite. A failing step aborts the run.
  `,
	Args: cobra.MaximumNArgs(1),
	Run:  wheelhouseRun,
}

var (
	stagingDirFlag string
	storeDirFlag   string
	workdirFlag    string
	assumeYesFlag  bool
	dryRunFlag     bool
)

func init() {
	runCmd.Flags().StringVar(&stagingDirFlag, "staging-dir", "", "artifact staging directory (defaults to $"+config.StagingDirEnv+")")
	runCmd.Flags().StringVar(&storeDirFlag, "store-dir", "", "artifact store directory")
	runCmd.Flags().StringVarP(&workdirFlag, "workdir", "w", ".", "checkout directory steps run in")
	runCmd.Flags().BoolVarP(&assumeYesFlag, "yes", "y", false, "skip confirmation before the manifest rename")
	runCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "print the resolved steps without executing")
	rootCmd.AddCommand(runCmd)
}

func wheelhouseRun(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	logger := loggerFromCtx(ctx).With("command", "run")

	p, err := resolvePipeline(args)
	if err != nil {
		display.FatalErr(err)
	}

	if dryRunFlag {
		printSteps(p)
		return
	}

	cfg, err := config.LoadFromFile()
	if err != nil {
		logger.Debug("error loading config", "error", err, "message", "falling back to defaults")
		cfg = config.Default()
	}

	storeDir := storeDirFlag
	if storeDir == "" {
		storeDir = cfg.StoreDir
	}
	stagingDir := stagingDirFlag
	if stagingDir == "" {
		stagingDir = config.StagingDir("")
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if p.HasRename() && !assumeYesFlag {
		if err := confirmRename(interactive); err != nil {
			display.FatalErr(err)
		}
	}

	r := runner.New(p,
		runner.WithLogger(logger),
		runner.WithWorkdir(workdirFlag),
		runner.WithStagingDir(stagingDir),
		runner.WithStoreDir(storeDir),
		runner.WithSpinner(interactive),
	)

	logger.Debug("starting run", "run_id", r.RunID(), "pipeline", p.Name)
	if err := r.Run(ctx); err != nil {
		display.FatalErr(fmt.Errorf("pipeline %s: %w", p.Name, err))
	}
	display.Success(fmt.Sprintf("pipeline %s complete (%s)", p.Name, r.RunID()))
}

func resolvePipeline(args []string) (*pipeline.Pipeline, error) {
	if len(args) == 0 {
		return pipeline.Release(), nil
	}
	return pipeline.ParseFile(args[0])
}

// confirmRename warns that the rename step rewrites a tracked file in
// place. There is no restore step, so running twice against the same
// checkout will fail on the second pass.
func confirmRename(interactive bool) error {
	if !interactive {
		return fmt.Errorf("pipeline rewrites the manifest in place; pass --yes to proceed without a prompt")
	}

	var proceed bool
	confirm := huh.NewConfirm().
		Title("This pipeline rewrites the package manifest in place.").
		Description("The rename is not reversible within the run.").
		Affirmative("Proceed").
		Negative("Abort").
		Value(&proceed)
	form := huh.NewForm(huh.NewGroup(confirm)).WithTheme(theme.New())
	if err := form.Run(); err != nil {
		return err
	}
	if !proceed {
		return fmt.Errorf("aborted by user")
	}
	return nil
}
