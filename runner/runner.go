// Package runner executes a pipeline's steps strictly in order. The first
// step error aborts the run; nothing is retried or rolled back, and the
// failing step's output is the run's diagnostic.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	huhSpinner "github.com/charmbracelet/huh/spinner"
	"github.com/wheelhouse-cli/wheelhouse/display"
	"github.com/wheelhouse-cli/wheelhouse/idgen"
	"github.com/wheelhouse-cli/wheelhouse/pipeline"
)

type Runner struct {
	pipeline   *pipeline.Pipeline
	logger     *slog.Logger
	workdir    string
	stagingDir string
	storeDir   string
	runID      string
	spin       bool

	// python is the interpreter selected by the tool-setup step,
	// consumed by every later shell step.
	python string
}

type Option func(r *Runner)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithWorkdir sets the checkout directory steps run in.
func WithWorkdir(dir string) Option {
	return func(r *Runner) {
		r.workdir = dir
	}
}

// WithStagingDir sets the orchestrator-provided artifact staging directory.
func WithStagingDir(dir string) Option {
	return func(r *Runner) {
		r.stagingDir = dir
	}
}

// WithStoreDir sets the artifact store directory publishes write to.
func WithStoreDir(dir string) Option {
	return func(r *Runner) {
		r.storeDir = dir
	}
}

// WithSpinner shows a spinner while each step runs. Only useful on a TTY.
func WithSpinner(spin bool) Option {
	return func(r *Runner) {
		r.spin = spin
	}
}

var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

func New(p *pipeline.Pipeline, opts ...Option) *Runner {
	r := &Runner{
		pipeline: p,
		logger:   defaultLogger,
		workdir:  ".",
		runID:    idgen.New(idgen.RunPrefix),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunID identifies this run in publish records and logs.
func (r *Runner) RunID() string {
	return r.runID
}

// Run executes every step in declared order and returns the first step
// failure, wrapped with the step's name.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	total := len(r.pipeline.Steps)
	logger := r.logger.With("pipeline", r.pipeline.Name, "run_id", r.runID)

	for i, step := range r.pipeline.Steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		display.StepStart(i+1, total, step.Name)
		logger.Debug("step starting", "step", step.Name, "kind", step.Kind)
		stepStart := time.Now()

		err := r.execute(ctx, step)

		duration := time.Since(stepStart)
		if err != nil {
			display.StepFailed(i+1, total, step.Name, err)
			logger.Error("step failed", "step", step.Name, "duration", duration, "error", err)
			return fmt.Errorf("step %q failed: %w", step.Name, err)
		}

		display.StepDone(i+1, total, step.Name, duration)
		logger.Debug("step done", "step", step.Name, "duration", duration)
	}

	logger.Info("pipeline complete", "steps", total, "duration", time.Since(start))
	return nil
}

func (r *Runner) execute(ctx context.Context, step pipeline.Step) error {
	if !r.spin {
		return r.executeStep(ctx, step)
	}

	var err error
	action := func() {
		err = r.executeStep(ctx, step)
	}
	if serr := huhSpinner.New().Title(step.Name).Action(action).Run(); serr != nil {
		return serr
	}
	return err
}
