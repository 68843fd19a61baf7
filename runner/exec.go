package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/wheelhouse-cli/wheelhouse/artifact"
	"github.com/wheelhouse-cli/wheelhouse/display"
	"github.com/wheelhouse-cli/wheelhouse/manifest"
	"github.com/wheelhouse-cli/wheelhouse/pipeline"
	"github.com/wheelhouse-cli/wheelhouse/toolchain"
)

var ErrNoStagingDir = errors.New("no staging directory configured")

// outputTail limits how much command output is carried into a step error.
const outputTail = 4096

func (r *Runner) executeStep(ctx context.Context, step pipeline.Step) error {
	switch step.Kind {
	case pipeline.KindToolSetup:
		return r.setupTool(ctx, step)
	case pipeline.KindShell:
		return r.runShell(ctx, step)
	case pipeline.KindRename:
		return r.renamePackage(step)
	case pipeline.KindCopy:
		return r.copyArtifacts(step)
	case pipeline.KindPublish:
		return r.publishArtifacts(step)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

func (r *Runner) setupTool(ctx context.Context, step pipeline.Step) error {
	interp, err := toolchain.Resolve(ctx, step.Version)
	if err != nil {
		return err
	}
	r.python = interp.Path
	r.logger.Info("interpreter selected", "path", interp.Path, "version", interp.Version)
	return nil
}

func (r *Runner) runShell(ctx context.Context, step pipeline.Step) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", step.Command)
	cmd.Dir = r.workdir
	cmd.Env = append(os.Environ(), "PYTHON="+r.pythonOrDefault())

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w\n%s", step.Command, err, tail(out))
	}
	return nil
}

func (r *Runner) renamePackage(step pipeline.Step) error {
	path := step.Manifest
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.workdir, path)
	}
	if err := manifest.Rename(path, step.From, step.To); err != nil {
		return err
	}
	r.logger.Info("manifest renamed", "manifest", path, "from", step.From, "to", step.To)
	return nil
}

func (r *Runner) copyArtifacts(step pipeline.Step) error {
	target := step.Target
	if target == "" {
		target = r.stagingDir
	}
	if target == "" {
		return ErrNoStagingDir
	}

	source := step.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(r.workdir, source)
	}

	staged, err := artifact.Stage(source, target)
	if err != nil {
		return err
	}
	r.logger.Info("wheels staged", "count", len(staged), "staging_dir", target)
	return nil
}

func (r *Runner) publishArtifacts(step pipeline.Step) error {
	if r.stagingDir == "" {
		return ErrNoStagingDir
	}
	rec, err := artifact.Publish(step.Artifact, r.stagingDir, r.storeDir, r.runID)
	if err != nil {
		return err
	}
	display.Info(rec.Summary())
	r.logger.Info("artifact published", "artifact", rec.Artifact, "files", len(rec.Files))
	return nil
}

func (r *Runner) pythonOrDefault() string {
	if r.python != "" {
		return r.python
	}
	return "python"
}

func tail(out []byte) string {
	s := strings.TrimSpace(string(out))
	if len(s) <= outputTail {
		return s
	}
	return "…" + s[len(s)-outputTail:]
}
