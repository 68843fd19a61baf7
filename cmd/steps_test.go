package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelhouse-cli/wheelhouse/pipeline"
)

func TestResolvePipeline(t *testing.T) {
	t.Run("DefaultsToReleaseSequence", func(t *testing.T) {
		p, err := resolvePipeline(nil)
		require.NoError(t, err)
		assert.Equal(t, "release", p.Name)
		assert.Len(t, p.Steps, 9)
	})

	t.Run("LoadsPipelineFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "smoke.yaml")
		content := "name: smoke\nsteps:\n  - name: Echo\n    kind: shell\n    command: echo hi\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		p, err := resolvePipeline([]string{path})
		require.NoError(t, err)
		assert.Equal(t, "smoke", p.Name)
	})

	t.Run("FailsOnMissingFile", func(t *testing.T) {
		_, err := resolvePipeline([]string{filepath.Join(t.TempDir(), "nope.yaml")})
		assert.Error(t, err)
	})
}

func TestStepLine(t *testing.T) {
	tests := []struct {
		name string
		step pipeline.Step
		want string
	}{
		{
			name: "ToolSetup",
			step: pipeline.Step{Name: "Set up Python", Kind: pipeline.KindToolSetup, Version: "3.11"},
			want: " 1. [tool-setup] Set up Python: python 3.11",
		},
		{
			name: "Shell",
			step: pipeline.Step{Name: "Build wheel", Kind: pipeline.KindShell, Command: "$PYTHON -m build"},
			want: " 1. [shell] Build wheel: $PYTHON -m build",
		},
		{
			name: "Rename",
			step: pipeline.Step{Name: "Rename", Kind: pipeline.KindRename, Manifest: "pyproject.toml", From: "a", To: "b"},
			want: " 1. [rename-package] Rename: pyproject.toml: a -> b",
		},
		{
			name: "Copy",
			step: pipeline.Step{Name: "Copy", Kind: pipeline.KindCopy, Source: "dist"},
			want: " 1. [copy] Copy: dist/*.whl -> staging",
		},
		{
			name: "Publish",
			step: pipeline.Step{Name: "Publish", Kind: pipeline.KindPublish, Artifact: "onnxscript"},
			want: " 1. [publish] Publish: artifact onnxscript",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := stepLine(1, tc.step)
			assert.Equal(t, tc.want, got)
			// Step lines end up in CI logs; keep them plain ASCII.
			for _, r := range got {
				assert.Less(t, r, rune(128), "non-ASCII rune in step line %q", got)
			}
		})
	}
}
