package pipeline_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelhouse-cli/wheelhouse/pipeline"
)

func TestParseFile(t *testing.T) {
	p, err := pipeline.ParseFile(filepath.Join("testdata", "release.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "preview-release", p.Name)
	assert.Len(t, p.Steps, 7)
	assert.Equal(t, pipeline.KindToolSetup, p.Steps[0].Kind)
	assert.Equal(t, "3.11", p.Steps[0].Version)
	assert.True(t, p.HasRename())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errLike string
	}{
		{
			name:  "Minimal",
			input: "name: smoke\nsteps:\n  - name: Echo\n    kind: shell\n    command: echo hi\n",
		},
		{
			name:    "MissingPipelineName",
			input:   "steps:\n  - name: Echo\n    kind: shell\n    command: echo hi\n",
			errLike: "must have a name",
		},
		{
			name:    "UnknownField",
			input:   "name: smoke\nsteps:\n  - name: Echo\n    kind: shell\n    command: echo hi\n    retries: 3\n",
			errLike: "parsing pipeline",
		},
		{
			name:    "NotYAML",
			input:   "{{{",
			errLike: "parsing pipeline",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := pipeline.Parse([]byte(tc.input))
			if tc.errLike != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.errLike)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
		})
	}
}

func TestRelease(t *testing.T) {
	p := pipeline.Release()
	require.NoError(t, p.Validate())
	require.Len(t, p.Steps, 9)

	kinds := make([]pipeline.Kind, 0, len(p.Steps))
	for _, s := range p.Steps {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []pipeline.Kind{
		pipeline.KindToolSetup,
		pipeline.KindShell,
		pipeline.KindRename,
		pipeline.KindShell,
		pipeline.KindCopy,
		pipeline.KindPublish,
		pipeline.KindShell,
		pipeline.KindShell,
		pipeline.KindShell,
	}, kinds)

	t.Run("RenameTargetsPreviewName", func(t *testing.T) {
		rename := p.Steps[2]
		assert.Equal(t, "pyproject.toml", rename.Manifest)
		assert.Equal(t, "onnxscript", rename.From)
		assert.Equal(t, "onnxscript-preview", rename.To)
	})

	t.Run("PublishFollowsCopy", func(t *testing.T) {
		var copyIdx, publishIdx int
		for i, s := range p.Steps {
			switch s.Kind {
			case pipeline.KindCopy:
				copyIdx = i
			case pipeline.KindPublish:
				publishIdx = i
			}
		}
		assert.Greater(t, publishIdx, copyIdx)
	})

	t.Run("TestsRunAfterPublish", func(t *testing.T) {
		var publishIdx int
		for i, s := range p.Steps {
			if s.Kind == pipeline.KindPublish {
				publishIdx = i
			}
		}
		last := p.Steps[len(p.Steps)-1]
		assert.Contains(t, last.Command, "pytest")
		assert.Greater(t, len(p.Steps)-1, publishIdx)
	})

	t.Run("WheelInstallSkipsDependencyResolution", func(t *testing.T) {
		install := p.Steps[7]
		assert.Contains(t, install.Command, "--no-deps")
		assert.Contains(t, install.Command, "dist/*.whl")
	})

	t.Run("PublishesUnderOriginalName", func(t *testing.T) {
		assert.Equal(t, "onnxscript", p.Steps[5].Artifact)
	})
}
