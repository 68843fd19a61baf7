package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelhouse-cli/wheelhouse/manifest"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const fullManifest = `[build-system]
requires = ["setuptools>=61.0"]

[project]
name = "onnxscript"
version = "0.1.0"
description = "ONNX Script"

[tool.pytest.ini_options]
addopts = "-ra"
`

func TestLoad(t *testing.T) {
	t.Run("ReadsDeclaredName", func(t *testing.T) {
		path := writeManifest(t, fullManifest)
		m, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "onnxscript", m.Name)
	})

	t.Run("FailsOnMissingFile", func(t *testing.T) {
		_, err := manifest.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("FailsOnMissingName", func(t *testing.T) {
		path := writeManifest(t, "[project]\nversion = \"0.1.0\"\n")
		_, err := manifest.Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, manifest.ErrNoProjectName)
	})

	t.Run("FailsOnBadTOML", func(t *testing.T) {
		path := writeManifest(t, "[project\nname = onnxscript")
		_, err := manifest.Load(path)
		assert.Error(t, err)
	})
}

func TestRename(t *testing.T) {
	t.Run("RewritesName", func(t *testing.T) {
		path := writeManifest(t, fullManifest)
		require.NoError(t, manifest.Rename(path, "onnxscript", "onnxscript-preview"))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `name = "onnxscript-preview"`)
		assert.NotContains(t, string(raw), `name = "onnxscript"`+"\n")

		m, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "onnxscript-preview", m.Name)
	})

	t.Run("PreservesOtherTables", func(t *testing.T) {
		path := writeManifest(t, fullManifest)
		require.NoError(t, manifest.Rename(path, "onnxscript", "onnxscript-preview"))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `requires = ["setuptools>=61.0"]`)
		assert.Contains(t, string(raw), `addopts = "-ra"`)
		assert.Contains(t, string(raw), `version = "0.1.0"`)
	})

	// The source template's sed silently no-opped when the formatting
	// drifted. The structural rename must handle that formatting.
	t.Run("HandlesTightFormatting", func(t *testing.T) {
		path := writeManifest(t, "[project]\nname=\"onnxscript\"\nversion = \"0.1.0\"\n")
		require.NoError(t, manifest.Rename(path, "onnxscript", "onnxscript-preview"))

		m, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "onnxscript-preview", m.Name)
	})

	t.Run("HandlesSingleQuotes", func(t *testing.T) {
		path := writeManifest(t, "[project]\nname = 'onnxscript'\n")
		require.NoError(t, manifest.Rename(path, "onnxscript", "onnxscript-preview"))

		m, err := manifest.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "onnxscript-preview", m.Name)
	})

	t.Run("LeavesNameKeysInOtherTables", func(t *testing.T) {
		content := "[tool.custom]\nname = \"onnxscript\"\n\n[project]\nname = \"onnxscript\"\n"
		path := writeManifest(t, content)
		require.NoError(t, manifest.Rename(path, "onnxscript", "onnxscript-preview"))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "[tool.custom]\nname = \"onnxscript\"")
	})

	t.Run("FailsOnMismatchedName", func(t *testing.T) {
		path := writeManifest(t, "[project]\nname = \"something-else\"\n")
		err := manifest.Rename(path, "onnxscript", "onnxscript-preview")
		require.Error(t, err)
		assert.ErrorIs(t, err, manifest.ErrNameMismatch)
	})

	t.Run("FailsInsteadOfNoOp", func(t *testing.T) {
		path := writeManifest(t, "[project]\nversion = \"0.1.0\"\n")
		err := manifest.Rename(path, "onnxscript", "onnxscript-preview")
		require.Error(t, err)
		assert.ErrorIs(t, err, manifest.ErrNoProjectName)
	})

	t.Run("SecondRenameFails", func(t *testing.T) {
		// The step is destructive and non-idempotent: running the
		// sequence twice against one checkout must fail, not no-op.
		path := writeManifest(t, fullManifest)
		require.NoError(t, manifest.Rename(path, "onnxscript", "onnxscript-preview"))

		err := manifest.Rename(path, "onnxscript", "onnxscript-preview")
		require.Error(t, err)
		assert.ErrorIs(t, err, manifest.ErrNameMismatch)
	})
}
