package pipeline

// Release returns the built-in preview release sequence: build a wheel
// under a preview package name, publish it, then reinstall and test it.
// Tests run after publish on purpose: a late test failure must not be able
// to interfere with an artifact that is already published.
func Release() *Pipeline {
	return &Pipeline{
		Name: "release",
		Steps: []Step{
			{
				Name:    "Set up Python",
				Kind:    KindToolSetup,
				Version: "3.11",
			},
			{
				Name:    "Install build dependencies",
				Kind:    KindShell,
				Command: "$PYTHON -m pip install --upgrade pip build wheel",
			},
			{
				Name:     "Rename package for preview build",
				Kind:     KindRename,
				Manifest: "pyproject.toml",
				From:     "onnxscript",
				To:       "onnxscript-preview",
			},
			{
				Name:    "Build wheel",
				Kind:    KindShell,
				Command: "$PYTHON -m build --outdir dist",
			},
			{
				Name:   "Copy wheels to staging",
				Kind:   KindCopy,
				Source: "dist",
			},
			{
				Name:     "Publish artifact",
				Kind:     KindPublish,
				Artifact: "onnxscript",
			},
			{
				Name:    "Install test dependencies",
				Kind:    KindShell,
				Command: "$PYTHON -m pip install -r requirements-dev.txt",
			},
			{
				Name:    "Install built wheel",
				Kind:    KindShell,
				Command: "$PYTHON -m pip install --no-deps dist/*.whl",
			},
			{
				Name:    "Run tests",
				Kind:    KindShell,
				Command: "$PYTHON -m pytest -n auto -v",
			},
		},
	}
}
