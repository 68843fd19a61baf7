// Package artifact moves build output into the orchestrator's staging
// directory and publishes staged files to the artifact store.
package artifact

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrNoWheels = errors.New("build produced no wheel files")

// Stage copies every wheel from distDir into stagingDir and returns the
// staged file names. A build output directory with no wheels is an error:
// publishing an empty artifact would succeed and ship nothing.
func Stage(distDir, stagingDir string) ([]string, error) {
	wheels, err := filepath.Glob(filepath.Join(distDir, "*.whl"))
	if err != nil {
		return nil, err
	}
	if len(wheels) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoWheels, distDir)
	}

	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}

	var staged []string
	for _, wheel := range wheels {
		name := filepath.Base(wheel)
		if err := copyFile(wheel, filepath.Join(stagingDir, name)); err != nil {
			return nil, fmt.Errorf("stage %s: %w", name, err)
		}
		staged = append(staged, name)
	}
	return staged, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
