package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const DefaultConfigFileName = "config.json"

var (
	DefaultConfigDir      = os.ExpandEnv("$HOME/.config/wheelhouse")
	DefaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

// StagingDirEnv is set by the orchestrator to point at the artifact
// staging directory for the current run.
const StagingDirEnv = "WHEELHOUSE_STAGING_DIR"

type Config struct {
	// StoreDir is where published artifacts are kept.
	StoreDir string `json:"store_dir,omitempty"`
	// ManifestPath is the project manifest, relative to the workdir.
	ManifestPath string `json:"manifest_path,omitempty"`
	// DistDir is the build tool's output directory, relative to the workdir.
	DistDir string `json:"dist_dir,omitempty"`
}

func Default() *Config {
	return &Config{
		StoreDir:     filepath.Join(DefaultConfigDir, "artifacts"),
		ManifestPath: "pyproject.toml",
		DistDir:      "dist",
	}
}

func (c *Config) Save() error {
	if _, err := os.Stat(DefaultConfigDir); os.IsNotExist(err) {
		if err := os.MkdirAll(DefaultConfigDir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(DefaultConfigFilePath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(c); err != nil {
		return err
	}
	return nil
}

// LoadFromFile reads the config file, falling back to defaults for any
// field left unset. A missing file is not an error.
func LoadFromFile() (*Config, error) {
	c := Default()

	f, err := os.Open(DefaultConfigFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(c); err != nil {
		return nil, err
	}
	if c.StoreDir == "" {
		c.StoreDir = Default().StoreDir
	}
	if c.ManifestPath == "" {
		c.ManifestPath = Default().ManifestPath
	}
	if c.DistDir == "" {
		c.DistDir = Default().DistDir
	}
	return c, nil
}

// StagingDir returns the orchestrator-provided staging directory, or the
// given fallback when the environment does not set one.
func StagingDir(fallback string) string {
	if dir := os.Getenv(StagingDirEnv); dir != "" {
		return dir
	}
	return fallback
}
