// Package pipeline defines the release step sequence: an ordered,
// immutable list of named steps executed strictly in declaration order.
package pipeline

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind is the action a step performs.
type Kind string

const (
	// KindToolSetup selects an interpreter version for later steps.
	KindToolSetup Kind = "tool-setup"
	// KindShell runs a shell command in the workdir.
	KindShell Kind = "shell"
	// KindRename rewrites the declared package name in the manifest.
	// This mutates a tracked file in place and is not reversible.
	KindRename Kind = "rename-package"
	// KindCopy copies build output wheels into the staging directory.
	KindCopy Kind = "copy"
	// KindPublish registers the staging directory under an artifact name.
	KindPublish Kind = "publish"
)

// Step is one entry in the sequence. Only the fields for its kind are set.
type Step struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	// tool-setup: interpreter version constraint, e.g. "3.11".
	Version string `yaml:"version,omitempty"`

	// shell: the command line, run with sh -c. $PYTHON expands to the
	// interpreter selected by the tool-setup step.
	Command string `yaml:"command,omitempty"`

	// rename-package
	Manifest string `yaml:"manifest,omitempty"`
	From     string `yaml:"from,omitempty"`
	To       string `yaml:"to,omitempty"`

	// copy: source is the build output directory. An empty target means
	// the orchestrator-provided staging directory.
	Source string `yaml:"source,omitempty"`
	Target string `yaml:"target,omitempty"`

	// publish: the artifact name downstream consumers retrieve.
	Artifact string `yaml:"artifact,omitempty"`
}

// Pipeline is a named, ordered step sequence.
type Pipeline struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Parse decodes a pipeline from YAML and validates it.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing pipeline: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("pipeline must have a name")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseFile reads and parses a pipeline YAML file.
func ParseFile(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline file %s: %w", path, err)
	}
	return Parse(data)
}

// HasRename reports whether the sequence contains a manifest rename,
// the one step that mutates a tracked file.
func (p *Pipeline) HasRename() bool {
	for _, s := range p.Steps {
		if s.Kind == KindRename {
			return true
		}
	}
	return false
}
