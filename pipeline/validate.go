package pipeline

import (
	"errors"
	"fmt"

	"github.com/wheelhouse-cli/wheelhouse/slice"
)

var (
	ErrUnknownKind       = errors.New("unknown step kind")
	ErrPublishBeforeCopy = errors.New("publish step has no preceding copy step")
	ErrCopyBeforeBuild   = errors.New("copy step has no preceding shell step to produce output")
	ErrRenameAfterCopy   = errors.New("rename-package step must precede the copy step")
)

var knownKinds = []Kind{KindToolSetup, KindShell, KindRename, KindCopy, KindPublish}

// Validate checks each step's fields and the sequence's ordering contract:
// a publish exposes what a copy staged, so copy comes first; a copy
// captures build output, so some shell step comes first; and the manifest
// rename has to land before the artifact is captured.
func (p *Pipeline) Validate() error {
	var sawShell, sawCopy bool

	for i, s := range p.Steps {
		if s.Name == "" {
			return fmt.Errorf("step %d has no name", i+1)
		}
		if !slice.Has(knownKinds, s.Kind) {
			return fmt.Errorf("step %q: %w: %q", s.Name, ErrUnknownKind, s.Kind)
		}
		if err := validateFields(s); err != nil {
			return fmt.Errorf("step %q: %w", s.Name, err)
		}

		switch s.Kind {
		case KindShell:
			sawShell = true
		case KindRename:
			if sawCopy {
				return fmt.Errorf("step %q: %w", s.Name, ErrRenameAfterCopy)
			}
		case KindCopy:
			if !sawShell {
				return fmt.Errorf("step %q: %w", s.Name, ErrCopyBeforeBuild)
			}
			sawCopy = true
		case KindPublish:
			if !sawCopy {
				return fmt.Errorf("step %q: %w", s.Name, ErrPublishBeforeCopy)
			}
		}
	}
	return nil
}

func validateFields(s Step) error {
	switch s.Kind {
	case KindToolSetup:
		if s.Version == "" {
			return errors.New("tool-setup requires a version")
		}
	case KindShell:
		if s.Command == "" {
			return errors.New("shell requires a command")
		}
	case KindRename:
		if s.Manifest == "" || s.From == "" || s.To == "" {
			return errors.New("rename-package requires manifest, from, and to")
		}
	case KindCopy:
		if s.Source == "" {
			return errors.New("copy requires a source directory")
		}
	case KindPublish:
		if s.Artifact == "" {
			return errors.New("publish requires an artifact name")
		}
	}
	return nil
}
