// Package manifest reads and rewrites the project metadata file
// (pyproject.toml). The preview rename is done against the parsed
// document, not by blind text substitution: a manifest that does not
// declare the expected name is an error, never a silent no-op.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

var (
	ErrNoProjectName = errors.New("manifest declares no project name")
	ErrNameMismatch  = errors.New("manifest project name does not match")
)

type Manifest struct {
	Path string
	// Name is the declared package name from the [project] table.
	Name string

	raw []byte
}

type pyproject struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
}

// Load parses the manifest at path and extracts the declared package name.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	name, err := declaredName(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Manifest{Path: path, Name: name, raw: raw}, nil
}

func declaredName(raw []byte) (string, error) {
	var pp pyproject
	if err := toml.Unmarshal(raw, &pp); err != nil {
		return "", fmt.Errorf("parse manifest: %w", err)
	}
	if pp.Project.Name == "" {
		return "", ErrNoProjectName
	}
	return pp.Project.Name, nil
}

var (
	projectHeaderRe = regexp.MustCompile(`(?m)^\[project\]\s*$`)
	tableHeaderRe   = regexp.MustCompile(`(?m)^\[`)
	nameKeyRe       = regexp.MustCompile(`(?m)^(\s*name\s*=\s*)("[^"]*"|'[^']*')`)
)

// Rename rewrites the declared package name from want to to and writes the
// manifest back in place. The rest of the document, including comments and
// formatting, is preserved. Errors if the manifest does not currently
// declare want.
func Rename(path, want, to string) error {
	m, err := Load(path)
	if err != nil {
		return err
	}
	if m.Name != want {
		return fmt.Errorf("%s: %w: have %q, want %q", path, ErrNameMismatch, m.Name, want)
	}

	out, err := m.renamed(to)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// Paranoia: re-parse before touching the file.
	got, err := declaredName(out)
	if err != nil {
		return fmt.Errorf("%s: rewrite produced bad manifest: %w", path, err)
	}
	if got != to {
		return fmt.Errorf("%s: rewrite produced name %q, want %q", path, got, to)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, info.Mode().Perm())
}

// renamed returns the raw manifest bytes with the [project] name assignment
// replaced. Only the name key inside the [project] table is touched; name
// keys in other tables are left alone.
func (m *Manifest) renamed(to string) ([]byte, error) {
	header := projectHeaderRe.FindIndex(m.raw)
	if header == nil {
		return nil, ErrNoProjectName
	}

	body := m.raw[header[1]:]
	end := len(body)
	if next := tableHeaderRe.FindIndex(body); next != nil {
		end = next[0]
	}
	section := body[:end]

	loc := nameKeyRe.FindSubmatchIndex(section)
	if loc == nil {
		return nil, ErrNoProjectName
	}

	var out []byte
	out = append(out, m.raw[:header[1]]...)
	out = append(out, section[:loc[2]]...)
	out = append(out, section[loc[2]:loc[4]]...)
	out = append(out, fmt.Sprintf("%q", to)...)
	out = append(out, section[loc[5]:]...)
	out = append(out, body[end:]...)
	return out, nil
}
