package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/wheelhouse-cli/wheelhouse/slice"
)

var ErrEmptyStaging = errors.New("staging directory has no files to publish")

const recordFileName = ".record.json"

// Record is what the store keeps about a single publish.
type Record struct {
	Artifact    string    `json:"artifact"`
	RunID       string    `json:"run_id"`
	PublishedAt time.Time `json:"published_at"`
	Files       []File    `json:"files"`
}

type File struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Summary renders a one-line description of the publish for the terminal.
func (r *Record) Summary() string {
	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	names := slice.Map(r.Files, func(f File) string { return f.Name })
	return fmt.Sprintf("published %s (%d files, %s): %s",
		r.Artifact, len(r.Files), humanize.Bytes(uint64(total)), strings.Join(names, ", "))
}

// Publish registers the staging directory's contents in the store under
// name. Files are copied into the store, then the record is written last
// so a partially-copied artifact is never visible with a record.
func Publish(name, stagingDir, storeDir, runID string) (*Record, error) {
	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return nil, fmt.Errorf("read staging dir: %w", err)
	}

	rec := &Record{
		Artifact:    name,
		RunID:       runID,
		PublishedAt: time.Now().UTC(),
	}

	dest := filepath.Join(storeDir, name)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	files := slice.Filter(entries, func(e os.DirEntry) bool { return !e.IsDir() })
	for _, entry := range files {
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		if err := copyFile(filepath.Join(stagingDir, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return nil, fmt.Errorf("publish %s: %w", entry.Name(), err)
		}
		rec.Files = append(rec.Files, File{Name: entry.Name(), Size: info.Size()})
	}
	if len(rec.Files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyStaging, stagingDir)
	}

	f, err := os.Create(filepath.Join(dest, recordFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ReadRecord loads the publish record for a named artifact from the store.
func ReadRecord(storeDir, name string) (*Record, error) {
	f, err := os.Open(filepath.Join(storeDir, name, recordFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rec Record
	if err := json.NewDecoder(f).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
