package dispatch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/esmodel-tools/gridin-go/pkg/gridin/payload"
)

// Writer persists assembled envelopes under one directory. Output is
// deterministic: re-running the pipeline on unchanged sources rewrites
// byte-identical files.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create payload dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteItem persists one envelope as <prefix>_<sanitizedName>.json.
func (w *Writer) WriteItem(prefix, name string, env payload.Envelope) error {
	filename := fmt.Sprintf("%s_%s.json", prefix, payload.FileStem(name))
	return w.write(filename, env)
}

// WriteSingle persists one envelope under a fixed filename, for
// singleton records like the global setup.
func (w *Writer) WriteSingle(stem string, env payload.Envelope) error {
	return w.write(stem+".json", env)
}

// WriteBatch persists a whole entity-type batch as <plural>_all.json.
func (w *Writer) WriteBatch(plural string, envs []payload.Envelope) error {
	return w.write(plural+"_all.json", envs)
}

func (w *Writer) write(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filename, err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
