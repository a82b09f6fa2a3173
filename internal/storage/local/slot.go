package local

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Slot is a named JSON document persisted as a single file.
type Slot struct {
	dir  string
	name string
}

// NewSlot returns the slot <dir>/<name>.json.
func NewSlot(dir, name string) *Slot {
	return &Slot{dir: dir, name: name}
}

// Name returns the slot name.
func (s *Slot) Name() string {
	return s.name
}

// Path returns the file backing the slot.
func (s *Slot) Path() string {
	return filepath.Join(s.dir, s.name+".json")
}

// Read returns the raw slot content or nil when the slot was never written.
func (s *Slot) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot %s: %w", s.name, err)
	}
	return data, nil
}

// Write replaces the slot content. Readers see either the old or the new document.
func (s *Slot) Write(data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, s.name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write slot %s: %w", s.name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close slot %s: %w", s.name, err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace slot %s: %w", s.name, err)
	}
	return nil
}
