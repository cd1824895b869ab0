// Package storage persists puzzles as JSON files on disk.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonswain/sudsolve/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

// Save writes the puzzle to <dir>/<id>.json, assigning a fresh UUID when
// the puzzle has no ID yet.
func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.Grid == nil {
		return errors.New("invalid puzzle: missing grid")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := validID(p.ID); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(s.dir, p.ID+".json"))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Load reads the puzzle with the given ID, or os.ErrNotExist.
func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		return nil, err
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List scans the directory for puzzle metadata. Unreadable or malformed
// entries are skipped rather than failing the listing.
func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.PuzzleMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var p domain.PuzzleMeta
		if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func validID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return errors.New("invalid puzzle ID")
	}
	return nil
}
