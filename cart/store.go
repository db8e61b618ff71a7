package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var keyCleaner = regexp.MustCompile(`[^\w\-]`)

// Store persists one JSON-encoded line slice per session key under a data
// directory. Saves are full overwrites with no version check.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create cart dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Load reads the persisted cart for key. A missing file or malformed JSON
// resets to an empty cart; callers never see a parse error. Lines that
// violate the cart invariants are dropped on the way in.
func (s *Store) Load(key string) []Line {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil
	}
	return sanitize(lines)
}

// Save overwrites the persisted cart for key with the given lines.
func (s *Store) Save(key string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0644)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, keyCleaner.ReplaceAllString(key, "_")+".json")
}

// sanitize enforces the cart invariants on records read back from disk:
// no empty product ids, no quantity below 1, no duplicate lines per
// product. First occurrence wins for duplicates.
func sanitize(lines []Line) []Line {
	var out []Line
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity < 1 || seen[l.ProductID] {
			continue
		}
		seen[l.ProductID] = true
		out = append(out, l)
	}
	return out
}
