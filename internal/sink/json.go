// Package sink persists generated collections. JSON writes one indented
// document array per collection; SQLite writes every collection as a
// two-column document table in a single database file.
package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

type JSON struct {
	dir string
}

func NewJSON(dir string) *JSON {
	return &JSON{dir: dir}
}

func (s *JSON) WriteCollection(name string, records any) (int, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return recordCount(records), nil
}

func recordCount(records any) int {
	v := reflect.ValueOf(records)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		return v.Len()
	}
	return 1
}
