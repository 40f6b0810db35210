// Package jsonfile implements the repository interfaces on top of flat JSON
// files. Each store owns exactly one backing file holding its entire
// collection as a pretty-printed JSON array, rewritten in full on every
// mutation. A per-store mutex serializes read-modify-write cycles so
// concurrent requests cannot lose updates or allocate duplicate ids.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// readCollection decodes the JSON array at path into dst. A missing or empty
// file is a legitimately empty collection and leaves dst untouched; any other
// read or decode failure is a storage error.
func readCollection(path string, dst any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// writeCollection overwrites the file at path with the collection serialized
// as a 2-space-indented JSON array.
func writeCollection(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
