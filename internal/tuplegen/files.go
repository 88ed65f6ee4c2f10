package tuplegen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrStale is returned (wrapped) by Check when the files on disk
// do not match the generated files.
var ErrStale = errors.New("generated files are out of date")

// Write writes all the files to dir.
func Write(dir string, files []File) error {
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0o666); err != nil {
			return err
		}
	}
	return nil
}

// Check compares the files with their counterparts in dir
// and returns the names of those that are missing or differ.
// If there are any, the returned error wraps ErrStale.
func Check(dir string, files []File) ([]string, error) {
	var stale []string
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err != nil || !bytes.Equal(data, f.Data) {
			stale = append(stale, f.Name)
		}
	}
	if len(stale) > 0 {
		return stale, fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", "))
	}
	return nil, nil
}
