//go:build windows

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the file at path into memory. Headers are read once from the
// front of the file, so a copy serves as well as a mapping here. The cleanup
// function is a no-op.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("mmfile: %s is not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: read %s: %w", path, err)
	}
	return data, func() error { return nil }, nil
}
