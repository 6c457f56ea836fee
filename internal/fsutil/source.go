// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io"
	"os"
)

// CheckReadable verifies that path names an existing regular file that the
// process can open. The file is closed again before returning.
func CheckReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// ReadSource reads the whole file at path. The handle is released on every
// return path.
func ReadSource(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
