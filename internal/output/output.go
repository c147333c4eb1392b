// Package output writes the computed π string to disk. Per spec.md §8,
// every run must produce the file atomically: either the full string
// with a trailing newline, or no file at all — mirroring the teacher's
// discipline of always pairing a channel send with its close in
// internal/sched.Pool.Start, never leaving a half-done side effect
// visible to a reader.
package output

import (
	"os"
	"path/filepath"
)

// WritePi atomically writes pi (expected to already contain no trailing
// newline) plus a single trailing newline to path: write to a temp file
// in the same directory, fsync, then rename over the destination.
func WritePi(path, pi string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".picalcd-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(pi + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
