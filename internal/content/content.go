// Package content carries the starter example catalog compiled into the
// binary, so a fresh library is browsable before the user writes anything.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed examples
var starterFS embed.FS

// Install writes the starter examples into the library rooted at baseDir.
// Files that already exist are left alone so user edits survive re-runs.
// Returns the number of files written.
func Install(baseDir string) (int, error) {
	installed := 0

	err := fs.WalkDir(starterFS, "examples", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		target := filepath.Join(baseDir, filepath.FromSlash(path))
		if _, err := os.Stat(target); err == nil {
			return nil // Already installed or edited by the user
		}

		data, err := starterFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read embedded example %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", target, err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		installed++
		return nil
	})

	return installed, err
}

// List returns the library-relative paths of all embedded starter examples
func List() ([]string, error) {
	var paths []string
	err := fs.WalkDir(starterFS, "examples", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

// Read returns the raw bytes of one embedded starter example
func Read(path string) ([]byte, error) {
	return starterFS.ReadFile(path)
}
