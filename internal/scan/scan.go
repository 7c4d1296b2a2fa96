// Package scan answers simple questions about the files in a single directory.
package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// Logger is the subset of logger.Logger used by Dir.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Dir probes the entries of one directory. It never descends into
// subdirectories, and a directory that is missing or unreadable simply
// contains nothing.
type Dir struct {
	path   string
	logger Logger
}

// NewDir returns a Dir for probing the directory located at path.
func NewDir(path string, logger Logger) *Dir {
	return &Dir{path: path, logger: logger}
}

// Path returns the directory being probed.
func (d *Dir) Path() string {
	return d.path
}

// HasFile reports whether the directory contains a file with exactly the given
// name.
func (d *Dir) HasFile(name string) bool {
	info, err := os.Stat(filepath.Join(d.path, name))
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	d.logger.Printf("Found %s in %s", name, d.path)
	return true
}

// HasExtension reports whether the directory contains at least one file whose
// final extension is ext. The extension is given without the leading dot.
func (d *Dir) HasExtension(ext string) bool {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		d.logger.Printf("Unable to read %s: %v", d.path, err)
		return false
	}

	suffix := "." + strings.TrimPrefix(ext, ".")
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == suffix {
			d.logger.Printf("Found *%s file in %s: %s", suffix, d.path, e.Name())
			return true
		}
	}

	return false
}
