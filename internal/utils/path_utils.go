package utils

import (
	"path/filepath"

	"github.com/funvibe/funlang/internal/config"
)

// ProgramName derives a display name from a source path: the base file name
// without a recognized source extension.
func ProgramName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return config.TrimSourceExt(filepath.Base(path))
}

// ConfigPathFor returns explicit if set, otherwise the config file found next
// to sourcePath (or "").
func ConfigPathFor(explicit, sourcePath string) string {
	if explicit != "" {
		return explicit
	}
	if sourcePath == "" {
		return ""
	}
	return config.Find(sourcePath)
}
