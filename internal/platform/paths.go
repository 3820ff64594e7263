package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

// DefaultBaseDir returns the default directory holding the named
// clipboards, one subdirectory per clipboard. Falls back to the system
// temporary directory when no user cache directory is available.
func DefaultBaseDir() string {
	if cache, err := os.UserCacheDir(); err == nil && cache != "" {
		return filepath.Join(cache, "clipstash")
	}
	return filepath.Join(os.TempDir(), "clipstash")
}

// ValidateClipboardName checks that a clipboard name is usable as a
// single directory component.
func ValidateClipboardName(name string) error {
	if name == "" {
		return &PathError{Path: name, Message: "clipboard name is empty"}
	}
	if name == "." || name == ".." {
		return &PathError{Path: name, Message: "clipboard name is reserved"}
	}
	if strings.ContainsAny(name, "/\\") {
		return &PathError{Path: name, Message: "clipboard name contains a path separator"}
	}
	return nil
}

// PathError represents a path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
