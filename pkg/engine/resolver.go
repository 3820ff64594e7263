package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/bdeleeuw/clipstash/internal/platform"
	"github.com/bdeleeuw/clipstash/pkg/models"
)

// Pattern is a compiled filename filter. Name matching uses
// whole-string semantics: the pattern must match the entire filename,
// not a substring of it.
type Pattern struct {
	raw     string
	name    *regexp.Regexp // anchored, for filename matching
	unbound *regexp.Regexp // unanchored, for text buffer replacement
}

// MatchName reports whether the pattern matches the whole filename
func (p Pattern) MatchName(name string) bool {
	return p.name.MatchString(name)
}

// ReplaceAll removes every match of the pattern from a text buffer
func (p Pattern) ReplaceAll(content string) string {
	return p.unbound.ReplaceAllString(content, "")
}

func (p Pattern) String() string {
	return p.raw
}

// CompilePatterns compiles raw filter arguments. Any compile failure
// fails the whole operation before any item is touched; no partial
// pattern set is ever used.
func CompilePatterns(args []string) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(args))
	for _, arg := range args {
		unbound, err := regexp.Compile(arg)
		if err != nil {
			return nil, &models.PatternError{Pattern: arg, Err: err}
		}
		// \A...\z anchoring gives whole-string match semantics
		name, err := regexp.Compile(`\A(?:` + arg + `)\z`)
		if err != nil {
			return nil, &models.PatternError{Pattern: arg, Err: err}
		}
		patterns = append(patterns, Pattern{raw: arg, name: name, unbound: unbound})
	}
	return patterns, nil
}

// MatchesAny reports whether a filename passes the filter set. An
// empty set keeps everything.
func MatchesAny(name string, patterns []Pattern) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if p.MatchName(name) {
			return true
		}
	}
	return false
}

// ResolveSources turns user-provided path arguments into a batch of
// concrete source items, in argument order. A source that cannot be
// stat'ed is still included; its copy attempt records the failure.
func ResolveSources(args []string) (models.Batch, error) {
	batch := make(models.Batch, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(platform.NormalizePath(arg))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve source path %q: %w", arg, err)
		}

		item := models.Item{Path: abs, Name: destinationName(abs)}
		if info, err := os.Stat(abs); err == nil {
			item.IsDir = info.IsDir()
			if !item.IsDir {
				item.Size = info.Size()
			}
		}
		batch = append(batch, item)
	}
	return batch, nil
}

// destinationName returns the staging name for a source path. A path
// whose final component is empty (trailing separator) takes its
// parent's name instead.
func destinationName(path string) string {
	clean := filepath.Clean(path)
	name := filepath.Base(clean)
	if name == string(filepath.Separator) || name == "." {
		name = filepath.Base(filepath.Dir(clean))
	}
	return name
}
