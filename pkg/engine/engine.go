// Package engine implements the copy/paste core: resolving source
// items, staging them into a clipboard, pasting staged entries with
// conflict resolution, and aggregating per-item outcomes.
package engine

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/bdeleeuw/clipstash/pkg/clipboard"
	"github.com/bdeleeuw/clipstash/pkg/logging"
	"github.com/bdeleeuw/clipstash/pkg/models"
	"github.com/bdeleeuw/clipstash/pkg/output"
)

// Engine processes one batch operation against a clipboard staging
// area. Items are handled strictly in sequence; a per-item failure is
// recorded and never aborts the batch.
type Engine struct {
	clip      *clipboard.Clipboard
	request   *models.CopyRequest
	agg       *Aggregator
	conflicts *ConflictResolver
	formatter output.Formatter
	logger    logging.Logger

	// link creates the fast (zero-data-duplication) copy; overridable
	// in tests to simulate cross-device errors
	link func(src, dst string) error
}

// New creates an engine for one batch operation
func New(
	clip *clipboard.Clipboard,
	request *models.CopyRequest,
	agg *Aggregator,
	conflicts *ConflictResolver,
	formatter output.Formatter,
	logger logging.Logger,
) *Engine {
	if agg == nil {
		agg = NewAggregator()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Engine{
		clip:      clip,
		request:   request,
		agg:       agg,
		conflicts: conflicts,
		formatter: formatter,
		logger:    logger,
		link:      os.Link,
	}
}

// Aggregator returns the engine's result aggregator
func (e *Engine) Aggregator() *Aggregator {
	return e.agg
}

// isCrossDevice reports whether a fast-copy attempt failed because
// source and destination live on different storage devices.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// notify sends a per-item event to the formatter, if any
func (e *Engine) notify(ev output.Event) {
	if e.formatter != nil {
		e.formatter.Progress(ev)
	}
}

// copyFile copies one regular file. The fast strategy creates a hard
// link; the safe strategy performs a full byte copy and returns the
// number of bytes written.
func (e *Engine) copyFile(src, dst string, safe bool) (int64, error) {
	if !safe {
		return 0, e.link(src, dst)
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}

	// A destination hard-linked to the source is the same inode:
	// truncating it would destroy the source contents. Nothing to copy.
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return 0, nil
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return written, err
	}
	return written, out.Close()
}

// copyTree recursively copies the contents of srcDir into dstDir.
// Regular files follow the requested strategy; subdirectories are
// always created fresh.
func (e *Engine) copyTree(srcDir, dstDir string, safe bool) (int64, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, entry := range entries {
		src := filepath.Join(srcDir, entry.Name())
		dst := filepath.Join(dstDir, entry.Name())

		if entry.IsDir() {
			if err := os.MkdirAll(dst, 0755); err != nil {
				return total, err
			}
			written, err := e.copyTree(src, dst, safe)
			total += written
			if err != nil {
				return total, err
			}
			continue
		}

		written, err := e.copyFile(src, dst, safe)
		total += written
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
