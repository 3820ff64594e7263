package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bdeleeuw/clipstash/pkg/logging"
	"github.com/bdeleeuw/clipstash/pkg/models"
	"github.com/bdeleeuw/clipstash/pkg/output"
)

// PasteBatch copies staged entries into destDir. Non-empty patterns
// keep only entries whose name they match in full; filtered-out
// entries are bypassed silently and produce no outcome. Collisions
// with existing, non-equivalent destinations go through the conflict
// resolver. For cut semantics the consumed staging entries are removed
// afterwards.
func (e *Engine) PasteBatch(destDir string, patterns []Pattern) error {
	entries, err := e.clip.Entries()
	if err != nil {
		return err
	}

	e.logger.Info("pasting batch", logging.Fields{
		"request":   e.request.ID,
		"clipboard": e.request.Clipboard,
		"entries":   len(entries),
		"filters":   len(patterns),
	})

	var consumed []string
	for i, entry := range entries {
		if !MatchesAny(entry.Name, patterns) {
			continue
		}

		e.notify(output.Event{Type: "item_start", Item: entry.Name, Index: i})

		target := filepath.Join(destDir, entry.Name)
		equivalent, exists, err := sameEntry(entry.Path, target)
		if err != nil {
			e.agg.RecordFailure(entry.Name, err)
			e.notify(output.Event{Type: "item_failed", Item: entry.Name, Error: err})
			continue
		}

		if exists && !equivalent {
			if !e.conflicts.Resolve(entry.Name) {
				// bypassed: neither success nor failure
				continue
			}
			if err := os.RemoveAll(target); err != nil {
				e.agg.RecordFailure(entry.Name, err)
				e.notify(output.Event{Type: "item_failed", Item: entry.Name, Error: err})
				continue
			}
		}

		if e.pasteItem(entry, target, equivalent) {
			consumed = append(consumed, entry.Name)
		}
	}

	if e.request.Action.CutSemantics() {
		for _, name := range consumed {
			if err := e.clip.RemoveEntry(name); err != nil {
				e.logger.Warn("failed to remove consumed entry", logging.Fields{"entry": name, "error": err.Error()})
			}
		}
	}
	return nil
}

// pasteItem copies one staged entry to its target, applying the same
// fast/safe/cross-device fallback as staging. An already equivalent
// destination performs no data movement but still counts as a success.
// Returns true when the entry was successfully consumed.
func (e *Engine) pasteItem(entry models.Item, target string, equivalent bool) bool {
	var written int64
	var err error

	if !equivalent {
		written, err = e.pasteItemOnce(entry, target, e.request.SafeCopy)
		if err != nil && !e.request.SafeCopy && isCrossDevice(err) {
			e.logger.Debug("cross-device link, retrying with safe copy", logging.Fields{"entry": entry.Name})
			written, err = e.pasteItemOnce(entry, target, true)
		}
	}

	if err != nil {
		e.agg.RecordFailure(entry.Name, err)
		e.logger.Warn("paste failed", logging.Fields{"entry": entry.Name, "error": err.Error()})
		e.notify(output.Event{Type: "item_failed", Item: entry.Name, Error: err})
		return false
	}

	if entry.IsDir {
		e.agg.RecordDirectory()
	} else {
		e.agg.RecordFile()
	}
	e.agg.RecordBytes(written)
	e.notify(output.Event{Type: "item_done", Item: entry.Name, Bytes: written})
	return true
}

// pasteItemOnce performs one paste attempt with the given strategy.
// Directories always use the safe recursive copy; hard links apply to
// regular files only.
func (e *Engine) pasteItemOnce(entry models.Item, target string, safe bool) (int64, error) {
	if entry.IsDir {
		if err := os.MkdirAll(target, 0755); err != nil {
			return 0, err
		}
		return e.copyTree(entry.Path, target, true)
	}
	return e.copyFile(entry.Path, target, safe)
}

// sameEntry reports whether target exists and, if so, whether it
// denotes the same filesystem entry as src (e.g. a previously created
// hard link).
func sameEntry(src, target string) (equivalent, exists bool, err error) {
	targetInfo, terr := os.Stat(target)
	if terr != nil {
		if os.IsNotExist(terr) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to stat destination: %w", terr)
	}

	srcInfo, serr := os.Stat(src)
	if serr != nil {
		return false, true, fmt.Errorf("failed to stat staged entry: %w", serr)
	}

	return os.SameFile(srcInfo, targetInfo), true, nil
}
