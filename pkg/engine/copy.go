package engine

import (
	"os"
	"path/filepath"

	"github.com/bdeleeuw/clipstash/pkg/logging"
	"github.com/bdeleeuw/clipstash/pkg/models"
	"github.com/bdeleeuw/clipstash/pkg/output"
)

// CopyBatch stages every item in the batch. Items are independent:
// one item's failure never aborts the rest.
func (e *Engine) CopyBatch(batch models.Batch) {
	e.logger.Info("copying batch", logging.Fields{
		"request":   e.request.ID,
		"clipboard": e.request.Clipboard,
		"action":    string(e.request.Action),
		"items":     len(batch),
	})

	for i, item := range batch {
		e.notify(output.Event{Type: "item_start", Item: item.Path, Index: i})
		e.CopyItem(item)
	}
}

// CopyItem stages a single source item into the clipboard's data
// directory. A fast-copy failure caused by a cross-device link is
// retried exactly once with the safe strategy; any other filesystem
// error records a failure immediately.
func (e *Engine) CopyItem(item models.Item) {
	written, err := e.copyItemOnce(item, e.request.SafeCopy)
	if err != nil && !e.request.SafeCopy && isCrossDevice(err) {
		e.logger.Debug("cross-device link, retrying with safe copy", logging.Fields{"item": item.Path})
		written, err = e.copyItemOnce(item, true)
	}

	if err != nil {
		e.agg.RecordFailure(item.Path, err)
		e.logger.Warn("copy failed", logging.Fields{"item": item.Path, "error": err.Error()})
		e.notify(output.Event{Type: "item_failed", Item: item.Path, Error: err})
		return
	}

	if item.IsDir {
		e.agg.RecordDirectory()
	} else {
		e.agg.RecordFile()
	}
	e.agg.RecordBytes(written)
	e.notify(output.Event{Type: "item_done", Item: item.Path, Bytes: written})

	if e.request.Action.CutSemantics() {
		if err := e.clip.AppendOriginal(item.Path); err != nil {
			e.logger.Warn("failed to record original", logging.Fields{"item": item.Path, "error": err.Error()})
		}
	}
}

// copyItemOnce performs one staging attempt with the given strategy
func (e *Engine) copyItemOnce(item models.Item, safe bool) (int64, error) {
	if item.IsDir {
		target := filepath.Join(e.clip.DataDir(), destinationName(item.Path))
		if err := os.MkdirAll(target, 0755); err != nil {
			return 0, err
		}
		return e.copyTree(item.Path, target, safe)
	}

	target := filepath.Join(e.clip.DataDir(), filepath.Base(item.Path))
	return e.copyFile(item.Path, target, safe)
}
