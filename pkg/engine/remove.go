package engine

import (
	"github.com/bdeleeuw/clipstash/pkg/logging"
	"github.com/bdeleeuw/clipstash/pkg/models"
	"github.com/bdeleeuw/clipstash/pkg/output"
)

// RemoveByPattern deletes staged entries whose names match any of the
// given patterns. Per-entry removal failures are recorded and the
// batch continues; matching nothing at all is fatal
// (models.ErrEmptyMatch).
func (e *Engine) RemoveByPattern(patterns []Pattern) error {
	entries, err := e.clip.Entries()
	if err != nil {
		return err
	}

	e.logger.Info("removing by pattern", logging.Fields{
		"request":   e.request.ID,
		"clipboard": e.request.Clipboard,
		"patterns":  len(patterns),
	})

	for i, entry := range entries {
		if len(patterns) == 0 || !MatchesAny(entry.Name, patterns) {
			continue
		}

		e.notify(output.Event{Type: "item_start", Item: entry.Name, Index: i})

		if err := e.clip.RemoveEntry(entry.Name); err != nil {
			e.agg.RecordFailure(entry.Name, err)
			e.notify(output.Event{Type: "item_failed", Item: entry.Name, Error: err})
			continue
		}

		if entry.IsDir {
			e.agg.RecordDirectory()
		} else {
			e.agg.RecordFile()
		}
		e.notify(output.Event{Type: "item_done", Item: entry.Name})
	}

	if e.agg.Stats().Files == 0 && e.agg.Stats().Directories == 0 && len(e.agg.Failures()) == 0 {
		return models.ErrEmptyMatch
	}
	return nil
}

// RemoveText deletes every pattern match from the raw text buffer and
// returns the number of bytes removed. No match at all is fatal
// (models.ErrEmptyMatch).
func (e *Engine) RemoveText(patterns []Pattern) (int64, error) {
	raw, err := e.clip.ReadRaw()
	if err != nil {
		return 0, err
	}

	content := string(raw)
	for _, p := range patterns {
		content = p.ReplaceAll(content)
	}

	removed := int64(len(raw) - len(content))
	if removed == 0 {
		return 0, models.ErrEmptyMatch
	}

	if _, err := e.clip.WriteRaw([]byte(content)); err != nil {
		return 0, err
	}
	e.agg.RecordBytes(removed)
	return removed, nil
}
