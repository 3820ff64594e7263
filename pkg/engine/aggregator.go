package engine

import (
	"time"

	"github.com/bdeleeuw/clipstash/pkg/models"
)

// Aggregator accumulates per-item outcomes across one batch operation.
// Counters only ever increase; a recorded failure never aborts the
// batch. The caller reads the final state once, at the end of the
// batch, to render the summary and decide the exit status.
type Aggregator struct {
	stats    models.Statistics
	failures []models.Failure
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// RecordFile counts one successfully processed file
func (a *Aggregator) RecordFile() {
	a.stats.Files++
}

// RecordDirectory counts one successfully processed directory
func (a *Aggregator) RecordDirectory() {
	a.stats.Directories++
}

// RecordBytes adds to the transferred byte total
func (a *Aggregator) RecordBytes(n int64) {
	a.stats.Bytes += n
}

// RecordFailure appends a failed item; the batch continues regardless
func (a *Aggregator) RecordFailure(item string, err error) {
	a.failures = append(a.failures, models.Failure{Item: item, Err: err})
}

// Stats returns the current success counters
func (a *Aggregator) Stats() models.Statistics {
	return a.stats
}

// Failures returns the recorded failures in order
func (a *Aggregator) Failures() []models.Failure {
	return a.failures
}

// Outcomes returns the total number of recorded outcomes, successes
// and failures combined. Bypassed items (filtered out, or skipped by a
// conflict decision) produce no outcome.
func (a *Aggregator) Outcomes() int {
	return a.stats.Files + a.stats.Directories + len(a.failures)
}

// Report assembles the final batch report
func (a *Aggregator) Report(req *models.CopyRequest, start, end time.Time) *models.Report {
	return &models.Report{
		RequestID: req.ID,
		Clipboard: req.Clipboard,
		Action:    req.Action,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Stats:     a.stats,
		Failures:  a.failures,
	}
}
