package models

import (
	"time"
)

// Statistics holds the success counters of one batch operation.
// Each counter is incremented independently and never decremented.
type Statistics struct {
	// Files copied or pasted
	Files int

	// Directories copied or pasted
	Directories int

	// Bytes actually written (hard-linked items move no data)
	Bytes int64
}

// Failure records one item that could not be processed
type Failure struct {
	// Item is the user-facing label (path or staged entry name)
	Item string

	// Err is the underlying filesystem error
	Err error
}

// Report represents the final state of a batch operation
type Report struct {
	RequestID string
	Clipboard string
	Action    Action

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	Stats    Statistics
	Failures []Failure
}

// BatchStatus represents the overall result
type BatchStatus string

const (
	// StatusSuccess indicates every attempted item succeeded
	StatusSuccess BatchStatus = "success"
	// StatusPartial indicates some items failed
	StatusPartial BatchStatus = "partial"
	// StatusFailed indicates no item succeeded
	StatusFailed BatchStatus = "failed"
)

// Status derives the overall result from the counters
func (r *Report) Status() BatchStatus {
	if len(r.Failures) == 0 {
		return StatusSuccess
	}
	if r.Stats.Files > 0 || r.Stats.Directories > 0 || r.Stats.Bytes > 0 {
		return StatusPartial
	}
	return StatusFailed
}

// ExitCode returns the appropriate exit code for the batch status
func (s BatchStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	default:
		return 2
	}
}
