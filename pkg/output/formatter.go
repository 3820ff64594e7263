package output

import (
	"io"

	"github.com/bdeleeuw/clipstash/pkg/models"
)

// Event represents a progress notification during a batch operation
type Event struct {
	Type  string // "item_start", "item_done", "item_failed"
	Item  string
	Bytes int64
	Index int
	Error error
}

// Formatter defines the interface for output formatting
// Implementations include human-readable, JSON, and progress-bar formatters
type Formatter interface {
	// Start initializes the formatter for a new batch operation
	Start(writer io.Writer, totalItems int, totalBytes int64) error

	// Progress reports per-item progress during the batch
	Progress(ev Event) error

	// Complete finalizes output and displays the summary
	Complete(report *models.Report) error

	// Error reports a fatal error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
