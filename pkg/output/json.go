package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/bdeleeuw/clipstash/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct {
	writer io.Writer
	events []JSONEvent
}

// JSONEvent represents a single event in the JSON output stream
type JSONEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Item      string    `json:"item,omitempty"`
	Bytes     int64     `json:"bytes,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// JSONReport is the final report document
type JSONReport struct {
	RequestID  string        `json:"request_id"`
	Clipboard  string        `json:"clipboard"`
	Action     string        `json:"action"`
	Status     string        `json:"status"`
	DurationMs int64         `json:"duration_ms"`
	Stats      JSONStats     `json:"stats"`
	Failures   []JSONFailure `json:"failures,omitempty"`
	Events     []JSONEvent   `json:"events,omitempty"`
}

// JSONStats represents the success counters in JSON form
type JSONStats struct {
	Files       int   `json:"files"`
	Directories int   `json:"directories"`
	Bytes       int64 `json:"bytes"`
}

// JSONFailure represents one failed item
type JSONFailure struct {
	Item  string `json:"item"`
	Error string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, totalItems int, totalBytes int64) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Progress buffers per-item events for the final document
func (f *JSONFormatter) Progress(ev Event) error {
	event := JSONEvent{
		Timestamp: time.Now().UTC(),
		Type:      ev.Type,
		Item:      ev.Item,
		Bytes:     ev.Bytes,
	}
	if ev.Error != nil {
		event.Error = ev.Error.Error()
	}
	f.events = append(f.events, event)
	return nil
}

// Complete writes the final report document
func (f *JSONFormatter) Complete(report *models.Report) error {
	if f.writer == nil {
		f.writer = os.Stdout
	}

	doc := JSONReport{
		RequestID:  report.RequestID,
		Clipboard:  report.Clipboard,
		Action:     string(report.Action),
		Status:     string(report.Status()),
		DurationMs: report.Duration.Milliseconds(),
		Stats: JSONStats{
			Files:       report.Stats.Files,
			Directories: report.Stats.Directories,
			Bytes:       report.Stats.Bytes,
		},
		Events: f.events,
	}
	for _, failure := range report.Failures {
		doc.Failures = append(doc.Failures, JSONFailure{Item: failure.Item, Error: failure.Err.Error()})
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Error writes a fatal error document
func (f *JSONFormatter) Error(err error) error {
	writer := f.writer
	if writer == nil {
		writer = os.Stdout
	}
	return json.NewEncoder(writer).Encode(map[string]string{"error": err.Error()})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
