package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/bdeleeuw/clipstash/pkg/models"
)

var (
	successMark = color.New(color.FgGreen, color.Bold).Sprint("✓")
	failureMark = color.New(color.FgRed, color.Bold).Sprint("✗")
	infoStyle   = color.New(color.FgCyan)
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer     io.Writer
	totalItems int
	verbose    bool
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter(verbose bool) *HumanFormatter {
	return &HumanFormatter{verbose: verbose}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, totalItems int, totalBytes int64) error {
	if writer == nil {
		writer = os.Stderr
	}
	f.writer = writer
	f.totalItems = totalItems
	return nil
}

// Progress reports per-item progress
func (f *HumanFormatter) Progress(ev Event) error {
	if f.writer == nil {
		return nil
	}

	switch ev.Type {
	case "item_done":
		if f.verbose {
			fmt.Fprintf(f.writer, "%s %s\n", successMark, ev.Item)
		}
	case "item_failed":
		fmt.Fprintf(f.writer, "%s %s: %v\n", failureMark, ev.Item, ev.Error)
	}

	return nil
}

// Complete finalizes output and displays the summary line
func (f *HumanFormatter) Complete(report *models.Report) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	summary := summarize(report)
	switch report.Status() {
	case models.StatusSuccess:
		fmt.Fprintf(f.writer, "%s %s\n", successMark, summary)
	case models.StatusPartial:
		fmt.Fprintf(f.writer, "%s %s, %d failed\n", failureMark, summary, len(report.Failures))
	default:
		fmt.Fprintf(f.writer, "%s %s failed for all %d items\n", failureMark, verb(report.Action), len(report.Failures))
	}

	for _, failure := range report.Failures {
		fmt.Fprintf(f.writer, "  %s %s: %v\n", failureMark, failure.Item, failure.Err)
	}

	if f.verbose {
		infoStyle.Fprintf(f.writer, "  completed in %s\n", report.Duration.Round(time.Millisecond))
	}

	return nil
}

// Error reports a fatal error
func (f *HumanFormatter) Error(err error) error {
	writer := f.writer
	if writer == nil {
		writer = os.Stderr
	}
	fmt.Fprintf(writer, "%s %v\n", failureMark, err)
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// summarize builds the human summary line, e.g.
// "Pasted 3 files, 1 directory (4.2 KiB)"
func summarize(report *models.Report) string {
	var parts []string
	if report.Stats.Files > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", report.Stats.Files, plural("file", report.Stats.Files)))
	}
	if report.Stats.Directories > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", report.Stats.Directories, plural("directory", report.Stats.Directories)))
	}

	counted := strings.Join(parts, ", ")
	if counted == "" {
		if report.Stats.Bytes > 0 {
			return fmt.Sprintf("%s %s", verb(report.Action), FormatBytes(report.Stats.Bytes))
		}
		return fmt.Sprintf("%s nothing", verb(report.Action))
	}

	if report.Stats.Bytes > 0 {
		return fmt.Sprintf("%s %s (%s)", verb(report.Action), counted, FormatBytes(report.Stats.Bytes))
	}
	return fmt.Sprintf("%s %s", verb(report.Action), counted)
}

// verb returns the past-tense verb for an action
func verb(action models.Action) string {
	switch action {
	case models.ActionCopy:
		return "Copied"
	case models.ActionCut:
		return "Cut"
	case models.ActionAdd:
		return "Added"
	case models.ActionPaste:
		return "Pasted"
	case models.ActionRemove:
		return "Removed"
	case models.ActionLoad:
		return "Loaded"
	default:
		return "Processed"
	}
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	if word == "directory" {
		return "directories"
	}
	return word + "s"
}

// FormatBytes formats bytes in human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
