package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"

	"github.com/bdeleeuw/clipstash/pkg/models"
)

// ProgressFormatter renders a progress bar while a batch is running,
// then prints the human summary. Suited to interactive terminals with
// large batches.
type ProgressFormatter struct {
	human *HumanFormatter
	bar   *pb.ProgressBar
	items bool // bar counts items instead of bytes
}

// NewProgressFormatter creates a progress bar formatter
func NewProgressFormatter(verbose bool) *ProgressFormatter {
	return &ProgressFormatter{human: NewHumanFormatter(verbose)}
}

// Start initializes the progress bar. When the total byte count is
// unknown (zero), the bar tracks item counts instead.
func (f *ProgressFormatter) Start(writer io.Writer, totalItems int, totalBytes int64) error {
	if writer == nil {
		writer = os.Stderr
	}

	if totalBytes > 0 {
		f.bar = pb.New64(totalBytes)
		f.bar.Set(pb.Bytes, true)
	} else {
		f.items = true
		f.bar = pb.New(totalItems)
	}
	f.bar.SetWriter(writer)
	f.bar.Start()

	return f.human.Start(writer, totalItems, totalBytes)
}

// Progress advances the bar
func (f *ProgressFormatter) Progress(ev Event) error {
	if f.bar == nil {
		return nil
	}

	switch ev.Type {
	case "item_done", "item_failed":
		if f.items {
			f.bar.Increment()
		} else {
			f.bar.Add64(ev.Bytes)
		}
	}
	return nil
}

// Complete finishes the bar and prints the summary
func (f *ProgressFormatter) Complete(report *models.Report) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	return f.human.Complete(report)
}

// Error finishes the bar and reports a fatal error
func (f *ProgressFormatter) Error(err error) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	return f.human.Error(err)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
