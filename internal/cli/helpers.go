package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/bdeleeuw/clipstash/pkg/clipboard"
	"github.com/bdeleeuw/clipstash/pkg/config"
	"github.com/bdeleeuw/clipstash/pkg/engine"
	"github.com/bdeleeuw/clipstash/pkg/logging"
	"github.com/bdeleeuw/clipstash/pkg/models"
	"github.com/bdeleeuw/clipstash/pkg/output"
)

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
	if globalFlags.Verbose {
		cfg.Output.Progress = true
	}
	if globalFlags.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = globalFlags.LogFile
		cfg.Logging.Format = globalFlags.LogFormat
		cfg.Logging.Level = globalFlags.LogLevel
	}
}

// clipboardName resolves the clipboard to operate on
func clipboardName(cfg *config.Config) string {
	if globalFlags.Clipboard != "" {
		return globalFlags.Clipboard
	}
	return cfg.Clipboards.Default
}

// openClipboard opens (creating if necessary) the selected clipboard
func openClipboard(cfg *config.Config) (*clipboard.Clipboard, error) {
	return clipboard.New(cfg.BaseDir(), clipboardName(cfg))
}

// newRequest builds a request for one batch operation
func newRequest(cfg *config.Config, action models.Action, policy models.ConflictPolicy, patterns []string) (*models.CopyRequest, error) {
	req := &models.CopyRequest{
		ID:        uuid.New().String(),
		Action:    action,
		Clipboard: clipboardName(cfg),
		SafeCopy:  cfg.Copy.Safe,
		Policy:    policy,
		Patterns:  patterns,
		CreatedAt: time.Now(),
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// createFormatter creates an output formatter based on configuration
func createFormatter(cfg *config.Config) output.Formatter {
	switch cfg.Output.Format {
	case "json":
		return output.NewJSONFormatter()
	default:
		if cfg.Output.Progress && !cfg.Output.Quiet {
			return output.NewProgressFormatter(globalFlags.Verbose)
		}
		return output.NewHumanFormatter(globalFlags.Verbose)
	}
}

// formatterWriter returns the stream a non-JSON formatter should use.
// Quiet mode discards everything except the error path.
func formatterWriter(cfg *config.Config) io.Writer {
	if cfg.Output.Quiet {
		return io.Discard
	}
	return nil // formatter default
}

// createLogger creates a logger based on configuration
func createLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	var format logging.Format
	switch cfg.Logging.Format {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: format,
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}

// stdinIsPipe reports whether stdin carries piped data
func stdinIsPipe() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// stdoutIsPipe reports whether stdout feeds a pipe or file
func stdoutIsPipe() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

// askDecision prompts interactively for one paste collision
func askDecision(name string) models.ConflictPolicy {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprintf(os.Stderr, "'%s' already exists, overwrite? [y]es/[n]o/[a]ll/[s]kip all: ", name)
		line, err := reader.ReadString('\n')
		if err != nil {
			// no terminal to answer from: leave everything alone
			return models.ConflictSkipAll
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return models.ConflictReplaceOnce
		case "n", "no":
			return models.ConflictSkipOnce
		case "a", "all":
			return models.ConflictReplaceAll
		case "s", "skip all":
			return models.ConflictSkipAll
		}
	}
}

// finishBatch renders the final report and exits with the batch status
// code when the batch did not fully succeed.
func finishBatch(eng *engine.Engine, req *models.CopyRequest, formatter output.Formatter, logger logging.Logger, start time.Time) error {
	report := eng.Aggregator().Report(req, start, time.Now())
	if err := formatter.Complete(report); err != nil {
		return err
	}

	logger.Info("batch complete", logging.Fields{
		"request":  req.ID,
		"status":   string(report.Status()),
		"files":    report.Stats.Files,
		"dirs":     report.Stats.Directories,
		"bytes":    report.Stats.Bytes,
		"failures": len(report.Failures),
	})
	logger.Close()

	if code := report.Status().ExitCode(); code != 0 {
		os.Exit(code)
	}
	return nil
}

// batchTotals sums the known sizes of a batch for progress display
func batchTotals(batch models.Batch) (int, int64) {
	var bytes int64
	for _, item := range batch {
		bytes += item.Size
	}
	return len(batch), bytes
}
