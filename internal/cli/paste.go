package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bdeleeuw/clipstash/pkg/engine"
	"github.com/bdeleeuw/clipstash/pkg/logging"
	"github.com/bdeleeuw/clipstash/pkg/models"
)

// PasteFlags holds paste command flags
type PasteFlags struct {
	Conflict string
}

var pasteFlags PasteFlags

// NewPasteCommand creates the paste command
func NewPasteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paste [patterns...]",
		Short: "Paste clipboard contents into the working directory",
		Long: `Copy staged entries into the current working directory. Optional
patterns are whole-name regular expressions; only matching entries are
pasted. A clipboard that was cut into is consumed by the paste.

Existing destinations that differ from the staged entry prompt for a
decision unless --conflict presets one.`,
		RunE: runPaste,
	}
	cmd.Flags().StringVar(&pasteFlags.Conflict, "conflict", "", "preset conflict policy: skip-all, replace-all")
	return cmd
}

func runPaste(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	policy := cfg.Copy.Conflict
	if pasteFlags.Conflict != "" {
		policy = models.ConflictPolicy(pasteFlags.Conflict)
	}
	// a quiet run cannot prompt
	if cfg.Output.Quiet && (policy == "" || policy == models.ConflictAsk) {
		policy = models.ConflictSkipAll
	}

	clip, err := openClipboard(cfg)
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}

	empty, err := clip.Empty()
	if err != nil {
		return err
	}
	if empty {
		return fmt.Errorf("clipboard %q is empty", clip.Name())
	}

	// a non-empty originals log means this clipboard was cut into; the
	// paste consumes it
	originals, err := clip.Originals()
	if err != nil {
		return err
	}
	action := models.ActionPaste
	if len(originals) > 0 {
		action = models.ActionCut
	}

	// a text clipboard pastes to stdout
	if clip.IsText() {
		if _, err := clip.StreamTo(os.Stdout); err != nil {
			return err
		}
		if action.CutSemantics() {
			return clip.ConsumeOriginals()
		}
		return nil
	}

	// a piped stdout receives the staged file contents instead of a
	// directory paste
	if stdoutIsPipe() {
		if _, err := clip.StreamTo(os.Stdout); err != nil {
			return err
		}
		return nil
	}

	req, err := newRequest(cfg, action, policy, args)
	if err != nil {
		return err
	}

	patterns, err := engine.CompilePatterns(args)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	destDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	entries, err := clip.Entries()
	if err != nil {
		return err
	}

	formatter := createFormatter(cfg)
	items, bytes := batchTotals(entries)
	if err := formatter.Start(formatterWriter(cfg), items, bytes); err != nil {
		return err
	}

	start := time.Now()
	resolver := engine.NewConflictResolver(policy, askDecision)
	eng := engine.New(clip, req, nil, resolver, formatter, logger)
	if err := eng.PasteBatch(destDir, patterns); err != nil {
		formatter.Error(err)
		return err
	}

	// a cut becomes a move here: the recorded sources are deleted once
	// the paste has run
	if action.CutSemantics() {
		if err := clip.ConsumeOriginals(); err != nil {
			logger.Warn("failed to consume cut sources", logging.Fields{"error": err.Error()})
		}
	}

	return finishBatch(eng, req, formatter, logger, start)
}
