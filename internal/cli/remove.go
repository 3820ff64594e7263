package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bdeleeuw/clipstash/pkg/engine"
	"github.com/bdeleeuw/clipstash/pkg/models"
)

// NewRemoveCommand creates the remove command
func NewRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <patterns...>",
		Short: "Remove matching entries from a clipboard",
		Long: `Delete staged entries whose names match the given whole-name regular
expressions. On a text clipboard the matches are deleted from the text
buffer instead. Matching nothing at all is an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	clip, err := openClipboard(cfg)
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}

	patterns, err := engine.CompilePatterns(args)
	if err != nil {
		return err
	}

	req, err := newRequest(cfg, models.ActionRemove, "", args)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if clip.IsText() {
		eng := engine.New(clip, req, nil, nil, nil, logger)
		removed, err := eng.RemoveText(patterns)
		logger.Close()
		if err != nil {
			return err
		}
		if !cfg.Output.Quiet {
			fmt.Printf("Removed %d bytes of text\n", removed)
		}
		return nil
	}

	formatter := createFormatter(cfg)
	entries, err := clip.Entries()
	if err != nil {
		return err
	}
	if err := formatter.Start(formatterWriter(cfg), len(entries), 0); err != nil {
		return err
	}

	start := time.Now()
	eng := engine.New(clip, req, nil, nil, formatter, logger)
	if err := eng.RemoveByPattern(patterns); err != nil {
		logger.Close()
		return err
	}
	return finishBatch(eng, req, formatter, logger, start)
}
