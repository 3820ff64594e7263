package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bdeleeuw/clipstash/pkg/engine"
	"github.com/bdeleeuw/clipstash/pkg/models"
)

// AddFlags holds add command flags
type AddFlags struct {
	Text bool
}

var addFlags AddFlags

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [paths...]",
		Short: "Append files or text to a clipboard",
		Long: `Append files and directories to the named clipboard without clearing
what is already staged. With --text the arguments are appended to the
clipboard's text buffer.

A clipboard holds either items or text, never both; appending across
modes is an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}
	cmd.Flags().BoolVar(&addFlags.Text, "text", false, "append the arguments as text instead of paths")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	clip, err := openClipboard(cfg)
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}

	empty, err := clip.Empty()
	if err != nil {
		return err
	}

	if addFlags.Text {
		if !empty && !clip.IsText() {
			return fmt.Errorf("clipboard %q holds items, cannot append text", clip.Name())
		}
		text := strings.Join(args, " ")
		if _, err := clip.AppendRaw([]byte(text)); err != nil {
			return err
		}
		if !cfg.Output.Quiet {
			fmt.Printf("Added %d bytes of text\n", len(text))
		}
		return nil
	}

	if !empty && clip.IsText() {
		return fmt.Errorf("clipboard %q holds text, cannot append items", clip.Name())
	}

	req, err := newRequest(cfg, models.ActionAdd, "", nil)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	batch, err := engine.ResolveSources(args)
	if err != nil {
		return err
	}

	formatter := createFormatter(cfg)
	items, bytes := batchTotals(batch)
	if err := formatter.Start(formatterWriter(cfg), items, bytes); err != nil {
		return err
	}

	start := time.Now()
	eng := engine.New(clip, req, nil, nil, formatter, logger)
	eng.CopyBatch(batch)

	return finishBatch(eng, req, formatter, logger, start)
}
