package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bdeleeuw/clipstash/pkg/clipboard"
	"github.com/bdeleeuw/clipstash/pkg/engine"
	"github.com/bdeleeuw/clipstash/pkg/models"
)

// CopyFlags holds copy/cut command flags
type CopyFlags struct {
	Text bool
}

var copyFlags CopyFlags

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy [paths...]",
		Short: "Copy files or text into a clipboard",
		Long: `Stage files and directories into the named clipboard, replacing its
current contents. With --text the arguments are stored as a raw text
buffer instead; with no arguments and a piped stdin, the pipe is
stored.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(models.ActionCopy, args)
		},
	}
	cmd.Flags().BoolVar(&copyFlags.Text, "text", false, "store the arguments as text instead of paths")
	return cmd
}

// NewCutCommand creates the cut command
func NewCutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cut [paths...]",
		Short: "Cut files or text into a clipboard",
		Long: `Stage files and directories into the named clipboard and record the
sources so a later paste consumes them. With --text the arguments are
stored as a raw text buffer instead; with no arguments and a piped
stdin, the pipe is stored.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(models.ActionCut, args)
		},
	}
	cmd.Flags().BoolVar(&copyFlags.Text, "text", false, "store the arguments as text instead of paths")
	return cmd
}

func runCopy(action models.Action, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	clip, err := openClipboard(cfg)
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}

	req, err := newRequest(cfg, action, "", nil)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	// a copy or cut replaces whatever was staged before
	if err := clip.Clear(); err != nil {
		return err
	}

	// no arguments but a piped stdin: stream the pipe into the text buffer
	if len(args) == 0 {
		if !stdinIsPipe() {
			return fmt.Errorf("nothing to %s: give paths, --text, or pipe data in", action)
		}
		n, err := clip.WriteRawFrom(os.Stdin)
		if err != nil {
			return err
		}
		if err := recordTextOriginal(clip, action); err != nil {
			return err
		}
		logger.Close()
		if !cfg.Output.Quiet {
			fmt.Fprintf(os.Stderr, "%s %d bytes from stdin\n", verb(action), n)
		}
		return nil
	}

	if copyFlags.Text {
		text := strings.Join(args, " ")
		if _, err := clip.WriteRaw([]byte(text)); err != nil {
			return err
		}
		if err := recordTextOriginal(clip, action); err != nil {
			return err
		}
		logger.Close()
		if !cfg.Output.Quiet {
			fmt.Printf("%s %d bytes of text\n", verb(action), len(text))
		}
		return nil
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

// recordTextOriginal marks a cut text buffer for consumption: the
// buffer itself is the "source" removed once it has been pasted.
func recordTextOriginal(clip *clipboard.Clipboard, action models.Action) error {
	if !action.CutSemantics() {
		return nil
	}
	return clip.AppendOriginal(clip.RawFile())
}

// verb returns the past-tense verb for the text path
func verb(action models.Action) string {
	if action.CutSemantics() {
		return "Cut"
	}
	return "Copied"
}
