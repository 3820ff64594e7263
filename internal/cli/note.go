package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewNoteCommand creates the note command
func NewNoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "note [text]",
		Short: "Show, set, or remove a clipboard note",
		Long: `Without arguments, print the note attached to the named clipboard.
With text, attach it as the note. An explicit empty string removes the
note.`,
		RunE: runNote,
	}
}

func runNote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	clip, err := openClipboard(cfg)
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}

	if len(args) == 0 {
		note, err := clip.Note()
		if err != nil {
			return err
		}
		if note == "" {
			fmt.Printf("Clipboard %q has no note\n", clip.Name())
		} else {
			fmt.Println(note)
		}
		return nil
	}

	text := strings.Join(args, " ")
	if text == "" {
		if err := clip.RemoveNote(); err != nil {
			return err
		}
		if !cfg.Output.Quiet {
			fmt.Printf("Removed note from clipboard %q\n", clip.Name())
		}
		return nil
	}

	if err := clip.SetNote(text); err != nil {
		return err
	}
	if !cfg.Output.Quiet {
		fmt.Printf("Saved note to clipboard %q\n", clip.Name())
	}
	return nil
}
