package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bdeleeuw/clipstash/pkg/engine"
	"github.com/bdeleeuw/clipstash/pkg/output"
)

// textPreviewLimit caps the show preview of a text clipboard
const textPreviewLimit = 250

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [patterns...]",
		Short: "Show clipboard contents without pasting",
		Long: `List the entries staged in the named clipboard, or preview its text
buffer. Optional patterns are whole-name regular expressions filtering
the listed entries.`,
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
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
	if empty {
		fmt.Printf("Clipboard %q is empty\n", clip.Name())
		return nil
	}

	if clip.IsText() {
		raw, err := clip.ReadRaw()
		if err != nil {
			return err
		}
		preview := string(raw)
		if len(preview) > textPreviewLimit {
			preview = preview[:textPreviewLimit] + "..."
		}
		fmt.Printf("Clipboard %q holds text:\n%s\n", clip.Name(), preview)
		return nil
	}

	patterns, err := engine.CompilePatterns(args)
	if err != nil {
		return err
	}

	entries, err := clip.Entries()
	if err != nil {
		return err
	}

	fmt.Printf("Clipboard %q:\n", clip.Name())
	shown := 0
	for _, entry := range entries {
		if !engine.MatchesAny(entry.Name, patterns) {
			continue
		}
		shown++
		if entry.IsDir {
			fmt.Printf("  %s/\n", entry.Name)
		} else {
			fmt.Printf("  %s (%s)\n", entry.Name, output.FormatBytes(entry.Size))
		}
	}
	if shown == 0 {
		fmt.Println("  (no entries match)")
	}
	return nil
}
