package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bdeleeuw/clipstash/pkg/output"
)

// NewInfoCommand creates the info command
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show details about a clipboard",
		Long:  `Display the named clipboard's location, contents summary, lock state, and note.`,
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	clip, err := openClipboard(cfg)
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}

	fmt.Printf("Clipboard:  %s\n", clip.Name())
	fmt.Printf("Location:   %s\n", clip.Root())

	if clip.IsText() {
		raw, err := clip.ReadRaw()
		if err != nil {
			return err
		}
		fmt.Printf("Contents:   %s of text\n", output.FormatBytes(int64(len(raw))))
	} else {
		entries, err := clip.Entries()
		if err != nil {
			return err
		}
		files, dirs := 0, 0
		for _, entry := range entries {
			if entry.IsDir {
				dirs++
			} else {
				files++
			}
		}
		fmt.Printf("Contents:   %d files, %d directories\n", files, dirs)
	}

	if originals, err := clip.Originals(); err == nil && len(originals) > 0 {
		fmt.Printf("Cut from:   %d recorded sources\n", len(originals))
	}

	if pid, locked := clip.LockedBy(); locked {
		fmt.Printf("Locked by:  pid %s\n", pid)
	} else {
		fmt.Printf("Locked by:  nobody\n")
	}

	note, err := clip.Note()
	if err != nil {
		return err
	}
	if note != "" {
		fmt.Printf("Note:       %s\n", note)
	}
	return nil
}
