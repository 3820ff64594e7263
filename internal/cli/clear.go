package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClearCommand creates the clear command
func NewClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear clipboard contents",
		Long:  `Remove everything staged in the named clipboard, including the record of cut sources.`,
		RunE:  runClear,
	}
}

func runClear(cmd *cobra.Command, args []string) error {
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
		if !cfg.Output.Quiet {
			fmt.Printf("Clipboard %q is already empty\n", clip.Name())
		}
		return nil
	}

	if err := clip.Clear(); err != nil {
		return err
	}
	if !cfg.Output.Quiet {
		fmt.Printf("Cleared clipboard %q\n", clip.Name())
	}
	return nil
}
