package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bdeleeuw/clipstash/pkg/clipboard"
)

// NewLoadCommand creates the load command
func NewLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load [destinations...]",
		Short: "Replicate a clipboard into other clipboards",
		Long: `Copy the named clipboard's staged contents into one or more other
clipboards, replacing whatever they held. Without arguments the default
clipboard is the destination.`,
		RunE: runLoad,
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	src, err := openClipboard(cfg)
	if err != nil {
		return fmt.Errorf("failed to open clipboard: %w", err)
	}

	empty, err := src.Empty()
	if err != nil {
		return err
	}
	if empty {
		return fmt.Errorf("clipboard %q is empty, nothing to load", src.Name())
	}

	destinations := args
	if len(destinations) == 0 {
		destinations = []string{cfg.Clipboards.Default}
	}

	for _, name := range destinations {
		if name == src.Name() {
			return fmt.Errorf("cannot load clipboard %q into itself", name)
		}

		dest, err := clipboard.New(cfg.BaseDir(), name)
		if err != nil {
			return fmt.Errorf("failed to open destination clipboard %q: %w", name, err)
		}
		if err := src.LoadInto(dest); err != nil {
			return err
		}
		if !cfg.Output.Quiet {
			fmt.Printf("Loaded clipboard %q into %q\n", src.Name(), name)
		}
	}
	return nil
}
