package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bdeleeuw/clipstash/pkg/clipboard"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List clipboards with contents",
		Long:  `Show an overview of every clipboard that currently holds something.`,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cfg)

	summaries, err := clipboard.List(cfg.BaseDir())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("All clipboards are empty")
		return nil
	}

	width := displayWidth()
	for _, summary := range summaries {
		var contents string
		if summary.Text {
			contents = summary.Preview
		} else {
			contents = strings.Join(summary.Entries, ", ")
		}
		fmt.Println(trimToWidth(fmt.Sprintf("%s: %s", summary.Name, contents), width))
	}
	return nil
}

// displayWidth returns the terminal width, or a sane default when
// stdout is not a terminal.
func displayWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

func trimToWidth(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
