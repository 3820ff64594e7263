package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bdeleeuw/clipstash/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "clipstash",
		Short: "Named clipboards for files and text in your terminal",
		Long: `clipstash stages files, directories, and text into named clipboards so
they can be pasted anywhere later. Copies are instant on the same
filesystem and fall back to full copies across devices.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", cli.Version, cli.Commit, cli.BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewCopyCommand())
	rootCmd.AddCommand(cli.NewCutCommand())
	rootCmd.AddCommand(cli.NewAddCommand())
	rootCmd.AddCommand(cli.NewPasteCommand())
	rootCmd.AddCommand(cli.NewShowCommand())
	rootCmd.AddCommand(cli.NewClearCommand())
	rootCmd.AddCommand(cli.NewRemoveCommand())
	rootCmd.AddCommand(cli.NewNoteCommand())
	rootCmd.AddCommand(cli.NewLoadCommand())
	rootCmd.AddCommand(cli.NewStatusCommand())
	rootCmd.AddCommand(cli.NewInfoCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
