// Command mf2 is a standalone front-end over the mf2core packages: it
// parses, analyzes, formats, and inspects MF2 messages from the command
// line without requiring an editor.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:           "mf2",
		Short:         "Tools for MessageFormat 2 source files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newTokensCmd())
	root.AddCommand(newRenameCmd())
	root.AddCommand(newDumpCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mf2:", err)
		os.Exit(1)
	}
}
