package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mf2tools/mf2core/printer"
)

func newFmtCmd() *cobra.Command {
	var write bool
	var watch bool
	cmd := &cobra.Command{
		Use:   "fmt [-w] <file...>",
		Short: "Print the canonical formatting of MF2 files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return watchFmt(args, write)
			}
			return runFmt(args, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place instead of printing to stdout")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run whenever a watched file changes")
	return cmd
}

func runFmt(paths []string, write bool) error {
	outputs := make([]string, len(paths))
	failed := make([]bool, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			out, ok := printer.Print(doc.msg, doc.sourceMap, doc.parseDiags)
			if !ok {
				failed[i] = true
				return nil
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failedCount := 0
	for i, path := range paths {
		if failed[i] {
			failedCount++
			fmt.Fprintf(os.Stderr, "%s: has parse errors, refusing to format (run `mf2 check` for details)\n", path)
		}
	}
	if failedCount > 0 {
		return fmt.Errorf("%d file(s) could not be formatted", failedCount)
	}

	for i, path := range paths {
		if write {
			if err := os.WriteFile(path, []byte(outputs[i]), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			continue
		}
		fmt.Fprint(os.Stdout, outputs[i])
	}
	return nil
}

// watchFmt re-runs runFmt whenever one of paths changes on disk. It runs
// until the process is interrupted.
func watchFmt(paths []string, write bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	if err := runFmt(paths, write); err != nil {
		fmt.Fprintln(os.Stderr, "mf2:", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := runFmt(paths, write); err != nil {
				fmt.Fprintln(os.Stderr, "mf2:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "mf2: watch error:", err)
		}
	}
}
