package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mf2tools/mf2core/registry"
)

func newCheckCmd() *cobra.Command {
	var noRegistry bool
	cmd := &cobra.Command{
		Use:   "check <file...>",
		Short: "Parse and analyze files, reporting every diagnostic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, noRegistry)
		},
	}
	cmd.Flags().BoolVar(&noRegistry, "no-registry", false, "skip UnknownFunction/UnknownOption diagnostics")
	return cmd
}

func runCheck(paths []string, noRegistry bool) error {
	var reg *registry.Registry
	if !noRegistry {
		reg = registry.Builtin()
	}

	results := make([][]string, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			var lines []string
			for _, d := range doc.allDiagnostics(reg) {
				lines = append(lines, formatDiagnostic(path, d, doc.sourceMap))
			}
			results[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	anyDiagnostic := false
	for _, lines := range results {
		for _, line := range lines {
			anyDiagnostic = true
			fmt.Fprintln(os.Stdout, line)
		}
	}
	if anyDiagnostic {
		return fmt.Errorf("diagnostics found")
	}
	return nil
}
