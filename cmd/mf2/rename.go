package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mf2tools/mf2core/scope"
)

func newRenameCmd() *cobra.Command {
	var line, char int
	var to string
	cmd := &cobra.Command{
		Use:   "rename <file> --line L --char C --to NAME",
		Short: "Rename the variable at a position and print the resulting edits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(args[0], line, char, to)
		},
	}
	cmd.Flags().IntVar(&line, "line", 0, "zero-based line number")
	cmd.Flags().IntVar(&char, "char", 0, "zero-based UTF-16 column")
	cmd.Flags().StringVar(&to, "to", "", "new variable name (without the leading $)")
	cmd.MarkFlagRequired("to")
	return cmd
}

func runRename(path string, line, char int, to string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	offset := doc.sourceMap.OffsetOf(line, char)
	edits, err := doc.table.Rename(offset, to)
	if err != nil {
		if errors.Is(err, scope.ErrNoVariableAtPosition) || errors.Is(err, scope.ErrInvalidVariableName) {
			return fmt.Errorf("%s", err.Error())
		}
		return err
	}

	sort.Slice(edits, func(i, j int) bool { return edits[i].Span.Start < edits[j].Span.Start })
	for _, e := range edits {
		r := doc.sourceMap.RangeOf(e.Span)
		fmt.Fprintf(os.Stdout, "%d:%d-%d:%d -> %s\n", r.Start.Line, r.Start.Character, r.End.Line, r.End.Character, e.NewText)
	}
	return nil
}
