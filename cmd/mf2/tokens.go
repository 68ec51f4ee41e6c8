package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mf2tools/mf2core/semtok"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the delta-encoded semantic token stream for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(args[0])
		},
	}
	return cmd
}

func runTokens(path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	toks := semtok.Build(doc.msg, doc.sourceMap)
	encoded := semtok.Encode(toks)

	for i := 0; i+5 <= len(encoded); i += 5 {
		deltaLine, deltaStart, length, typ, mods := encoded[i], encoded[i+1], encoded[i+2], encoded[i+3], encoded[i+4]
		fmt.Fprintf(os.Stdout, "%d %d %d %s %d\n", deltaLine, deltaStart, length, semtok.Legend[typ], mods)
	}
	return nil
}
