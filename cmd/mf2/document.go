package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/diag"
	"github.com/mf2tools/mf2core/parser"
	"github.com/mf2tools/mf2core/registry"
	"github.com/mf2tools/mf2core/scope"
	"github.com/mf2tools/mf2core/sourcemap"
)

// document bundles every artifact one file's pipeline run produces, so
// subcommands don't each re-derive the same things from a parse result.
type document struct {
	path       string
	src        []byte
	msg        ast.Message
	sourceMap  *sourcemap.Map
	parseDiags []diag.Diagnostic
	table      *scope.Table
	scopeDiags []diag.Diagnostic
}

func loadDocument(path string) (*document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	msg, parseDiags, sm := parser.Parse(src)
	slog.Debug("parsed file", "path", path, "diagnostics", len(parseDiags))

	table, scopeDiags := scope.Analyze(msg)

	return &document{
		path:       path,
		src:        src,
		msg:        msg,
		sourceMap:  sm,
		parseDiags: parseDiags,
		table:      table,
		scopeDiags: scopeDiags,
	}, nil
}

// allDiagnostics returns parse, scope, and (when reg is non-nil) registry
// diagnostics together, in the order a reader would want to see them:
// syntax problems first, since a registry diagnostic about a function
// inside a malformed expression is rarely useful on its own.
func (d *document) allDiagnostics(reg *registry.Registry) []diag.Diagnostic {
	all := make([]diag.Diagnostic, 0, len(d.parseDiags)+len(d.scopeDiags))
	all = append(all, d.parseDiags...)
	all = append(all, d.scopeDiags...)
	if reg != nil {
		all = append(all, reg.Diagnose(d.msg)...)
	}
	return all
}

// formatDiagnostic renders one diagnostic as "path:line:col: message",
// 1-based as is conventional for CLI tool output (the source map itself
// stays 0-based, LSP-style, internally).
func formatDiagnostic(path string, d diag.Diagnostic, sm *sourcemap.Map) string {
	pos := sm.PositionOf(d.Span.Start)
	sevTag := ""
	if d.Severity == diag.Information {
		sevTag = " [info]"
	}
	return fmt.Sprintf("%s:%d:%d:%s %s", path, pos.Line+1, pos.Character+1, sevTag, d.Message)
}
