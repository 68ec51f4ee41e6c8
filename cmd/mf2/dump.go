package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/diag"
	"github.com/mf2tools/mf2core/sourcemap"
)

func newDumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Serialize the AST and diagnostics, with UTF-16 ranges, for external tooling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or cbor")
	return cmd
}

// dumpNode is a generic, serializable projection of an ast.Node: its kind
// name, UTF-16 range, a few kind-specific scalar fields, and children in
// source order. It exists so the AST's sealed interfaces don't have to
// grow struct tags or custom marshalers just to support this CLI command.
type dumpNode struct {
	Kind     string         `json:"kind" cbor:"kind"`
	Range    sourcemap.Range `json:"range" cbor:"range"`
	Text     string         `json:"text,omitempty" cbor:"text,omitempty"`
	Children []dumpNode     `json:"children,omitempty" cbor:"children,omitempty"`
}

type dumpDiagnostic struct {
	Kind     string          `json:"kind" cbor:"kind"`
	Severity string          `json:"severity" cbor:"severity"`
	Range    sourcemap.Range `json:"range" cbor:"range"`
	Message  string          `json:"message" cbor:"message"`
}

type dumpDoc struct {
	Path             string           `json:"path" cbor:"path"`
	AST              dumpNode         `json:"ast" cbor:"ast"`
	ParseDiagnostics []dumpDiagnostic `json:"parseDiagnostics" cbor:"parseDiagnostics"`
	ScopeDiagnostics []dumpDiagnostic `json:"scopeDiagnostics" cbor:"scopeDiagnostics"`
}

func runDump(path, format string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	out := dumpDoc{
		Path:             path,
		AST:              toDumpNode(doc.msg, doc.sourceMap),
		ParseDiagnostics: toDumpDiagnostics(doc.parseDiags, doc.sourceMap),
		ScopeDiagnostics: toDumpDiagnostics(doc.scopeDiags, doc.sourceMap),
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "cbor":
		b, err := cbor.Marshal(out)
		if err != nil {
			return fmt.Errorf("encoding cbor: %w", err)
		}
		_, err = os.Stdout.Write(b)
		return err
	default:
		return fmt.Errorf("unknown --format %q: want json or cbor", format)
	}
}

func toDumpDiagnostics(diags []diag.Diagnostic, sm *sourcemap.Map) []dumpDiagnostic {
	out := make([]dumpDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, dumpDiagnostic{
			Kind:     d.Kind.String(),
			Severity: d.Severity.String(),
			Range:    sm.RangeOf(d.Span),
			Message:  d.Message,
		})
	}
	return out
}

func toDumpNode(n ast.Node, sm *sourcemap.Map) dumpNode {
	node := dumpNode{
		Kind:  kindName(n),
		Range: sm.RangeOf(n.Span()),
	}
	if t, ok := textField(n); ok {
		node.Text = t
	}
	for _, c := range ast.Children(n) {
		node.Children = append(node.Children, toDumpNode(c, sm))
	}
	return node
}

func kindName(n ast.Node) string {
	switch n.(type) {
	case *ast.SimpleMessage:
		return "SimpleMessage"
	case *ast.ComplexMessage:
		return "ComplexMessage"
	case *ast.InputDeclaration:
		return "InputDeclaration"
	case *ast.LocalDeclaration:
		return "LocalDeclaration"
	case *ast.ReservedStatement:
		return "ReservedStatement"
	case *ast.ReservedText:
		return "ReservedText"
	case *ast.Matcher:
		return "Matcher"
	case *ast.Variant:
		return "Variant"
	case *ast.CatchAll:
		return "CatchAll"
	case *ast.QuotedPattern:
		return "QuotedPattern"
	case *ast.Pattern:
		return "Pattern"
	case *ast.Text:
		return "Text"
	case *ast.Escape:
		return "Escape"
	case *ast.LiteralExpr:
		return "LiteralExpr"
	case *ast.VariableExpr:
		return "VariableExpr"
	case *ast.AnnotationExpr:
		return "AnnotationExpr"
	case *ast.Function:
		return "Function"
	case *ast.PrivateUseAnnotation:
		return "PrivateUseAnnotation"
	case *ast.ReservedAnnotationNode:
		return "ReservedAnnotation"
	case *ast.Option:
		return "Option"
	case *ast.QuotedLiteral:
		return "QuotedLiteral"
	case *ast.UnquotedLiteral:
		return "UnquotedLiteral"
	case *ast.Variable:
		return "Variable"
	case *ast.Identifier:
		return "Identifier"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// textField extracts the one or two scalar fields worth showing inline for
// leaf-ish nodes (names, literal text); everything else is reconstructed
// from its children in the dump tree.
func textField(n ast.Node) (string, bool) {
	switch v := n.(type) {
	case *ast.Text:
		return v.Value, true
	case *ast.UnquotedLiteral:
		return v.Value, true
	case *ast.Variable:
		return v.Name, true
	case *ast.Identifier:
		return v.String(), true
	case *ast.ReservedText:
		return v.Text, true
	case *ast.PrivateUseAnnotation:
		return string(v.Sigil) + v.Body, true
	case *ast.ReservedAnnotationNode:
		return string(v.Sigil) + v.Body, true
	default:
		return "", false
	}
}
