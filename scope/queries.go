package scope

import (
	"errors"

	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/charclass"
)

// ErrInvalidVariableName and ErrNoVariableAtPosition carry the exact LSP
// RequestFailed message text the transport surfaces for rename requests.
var (
	ErrInvalidVariableName  = errors.New("Invalid variable name.")
	ErrNoVariableAtPosition = errors.New("No variable to rename at the given position.")
)

// TextEdit replaces the text at Span with NewText.
type TextEdit struct {
	Span    ast.Span
	NewText string
}

// GotoDefinition finds the usage whose span contains offset and returns
// its declaration's span. It returns false if offset is on a declaration
// itself, or on neither a declaration nor a usage.
func (t *Table) GotoDefinition(offset int) (ast.Span, bool) {
	for _, d := range t.Declarations {
		if d.Span.Contains(offset) {
			return ast.Span{}, false
		}
		for _, u := range d.Usages {
			if u.Contains(offset) {
				return d.Span, true
			}
		}
	}
	return ast.Span{}, false
}

// PrepareRename returns the "$name" span (declaration or usage) that
// contains offset, if any. The returned span always includes the
// leading "$".
func (t *Table) PrepareRename(offset int) (ast.Span, bool) {
	if d := t.declarationAt(offset); d != nil {
		for _, s := range d.allSpans() {
			if s.Contains(offset) {
				return s, true
			}
		}
	}
	return ast.Span{}, false
}

// Rename validates newName and, if valid, returns a text edit for the
// declaration and every usage of the variable at offset, each replacing
// its span with "$newName".
func (t *Table) Rename(offset int, newName string) ([]TextEdit, error) {
	if !isValidVariableName(newName) {
		return nil, ErrInvalidVariableName
	}
	d := t.declarationAt(offset)
	if d == nil {
		return nil, ErrNoVariableAtPosition
	}
	edits := make([]TextEdit, 0, len(d.Usages)+1)
	edits = append(edits, TextEdit{Span: d.Span, NewText: "$" + newName})
	for _, u := range d.Usages {
		edits = append(edits, TextEdit{Span: u, NewText: "$" + newName})
	}
	return edits, nil
}

// declarationAt returns the declaration whose span or usage list contains
// offset, or nil.
func (t *Table) declarationAt(offset int) *Declaration {
	for _, d := range t.Declarations {
		if d.Span.Contains(offset) {
			return d
		}
		for _, u := range d.Usages {
			if u.Contains(offset) {
				return d
			}
		}
	}
	return nil
}

func (d *Declaration) allSpans() []ast.Span {
	spans := make([]ast.Span, 0, len(d.Usages)+1)
	spans = append(spans, d.Span)
	spans = append(spans, d.Usages...)
	return spans
}

func isValidVariableName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !charclass.IsNameStart(r) {
				return false
			}
			continue
		}
		if !charclass.IsNameChar(r) {
			return false
		}
	}
	return true
}
