// Package scope builds the variable symbol table for a parsed message and
// answers every position-based query an editor needs (goto-definition,
// rename, completion, hover) as pure functions over that table.
package scope

import (
	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/diag"
)

// Kind distinguishes how a variable entered scope.
type Kind uint8

const (
	Input Kind = iota
	Local
)

func (k Kind) String() string {
	if k == Local {
		return "local"
	}
	return "input"
}

// Declaration is one entry in the symbol table: a variable name, the span
// of the "$name" occurrence that introduced it, and every usage span that
// resolved to it.
type Declaration struct {
	Name   string
	Span   ast.Span
	Kind   Kind
	Usages []ast.Span
}

// Table is the symbol table produced by Analyze: declarations in source
// order, plus a name index for resolution.
type Table struct {
	Declarations []*Declaration
	byName       map[string]*Declaration
}

func newTable() *Table {
	return &Table{byName: make(map[string]*Declaration)}
}

// Lookup returns the declaration for name, if any.
func (t *Table) Lookup(name string) (*Declaration, bool) {
	d, ok := t.byName[name]
	return d, ok
}

type varUse struct {
	Name string
	Span ast.Span
}

// Analyze collects every declared name in a pre-pass, then makes one pass
// over msg's declarations and complex body, building the symbol table and
// collecting scope diagnostics. It never
// fails: every input produces a (possibly empty) table.
func Analyze(msg ast.Message) (*Table, []diag.Diagnostic) {
	t := newTable()
	var diags []diag.Diagnostic

	switch m := msg.(type) {
	case *ast.ComplexMessage:
		declaredNames := collectDeclaredNames(m.Declarations)
		for _, d := range m.Declarations {
			diags = t.processDeclaration(d, declaredNames, diags)
		}
		if m.Body != nil {
			for _, u := range collectVarUsages(m.Body) {
				t.resolveSilently(u)
			}
		}
	case *ast.SimpleMessage:
		if m.Pattern != nil {
			for _, u := range collectVarUsages(m.Pattern) {
				t.resolveSilently(u)
			}
		}
	}

	return t, diags
}

// collectDeclaredNames gathers every name introduced by an .input or
// .local statement anywhere in the message, regardless of order. A
// tentative usage naming something outside this set refers to an
// external input and is never diagnosed.
func collectDeclaredNames(decls []ast.Declaration) map[string]bool {
	names := make(map[string]bool, len(decls))
	for _, d := range decls {
		switch decl := d.(type) {
		case *ast.InputDeclaration:
			names[decl.VariableExpr.Variable.Name] = true
		case *ast.LocalDeclaration:
			names[decl.Variable.Name] = true
		}
	}
	return names
}

func (t *Table) processDeclaration(d ast.Declaration, declaredNames map[string]bool, diags []diag.Diagnostic) []diag.Diagnostic {
	switch decl := d.(type) {
	case *ast.InputDeclaration:
		name := decl.VariableExpr.Variable.Name
		nameSpan := decl.VariableExpr.Variable.Span()
		tentative := collectVarUsages(decl.VariableExpr.Annotation)
		return t.finishDeclaration(name, nameSpan, Input, tentative, declaredNames, diags)

	case *ast.LocalDeclaration:
		name := decl.Variable.Name
		nameSpan := decl.Variable.Span()
		tentative := collectVarUsages(decl.Value)
		return t.finishDeclaration(name, nameSpan, Local, tentative, declaredNames, diags)

	case *ast.ReservedStatement:
		for _, n := range decl.Body {
			if expr, ok := n.(ast.Expression); ok {
				for _, u := range collectVarUsages(expr) {
					diags = t.resolveOrReport(u, declaredNames, diags)
				}
			}
		}
		return diags
	}
	return diags
}

// finishDeclaration registers one declaration: a duplicate name is never
// (re-)registered and its self-referential tentative usages are discarded
// outright; every other tentative usage
// resolves against the table as it stood before this declaration. An
// unresolved name is reported as UsedBeforeDeclaration only if it is
// declared somewhere else in the message; a name declared nowhere is
// an external input and is left unresolved without a diagnostic.
func (t *Table) finishDeclaration(name string, nameSpan ast.Span, kind Kind, tentative []varUse, declaredNames map[string]bool, diags []diag.Diagnostic) []diag.Diagnostic {
	_, isDup := t.byName[name]

	for _, u := range tentative {
		if u.Name == name {
			if isDup {
				continue
			}
			diags = append(diags, diag.New(diag.UsedBeforeDeclaration, u.Span, msgUsedBeforeDeclaration(name), nil))
			continue
		}
		if other, ok := t.byName[u.Name]; ok {
			other.Usages = append(other.Usages, u.Span)
		} else if declaredNames[u.Name] {
			diags = append(diags, diag.New(diag.UsedBeforeDeclaration, u.Span, msgUsedBeforeDeclaration(u.Name), nil))
		}
	}

	if isDup {
		diags = append(diags, diag.New(diag.DuplicateDeclaration, nameSpan, msgDuplicateDeclaration(name), nil))
		return diags
	}

	d := &Declaration{Name: name, Span: nameSpan, Kind: kind}
	t.byName[name] = d
	t.Declarations = append(t.Declarations, d)
	return diags
}

func (t *Table) resolveOrReport(u varUse, declaredNames map[string]bool, diags []diag.Diagnostic) []diag.Diagnostic {
	if d, ok := t.byName[u.Name]; ok {
		d.Usages = append(d.Usages, u.Span)
		return diags
	}
	if declaredNames[u.Name] {
		return append(diags, diag.New(diag.UsedBeforeDeclaration, u.Span, msgUsedBeforeDeclaration(u.Name), nil))
	}
	return diags
}

func (t *Table) resolveSilently(u varUse) {
	if d, ok := t.byName[u.Name]; ok {
		d.Usages = append(d.Usages, u.Span)
	}
}

// collectVarUsages walks n's subtree and records every $name reference. A
// nil n (an absent annotation or value the parser could not recover)
// yields no usages.
func collectVarUsages(n ast.Node) []varUse {
	if n == nil {
		return nil
	}
	var uses []varUse
	ast.Walk(n, nil, func(node ast.Node, scratch any) (ast.VisitAction, any) {
		if v, ok := node.(*ast.Variable); ok {
			uses = append(uses, varUse{Name: v.Name, Span: v.Span()})
		}
		return ast.Continue, nil
	}, nil)
	return uses
}
