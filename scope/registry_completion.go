package scope

import "github.com/mf2tools/mf2core/ast"

// OptionNamer is the slice of registry.Registry that completion needs: the
// option names known for a given function identifier. Declared here rather
// than imported directly so scope never depends on registry's JSON-Schema
// machinery for a feature this narrow.
type OptionNamer interface {
	OptionNamesFor(function string) ([]string, bool)
}

// CompletionWithOptions behaves like Completion, but when offset lies
// inside a Function annotation's option-name position and reg knows that
// function, it returns only that function's option names, ranked against
// typed; declared variable names are not offered there.
func CompletionWithOptions(msg ast.Message, t *Table, reg OptionNamer, offset int, typed string) []string {
	if fn, ok := enclosingFunctionOptionPosition(msg, offset); ok {
		if names, ok := reg.OptionNamesFor(fn); ok {
			return RankCompletions(names, typed)
		}
	}
	return Completion(msg, t, offset, typed)
}

// enclosingFunctionOptionPosition reports the identifier of the Function
// whose option-name slot offset sits in, if any.
func enclosingFunctionOptionPosition(msg ast.Message, offset int) (string, bool) {
	var fnName string
	var found bool
	ast.Walk(msg, nil, func(n ast.Node, scratch any) (ast.VisitAction, any) {
		fn, ok := n.(*ast.Function)
		if !ok {
			return ast.Continue, scratch
		}
		for _, o := range fn.Options {
			if o.Name != nil && o.Name.Span().Contains(offset) && fn.Identifier != nil {
				fnName = fn.Identifier.Name
				found = true
				return ast.Stop, scratch
			}
		}
		return ast.Continue, scratch
	}, nil)
	return fnName, found
}
