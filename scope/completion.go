package scope

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mf2tools/mf2core/ast"
)

// Completion returns the name of every declaration in t, or nil if offset
// does not lie in a position where an expression operand is legal (e.g.
// inside pattern text). Whether a declaration comes before or after offset
// is not considered. typed is the partial text already at
// the cursor, if any, used only to rank results; pass "" for no ranking.
func Completion(msg ast.Message, t *Table, offset int, typed string) []string {
	node := ast.FindSmallest(msg, offset)
	if node == nil || !isOperandPosition(node) {
		return nil
	}

	names := make([]string, 0, len(t.Declarations))
	for _, d := range t.Declarations {
		names = append(names, d.Name)
	}
	return RankCompletions(names, typed)
}

func isOperandPosition(n ast.Node) bool {
	switch n.(type) {
	case *ast.VariableExpr, *ast.LiteralExpr, *ast.AnnotationExpr, *ast.Variable:
		return true
	}
	return false
}

// RankCompletions sorts candidates by fuzzy-match closeness to typed. An
// empty typed returns candidates unranked, in their original order.
func RankCompletions(candidates []string, typed string) []string {
	if typed == "" {
		return candidates
	}
	ranks := fuzzy.RankFind(typed, candidates)
	sort.Sort(ranks)
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}
