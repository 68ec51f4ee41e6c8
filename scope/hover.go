package scope

import "fmt"

// Hover returns a human-readable description of the variable whose
// declaration or usage span contains offset, following the same
// table-lookup shape as GotoDefinition and PrepareRename.
func Hover(t *Table, offset int) (string, bool) {
	d := t.declarationAt(offset)
	if d == nil {
		return "", false
	}
	return fmt.Sprintf("$%s — %s variable, %d use(s)", d.Name, d.Kind, len(d.Usages)), true
}
