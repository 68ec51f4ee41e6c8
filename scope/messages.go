package scope

import "fmt"

// These two strings are shown verbatim in editor UIs: exact, stable text
// that tests depend on.

func msgDuplicateDeclaration(name string) string {
	return fmt.Sprintf("$%s has already been declared.", name)
}

func msgUsedBeforeDeclaration(name string) string {
	return fmt.Sprintf("$%s is used before it is declared.", name)
}
