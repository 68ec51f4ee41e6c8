package parser

import "fmt"

// Message builders for every diagnostic kind the parser emits. The
// BadEscape text is shown verbatim in editor UIs and must stay
// byte-for-byte stable; the rest are free-form but kept terse.

func msgBadEscape(c rune) string {
	return fmt.Sprintf("The character '%c' can not be escaped as escape sequences can only escape '}', '{', '|', and '\\'.", c)
}

func msgUnescapedBrace() string {
	return "'}' must be escaped as '\\}' in this position."
}

func msgUnclosedExpression() string {
	return "Expected '}' to close this expression."
}

func msgUnclosedQuotedLiteral() string {
	return "Expected closing '|' for this quoted literal."
}

func msgUnclosedQuotedPatternOpen() string {
	return "Expected '{{' to open a quoted pattern."
}

func msgUnclosedQuotedPatternClose() string {
	return "Expected '}}' to close this quoted pattern."
}

func msgEmptyExpression() string {
	return "Expected a literal, variable, or annotation inside '{ }'."
}

func msgUnexpectedCharacter(c rune) string {
	return fmt.Sprintf("Unexpected character '%c'.", c)
}

func msgMissingEquals() string {
	return "Expected '=' here."
}

func msgMissingVariable() string {
	return "Expected a '$name' variable here."
}

func msgMissingIdentifier() string {
	return "Expected a name here."
}

func msgVariantKeyCountMismatch(expected, got int) string {
	return fmt.Sprintf("This variant has %d key(s) but the matcher has %d selector(s).", got, expected)
}

func msgMatcherMissingSelectors() string {
	return "Expected at least one selector after '.match'."
}

func msgMatcherMissingVariants() string {
	return "Expected at least one variant for this matcher."
}

func msgReservedAnnotation(sigil rune) string {
	return fmt.Sprintf("'%c' opens a reserved annotation; its meaning is not yet defined.", sigil)
}
