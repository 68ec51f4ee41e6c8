// Package diag defines the diagnostic model shared by the parser and the
// scope analyzer. A diagnostic is data, never an error value: both passes
// collect diagnostics into a slice and keep going.
package diag

import "github.com/mf2tools/mf2core/sourcemap"

// Severity classifies how serious a diagnostic is. Every kind is an Error
// except ReservedAnnotation and the registry's UnknownFunction and
// UnknownOption, which are informational.
type Severity uint8

const (
	Error Severity = iota
	Information
)

func (s Severity) String() string {
	if s == Information {
		return "information"
	}
	return "error"
}

// Kind enumerates every diagnostic the core can produce.
type Kind uint8

const (
	// Parse diagnostics.
	BadEscape Kind = iota
	UnescapedBrace
	UnclosedExpression
	UnclosedQuotedLiteral
	UnclosedQuotedPattern
	EmptyExpression
	UnexpectedCharacter
	MissingEquals
	MissingVariable
	MissingIdentifier
	VariantKeyCountMismatch
	MatcherMissingBody
	ReservedAnnotation

	// Scope diagnostics.
	DuplicateDeclaration
	UsedBeforeDeclaration

	// Request-level diagnostics (not parse/scope, but typed the same way
	// so callers can treat every core failure uniformly).
	InvalidVariableName
	NoVariableAtPosition

	// Registry diagnostics, always informational.
	UnknownFunction
	UnknownOption
)

func (k Kind) String() string {
	switch k {
	case BadEscape:
		return "BadEscape"
	case UnescapedBrace:
		return "UnescapedBrace"
	case UnclosedExpression:
		return "UnclosedExpression"
	case UnclosedQuotedLiteral:
		return "UnclosedQuotedLiteral"
	case UnclosedQuotedPattern:
		return "UnclosedQuotedPattern"
	case EmptyExpression:
		return "EmptyExpression"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case MissingEquals:
		return "MissingEquals"
	case MissingVariable:
		return "MissingVariable"
	case MissingIdentifier:
		return "MissingIdentifier"
	case VariantKeyCountMismatch:
		return "VariantKeyCountMismatch"
	case MatcherMissingBody:
		return "MatcherMissingBody"
	case ReservedAnnotation:
		return "ReservedAnnotation"
	case DuplicateDeclaration:
		return "DuplicateDeclaration"
	case UsedBeforeDeclaration:
		return "UsedBeforeDeclaration"
	case InvalidVariableName:
		return "InvalidVariableName"
	case NoVariableAtPosition:
		return "NoVariableAtPosition"
	case UnknownFunction:
		return "UnknownFunction"
	case UnknownOption:
		return "UnknownOption"
	default:
		return "Unknown"
	}
}

// Diagnostic is one recorded parse or scope problem.
type Diagnostic struct {
	Kind     Kind
	Span     sourcemap.Span
	Severity Severity
	Message  string
	Data     any
}

// UnexpectedCharacterData is the Data payload for an UnexpectedCharacter
// diagnostic.
type UnexpectedCharacterData struct {
	Char rune
}

// VariantKeyCountMismatchData is the Data payload for a
// VariantKeyCountMismatch diagnostic.
type VariantKeyCountMismatchData struct {
	Expected int
	Got      int
}

// BadEscapeData is the Data payload for a BadEscape diagnostic.
type BadEscapeData struct {
	Char rune
}

func sev(k Kind) Severity {
	if k == ReservedAnnotation || k == UnknownFunction || k == UnknownOption {
		return Information
	}
	return Error
}

// New builds a Diagnostic, deriving severity from kind.
func New(kind Kind, span sourcemap.Span, message string, data any) Diagnostic {
	return Diagnostic{Kind: kind, Span: span, Severity: sev(kind), Message: message, Data: data}
}
