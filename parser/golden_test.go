package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mf2tools/mf2core/diag"
)

// goldenDiagnostic is one expected diagnostic row in a scenario fixture,
// given in UTF-16 (line, character) coordinates, the same coordinates an
// editor client would receive.
type goldenDiagnostic struct {
	Kind      string `yaml:"kind"`
	Line      int    `yaml:"line"`
	StartChar int    `yaml:"startChar"`
	EndChar   int    `yaml:"endChar"`
}

type goldenScenario struct {
	Name        string             `yaml:"name"`
	Input       string             `yaml:"input"`
	Diagnostics []goldenDiagnostic `yaml:"diagnostics"`
}

var kindByName = map[string]diag.Kind{
	"BadEscape":              diag.BadEscape,
	"UnescapedBrace":         diag.UnescapedBrace,
	"UnclosedExpression":     diag.UnclosedExpression,
	"UnclosedQuotedLiteral":  diag.UnclosedQuotedLiteral,
	"UnclosedQuotedPattern":  diag.UnclosedQuotedPattern,
	"EmptyExpression":        diag.EmptyExpression,
	"UnexpectedCharacter":    diag.UnexpectedCharacter,
	"MissingEquals":          diag.MissingEquals,
	"MissingVariable":        diag.MissingVariable,
	"MissingIdentifier":      diag.MissingIdentifier,
	"VariantKeyCountMismatch": diag.VariantKeyCountMismatch,
	"MatcherMissingBody":     diag.MatcherMissingBody,
	"ReservedAnnotation":     diag.ReservedAnnotation,
}

// TestParserGoldenScenarios loads parser/testdata/scenarios.yaml and checks
// that every recorded diagnostic's kind and UTF-16 span matches exactly,
// using the source map to translate byte spans the same way a transport
// would before handing them to an editor.
func TestParserGoldenScenarios(t *testing.T) {
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []goldenScenario
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			_, diags, sm := Parse([]byte(sc.Input))
			require.Len(t, diags, len(sc.Diagnostics))

			for i, want := range sc.Diagnostics {
				got := diags[i]
				wantKind, ok := kindByName[want.Kind]
				require.True(t, ok, "unknown kind %q in fixture", want.Kind)
				assert.Equal(t, wantKind, got.Kind)

				r := sm.RangeOf(got.Span)
				assert.Equal(t, want.Line, r.Start.Line, "start line")
				assert.Equal(t, want.StartChar, r.Start.Character, "start char")
				assert.Equal(t, want.EndChar, r.End.Character, "end char")
			}
		})
	}
}
