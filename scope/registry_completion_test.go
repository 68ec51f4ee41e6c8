package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mf2tools/mf2core/parser"
)

type fakeRegistry map[string][]string

func (r fakeRegistry) OptionNamesFor(function string) ([]string, bool) {
	names, ok := r[function]
	return names, ok
}

func TestCompletionWithOptionsOffersFunctionOptions(t *testing.T) {
	src := []byte("{$price :number minimum=2}")
	msg, pd, _ := parser.Parse(src)
	require.Empty(t, pd)
	table, diags := Analyze(msg)
	require.Empty(t, diags)

	reg := fakeRegistry{"number": {"minimumFractionDigits", "maximumFractionDigits"}}
	idx := indexOf(src, "minimum")
	got := CompletionWithOptions(msg, table, reg, idx, "minimum")
	assert.Equal(t, []string{"minimumFractionDigits"}, got)
}

func TestCompletionWithOptionsFallsBackOutsideOptionPosition(t *testing.T) {
	src := []byte(".input {$name} {{hi {$name}}}")
	msg, pd, _ := parser.Parse(src)
	require.Empty(t, pd)
	table, diags := Analyze(msg)
	require.Empty(t, diags)

	name, _ := table.Lookup("name")
	reg := fakeRegistry{}
	got := CompletionWithOptions(msg, table, reg, name.Usages[0].Start+1, "")
	assert.Equal(t, []string{"name"}, got)
}
