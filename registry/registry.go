// Package registry describes the built-in MF2 functions (:number, :string,
// :date, :time, :integer) and their option shapes, compiled as JSON
// Schemas the same way the rest of the pack validates structured config:
// one compiled jsonschema.Schema per option, checked against an option's
// literal value (variable-valued options are not checked).
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// OptionSpec describes one recognized option of a built-in function.
type OptionSpec struct {
	Name   string
	Schema *jsonschema.Schema
}

// FunctionSpec describes one built-in function: its identifier (without
// the leading ":") and the options it recognizes.
type FunctionSpec struct {
	Name    string
	Options map[string]*OptionSpec
}

// OptionNames returns the function's option names, sorted, for stable
// completion and diagnostic output.
func (f *FunctionSpec) OptionNames() []string {
	names := make([]string, 0, len(f.Options))
	for n := range f.Options {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Registry is a lookup table of built-in functions by name.
type Registry struct {
	functions map[string]*FunctionSpec
}

// Lookup returns the FunctionSpec for a function identifier (without the leading
// ":"), or false if it isn't a recognized built-in.
func (r *Registry) Lookup(name string) (*FunctionSpec, bool) {
	f, ok := r.functions[name]
	return f, ok
}

// OptionNamesFor returns the option names known for a function identifier,
// satisfying scope.OptionNamer so the scope package's completion query can
// offer them without depending on this package's JSON-Schema machinery.
func (r *Registry) OptionNamesFor(function string) ([]string, bool) {
	spec, ok := r.functions[function]
	if !ok {
		return nil, false
	}
	return spec.OptionNames(), true
}

// FunctionNames returns every registered function's name, sorted.
func (r *Registry) FunctionNames() []string {
	names := make([]string, 0, len(r.functions))
	for n := range r.functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ValidateOptionValue checks value (already unmarshaled to a JSON-ish Go
// value: string, float64, bool, nil) against the option's compiled schema.
func (o *OptionSpec) ValidateOptionValue(value any) error {
	if o.Schema == nil {
		return nil
	}
	return o.Schema.Validate(value)
}

// mustCompile compiles an inline JSON Schema literal into a *jsonschema.Schema.
// Called only from package init with schemas this package itself wrote, so a
// compile failure is a programming error, not a runtime condition to recover
// from.
func mustCompile(name string, schema map[string]any) *jsonschema.Schema {
	raw, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("registry: marshal schema %s: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	url := "schema://" + name + ".json"
	if err := c.AddResource(url, strings.NewReader(string(raw))); err != nil {
		panic(fmt.Sprintf("registry: add schema %s: %v", name, err))
	}
	s, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("registry: compile schema %s: %v", name, err))
	}
	return s
}

func opt(fn, name string, schema map[string]any) *OptionSpec {
	return &OptionSpec{Name: name, Schema: mustCompile(fn+"."+name, schema)}
}

var styleEnum = map[string]any{
	"type": "string",
	"enum": []any{"full", "long", "medium", "short"},
}

var nonNegativeInt = map[string]any{
	"type":    "integer",
	"minimum": 0,
}

// Builtin builds and returns a new registry of MF2's default functions,
// compiling their option schemas on every call: :number, :integer,
// :string, :date, :time.
func Builtin() *Registry {
	return &Registry{functions: map[string]*FunctionSpec{
		"string": {
			Name:    "string",
			Options: map[string]*OptionSpec{},
		},
		"number": {
			Name: "number",
			Options: map[string]*OptionSpec{
				"minimumFractionDigits": opt("number", "minimumFractionDigits", nonNegativeInt),
				"maximumFractionDigits": opt("number", "maximumFractionDigits", nonNegativeInt),
				"minimumIntegerDigits":  opt("number", "minimumIntegerDigits", nonNegativeInt),
				"useGrouping": opt("number", "useGrouping", map[string]any{
					"type": "string",
					"enum": []any{"always", "auto", "min2", "false"},
				}),
				"signDisplay": opt("number", "signDisplay", map[string]any{
					"type": "string",
					"enum": []any{"auto", "always", "exceptZero", "negative", "never"},
				}),
			},
		},
		"integer": {
			Name: "integer",
			Options: map[string]*OptionSpec{
				"minimumIntegerDigits": opt("integer", "minimumIntegerDigits", nonNegativeInt),
				"useGrouping": opt("integer", "useGrouping", map[string]any{
					"type": "string",
					"enum": []any{"always", "auto", "min2", "false"},
				}),
			},
		},
		"date": {
			Name: "date",
			Options: map[string]*OptionSpec{
				"style": opt("date", "style", styleEnum),
			},
		},
		"time": {
			Name: "time",
			Options: map[string]*OptionSpec{
				"style": opt("time", "style", styleEnum),
			},
		},
	}}
}
