//go:build ignore

// This program generates tuples_gen.go and tuples_gen_test.go from the
// templates below. Run it with go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const (
	minArity = 2
	maxArity = 11
)

var (
	typeParams = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}

	ordinals = []string{
		"first", "second", "third", "fourth", "fifth", "sixth",
		"seventh", "eighth", "ninth", "tenth", "eleventh",
	}

	shapes = map[int]string{
		2:  "pair",
		3:  "triple",
		4:  "quadruple",
		5:  "quintuple",
		6:  "sextuple",
		7:  "septuple",
		8:  "octuple",
		9:  "nonuple",
		10: "decuple",
		11: "undecuple",
	}
)

// sample is the value the generated tests put in one field position.
type sample struct {
	Type        string
	Value       string
	Replacement string
	Display     string
}

var samples = []sample{
	{"string", `"one"`, `"uno"`, "one"},
	{"int", "2", "20", "2"},
	{"bool", "true", "false", "true"},
	{"float64", "4.5", "40.5", "4.5"},
	{"rune", "'e'", "'E'", "101"},
	{"[]int", "[]int{6}", "[]int{6, 6}", "[6]"},
	{"uint8", "uint8(7)", "uint8(70)", "7"},
	{"map[string]int", `map[string]int{"eight": 8}`, `map[string]int{"eight": 80}`, "map[eight:8]"},
	{"int64", "int64(9)", "int64(90)", "9"},
	{"[2]string", `[2]string{"t", "en"}`, `[2]string{"T", "EN"}`, "[t en]"},
	{"label", `label{Name: "eleven"}`, `label{Name: "ELEVEN"}`, "{eleven}"},
}

type field struct {
	Index  int
	Name   string
	Method string
	Type   string
	Sample sample
}

type arity struct {
	N      int
	Shape  string
	Fields []field
}

func (a arity) Name() string { return fmt.Sprintf("Tuple%d", a.N) }

func (a arity) join(sep string, fn func(f field) string) string {
	parts := make([]string, len(a.Fields))
	for i, f := range a.Fields {
		parts[i] = fn(f)
	}

	return strings.Join(parts, sep)
}

func (a arity) TypeParams() string {
	return a.join(", ", func(f field) string { return f.Type })
}

func (a arity) Decl() string {
	return a.join(", ", func(f field) string { return f.Type + " any" })
}

func (a arity) Generic() string {
	return a.Name() + "[" + a.TypeParams() + "]"
}

func (a arity) Params() string {
	return a.join(", ", func(f field) string { return f.Name + " " + f.Type })
}

func (a arity) Args() string {
	return a.join(", ", func(f field) string { return f.Name })
}

func (a arity) Receiver() string {
	return a.join(", ", func(f field) string { return "t." + f.Name })
}

func (a arity) SampleTypes() string {
	return a.join(", ", func(f field) string { return f.Sample.Type })
}

func (a arity) SampleValues() string {
	return a.join(", ", func(f field) string { return f.Sample.Value })
}

func (a arity) SampleDisplay() string {
	return "[" + a.join(", ", func(f field) string { return f.Sample.Display }) + "]"
}

func arities() []arity {
	out := make([]arity, 0, maxArity-minArity+1)

	for n := minArity; n <= maxArity; n++ {
		a := arity{N: n, Shape: shapes[n]}

		for i := range n {
			a.Fields = append(a.Fields, field{
				Index:  i,
				Name:   ordinals[i],
				Method: strings.ToUpper(ordinals[i][:1]) + ordinals[i][1:],
				Type:   typeParams[i],
				Sample: samples[i],
			})
		}

		out = append(out, a)
	}

	return out
}

const sourceTemplate = `// Code generated by generate.go; DO NOT EDIT.

package tuple

import (
	"hash"

	"github.com/amp-labs/amp-tuple/compare"
	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/hashing"
)
{{range .}}
// New{{.Name}} returns a {{.Name}} holding the given values in order.
func New{{.Name}}[{{.TypeParams}} any]({{.Params}}) {{.Generic}} {
	return {{.Generic}}{
{{- range .Fields}}
		{{.Name}}: {{.Name}},
{{- end}}
	}
}

// FromSlice{{.N}} builds a {{.Name}} from exactly {{.N}} items, assigned to the
// fields in order. It fails with ErrInvalidArity when the length differs and
// with errors.ErrWrongType when an item does not fit its field; no tuple is
// built in either case.
func FromSlice{{.N}}[{{.TypeParams}} any](items []any) ({{.Generic}}, error) {
	if err := checkArity({{.N}}, items); err != nil {
		return {{.Generic}}{}, err
	}

	var errs errors.Collection
{{range .Fields}}
	{{.Name}}, err := itemAt[{{.Type}}](items, {{.Index}})
	errs.Add(err)
{{end}}
	if errs.HasError() {
		return {{.Generic}}{}, errs.GetError()
	}

	return New{{.Name}}({{.Args}}), nil
}

// FromArray{{.N}} is FromSlice{{.N}} for a fixed-size array.
func FromArray{{.N}}[{{.TypeParams}} any](items [{{.N}}]any) ({{.Generic}}, error) {
	return FromSlice{{.N}}[{{.TypeParams}}](items[:])
}

// {{.Name}} is an immutable {{.Shape}} of values.
type {{.Name}}[{{.Decl}}] struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}
{{$t := .}}{{range .Fields}}
func (t {{$t.Generic}}) {{.Method}}() {{.Type}} { //nolint:ireturn
	return t.{{.Name}}
}
{{end}}{{range .Fields}}
// With{{.Method}} returns a copy of t with the {{.Name}} value replaced.
func (t {{$t.Generic}}) With{{.Method}}({{.Name}} {{.Type}}) {{$t.Generic}} {
	t.{{.Name}} = {{.Name}}

	return t
}
{{end}}
// Values returns all {{.N}} values in order.
func (t {{.Generic}}) Values() ({{.TypeParams}}) { //nolint:ireturn
	return {{.Receiver}}
}

// Len returns {{.N}}.
func (t {{.Generic}}) Len() int {
	return {{.N}}
}

// ToSlice returns the values in order as a new slice. The slice can be
// modified or appended to without affecting t.
func (t {{.Generic}}) ToSlice() []any {
	return []any{ {{- .Receiver -}} }
}

// ToArray returns the values in order as a fixed-size array.
func (t {{.Generic}}) ToArray() [{{.N}}]any {
	return [{{.N}}]any{ {{- .Receiver -}} }
}

// String renders the values as [v1, v2, ...] using their default formats.
func (t {{.Generic}}) String() string {
	return format({{.Receiver}})
}

// Equals reports whether every value of t equals the corresponding value of other.
func (t {{.Generic}}) Equals(other {{.Generic}}) bool {
	return {{range $i, $f := .Fields}}{{if $i}} &&
		{{end}}compare.Values(t.{{$f.Name}}, other.{{$f.Name}}){{end}}
}

// HashCode combines the hash codes of all values, in order.
func (t {{.Generic}}) HashCode() uint64 {
	return hashing.Combine(
{{- range .Fields}}
		hashing.Code(t.{{.Name}}),
{{- end}}
	)
}

// UpdateHash implements hashing.Hashable.
func (t {{.Generic}}) UpdateHash(h hash.Hash) error {
	return updateHash(h, {{.Receiver}})
}

func (t {{.Generic}}) equalsTuple(other Tuple) bool {
	o, ok := other.({{.Generic}})

	return ok && t.Equals(o)
}
{{end}}`

const testTemplate = `// Code generated by generate.go; DO NOT EDIT.

package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)
{{range .}}
func Test{{.Name}}(t *testing.T) {
	t.Parallel()

	tup := New{{.Name}}({{.SampleValues}})

	t.Run("getters", func(t *testing.T) {
		t.Parallel()
{{range .Fields}}
		assert.Equal(t, {{.Sample.Value}}, tup.{{.Method}}())
{{- end}}
		assert.Equal(t, {{.N}}, tup.Len())
	})

	t.Run("values", func(t *testing.T) {
		t.Parallel()

		{{.Args}} := tup.Values()
		assert.Equal(t, []any{ {{- .Args -}} }, tup.ToSlice())
	})

	t.Run("with", func(t *testing.T) {
		t.Parallel()
{{$t := .}}{{range .Fields}}
		t.Run("{{.Name}}", func(t *testing.T) {
			t.Parallel()

			changed := tup.With{{.Method}}({{.Sample.Replacement}})
			expected := tup.ToSlice()
			expected[{{.Index}}] = {{.Sample.Replacement}}
			assert.Equal(t, expected, changed.ToSlice())
			assert.False(t, changed.Equals(tup))
			assert.False(t, tup.Equals(changed))
			assert.Equal(t, []any{ {{- $t.SampleValues -}} }, tup.ToSlice())
		})
{{end}}	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		fromSlice, err := FromSlice{{.N}}[{{.SampleTypes}}](tup.ToSlice())
		require.NoError(t, err)
		assert.True(t, fromSlice.Equals(tup))
		assert.Equal(t, tup.HashCode(), fromSlice.HashCode())

		fromArray, err := FromArray{{.N}}[{{.SampleTypes}}](tup.ToArray())
		require.NoError(t, err)
		assert.True(t, fromArray.Equals(tup))
	})

	t.Run("invalid arity", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, {{.N}} - 1, {{.N}} + 1} {
			_, err := FromSlice{{.N}}[{{.SampleTypes}}](make([]any, n))
			require.ErrorIs(t, err, ErrInvalidArity)
		}
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "{{.SampleDisplay}}", tup.String())
	})
}
{{end}}`

func render(name, text string, data []arity) {
	var buf bytes.Buffer

	tmpl := template.Must(template.New(name).Parse(text))
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("executing %s: %v", name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("formatting %s: %v\n%s", name, err, buf.Bytes())
	}

	if err := os.WriteFile(name, src, 0o644); err != nil { //nolint:gosec
		log.Fatalf("writing %s: %v", name, err)
	}
}

func main() {
	data := arities()

	render("tuples_gen.go", sourceTemplate, data)
	render("tuples_gen_test.go", testTemplate, data)
}
