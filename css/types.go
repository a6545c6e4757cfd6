// Package css composes CSS fragments from template parts.
//
// A Template is the structured equivalent of a tagged template invocation:
// literal text segments with interpolated values between them. Compose turns
// a Template into an opaque Fragment; MediaQuery wraps composed rules in an
// @media block. Fragments nest, serialize deterministically, and are
// immutable once built.
package css

import (
	"io"
	"strings"
)

// Template holds one tagged-template invocation split into literal segments
// and the interpolated values between them. A well-formed template has
// len(Text) == len(Values)+1, but the serializer is lenient: missing trailing
// segments are treated as empty and surplus segments are emitted in order.
type Template struct {
	Text   []string // literal segments, in source order
	Values []any    // interpolations, Values[i] sits between Text[i] and Text[i+1]
}

// Tpl builds a Template from literal segments and interpolated values.
func Tpl(text []string, values ...any) Template {
	return Template{Text: text, Values: values}
}

// Lit builds a Template consisting of a single literal segment.
func Lit(s string) Template {
	return Template{Text: []string{s}}
}

// Tag is a composition function returned by MediaQuery: it accepts the rule
// template and yields the finished fragment.
type Tag func(rules Template) Fragment

// Fragment is an opaque, order-preserving unit of composed CSS. It is safe to
// interpolate a Fragment into another Template; nesting is resolved at
// serialization time.
type Fragment struct {
	nodes []node
}

// node is a single serializable piece of a fragment.
type node interface {
	appendTo(b *strings.Builder)
}

// litNode is literal text emitted verbatim.
type litNode string

func (n litNode) appendTo(b *strings.Builder) {
	b.WriteString(string(n))
}

// valNode is an interpolated value, serialized per appendValue rules.
type valNode struct {
	v any
}

func (n valNode) appendTo(b *strings.Builder) {
	appendValue(b, n.v)
}

// normNode serializes a nested fragment with whitespace normalization
// applied to the rendered text.
type normNode struct {
	f Fragment
}

func (n normNode) appendTo(b *strings.Builder) {
	b.WriteString(normalizeWhitespace(n.f.String()))
}

func (f Fragment) appendTo(b *strings.Builder) {
	for _, n := range f.nodes {
		n.appendTo(b)
	}
}

// String returns the serialized CSS text of the fragment.
func (f Fragment) String() string {
	var b strings.Builder
	f.appendTo(&b)
	return b.String()
}

// WriteTo writes the serialized fragment to w, implementing io.WriterTo.
func (f Fragment) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}
