package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Compose is the composition primitive: it interleaves the template's literal
// segments and interpolated values positionally into a Fragment. Values are
// not evaluated here; serialization happens when the fragment is rendered, so
// interpolated functions run lazily. The input template is never mutated.
func Compose(t Template) Fragment {
	nodes := make([]node, 0, len(t.Text)+len(t.Values))
	for i, s := range t.Text {
		if s != "" {
			nodes = append(nodes, litNode(s))
		}
		if i < len(t.Values) {
			nodes = append(nodes, valNode{t.Values[i]})
		}
	}
	// Values past the last literal segment still serialize, in order.
	for i := len(t.Text); i < len(t.Values); i++ {
		nodes = append(nodes, valNode{t.Values[i]})
	}
	return Fragment{nodes: nodes}
}

// MediaQuery captures a media-query condition and returns a Tag that wraps
// rule templates in an @media block:
//
//	medium := css.MediaQuery(css.Lit("(min-width: 48em)"))
//	frag := medium(css.Lit("width: auto;"))
//	// frag.String() == "@media (min-width: 48em) { width: auto; }"
//
// The returned Tag closes over its own composed condition: every invocation
// nests its rules under the same unchanged condition, and tags produced by
// separate MediaQuery calls share no state.
func MediaQuery(cond Template) Tag {
	condFrag := Compose(cond)
	return func(rules Template) Fragment {
		return Fragment{nodes: []node{
			litNode("@media "),
			normNode{condFrag},
			litNode(" { "),
			normNode{Compose(rules)},
			litNode(" }"),
		}}
	}
}

// appendValue serializes one interpolated value. Strings pass through,
// numbers format without exponent, fragments nest, niladic functions are
// invoked and their result recursed, slices serialize element by element.
func appendValue(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
	case string:
		b.WriteString(t)
	case Fragment:
		t.appendTo(b)
	case Template:
		Compose(t).appendTo(b)
	case func() any:
		appendValue(b, t())
	case []any:
		for _, e := range t {
			appendValue(b, e)
		}
	case int:
		b.WriteString(strconv.Itoa(t))
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case uint:
		b.WriteString(strconv.FormatUint(uint64(t), 10))
	case uint64:
		b.WriteString(strconv.FormatUint(t, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case float32:
		b.WriteString(strconv.FormatFloat(float64(t), 'f', -1, 32))
	case fmt.Stringer:
		b.WriteString(t.String())
	default:
		fmt.Fprint(b, v)
	}
}
