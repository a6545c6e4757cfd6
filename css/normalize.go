package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// normalizeWhitespace retokenizes rendered CSS text and rebuilds it with runs
// of whitespace collapsed to a single space and no leading or trailing
// whitespace. Comments count as separators. Quoted strings are single tokens
// to the lexer, so their contents pass through untouched. The same input
// always yields the same output, which is what makes nested fragment
// serialization deterministic.
func normalizeWhitespace(s string) string {
	l := css.NewLexer(parse.NewInputString(s))

	var b strings.Builder
	b.Grow(len(s))

	pending := false // a separator was seen since the last emitted token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			// EOF or an unterminated construct; either way emit what we have
			return b.String()
		case css.WhitespaceToken, css.CommentToken:
			pending = true
		default:
			if pending && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pending = false
			b.Write(data)
		}
	}
}
