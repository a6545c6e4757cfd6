// Package media builds named media-query helpers on top of the css package:
// conditions are validated with a CSS tokenizer, then turned into css.Tag
// wrappers collected in an ordered Set.
package media

import (
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	cssscan "github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"

	"github.com/JohnAlbin/styled-media-queries/css"
)

// knownMediaTypes are the media types defined by Media Queries Level 4
// (plus the ones deprecated there but still common in the wild).
var knownMediaTypes = map[string]bool{
	"all":        true,
	"screen":     true,
	"print":      true,
	"speech":     true,
	"tty":        true,
	"tv":         true,
	"projection": true,
	"handheld":   true,
	"braille":    true,
	"embossed":   true,
	"aural":      true,
}

// conditionKeywords are idents with combinator meaning inside a query.
var conditionKeywords = map[string]bool{
	"and":  true,
	"or":   true,
	"not":  true,
	"only": true,
}

// Condition is a media-query condition expression, the part that follows
// "@media". It keeps the original template so interpolations stay lazy.
type Condition struct {
	tpl css.Template
}

// ParseCondition validates s as a media-query condition and returns it as a
// Condition. Validation is structural only: the text must be non-empty,
// parentheses must balance, and tokens that cannot appear in a condition
// ({, }, ;) are rejected. All findings are aggregated into one error.
// Feature names and values are not checked, matching the pass-through error
// contract of the composition layer.
func ParseCondition(s string) (Condition, error) {
	if err := validateCondition(s); err != nil {
		return Condition{}, err
	}
	return Condition{tpl: css.Lit(strings.TrimSpace(s))}, nil
}

// FromTemplate wraps an interpolated template as a Condition, validating its
// serialized form.
func FromTemplate(tpl css.Template) (Condition, error) {
	if err := validateCondition(css.Compose(tpl).String()); err != nil {
		return Condition{}, err
	}
	return Condition{tpl: tpl}, nil
}

// MinWidth returns a "(min-width: <v><unit>)" condition.
func MinWidth(v float64, unit string) Condition {
	return Condition{tpl: css.Tpl([]string{"(min-width: ", unit + ")"}, v)}
}

// MaxWidth returns a "(max-width: <v><unit>)" condition.
func MaxWidth(v float64, unit string) Condition {
	return Condition{tpl: css.Tpl([]string{"(max-width: ", unit + ")"}, v)}
}

// Between returns a condition matching widths from min to max inclusive.
func Between(min, max float64, unit string) Condition {
	return Condition{tpl: css.Tpl(
		[]string{"(min-width: ", unit + ") and (max-width: ", unit + ")"},
		min, max,
	)}
}

// Template returns the condition's template parts.
func (c Condition) Template() css.Template {
	return c.tpl
}

// String returns the serialized condition text.
func (c Condition) String() string {
	return css.Compose(c.tpl).String()
}

// Tag returns the media-query wrapper for this condition.
func (c Condition) Tag() css.Tag {
	return css.MediaQuery(c.tpl)
}

// validateCondition tokenizes s and aggregates every structural problem.
func validateCondition(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("empty media query condition")
	}

	l := cssscan.NewLexer(parse.NewInputString(s))

	var err error
	depth := 0
	for {
		tt, data := l.Next()
		switch tt {
		case cssscan.ErrorToken:
			if depth > 0 {
				err = multierr.Append(err, fmt.Errorf("unbalanced parentheses in %q", s))
			}
			if err != nil {
				return fmt.Errorf("invalid media query condition: %w", err)
			}
			return nil
		case cssscan.LeftParenthesisToken, cssscan.FunctionToken:
			depth++
		case cssscan.RightParenthesisToken:
			depth--
			if depth < 0 {
				err = multierr.Append(err, fmt.Errorf("unexpected %q in %q", ")", s))
				depth = 0
			}
		case cssscan.LeftBraceToken, cssscan.RightBraceToken, cssscan.SemicolonToken:
			err = multierr.Append(err, fmt.Errorf("unexpected %q in %q", string(data), s))
		case cssscan.BadStringToken, cssscan.BadURLToken:
			err = multierr.Append(err, fmt.Errorf("malformed token %q in %q", string(data), s))
		}
	}
}

// unknownMediaTypes returns idents used in media-type position that are not
// recognized media types. Unknown types are legal (the query just never
// matches) so callers only warn about them.
func unknownMediaTypes(s string) []string {
	l := cssscan.NewLexer(parse.NewInputString(s))

	var unknown []string
	depth := 0
	for {
		tt, data := l.Next()
		switch tt {
		case cssscan.ErrorToken:
			return unknown
		case cssscan.LeftParenthesisToken, cssscan.FunctionToken:
			depth++
		case cssscan.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		case cssscan.IdentToken:
			if depth > 0 {
				continue
			}
			name := strings.ToLower(string(data))
			if !conditionKeywords[name] && !knownMediaTypes[name] {
				unknown = append(unknown, name)
			}
		}
	}
}
