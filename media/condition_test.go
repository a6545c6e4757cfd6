package media_test

import (
	"strings"
	"testing"

	"github.com/JohnAlbin/styled-media-queries/css"
	"github.com/JohnAlbin/styled-media-queries/media"
)

func TestParseCondition_Valid(t *testing.T) {
	tests := []string{
		"(min-width: 48em)",
		"(max-width: 47.9375em)",
		"print",
		"screen and (min-width: 768px)",
		"not screen and (color)",
		"(min-width: 30em) and (max-width: 50em)",
		"only screen and (orientation: landscape)",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			cond, err := media.ParseCondition(raw)
			if err != nil {
				t.Fatalf("ParseCondition(%q) error = %v", raw, err)
			}
			if cond.String() != raw {
				t.Errorf("String() = %q, want %q", cond.String(), raw)
			}
		})
	}
}

func TestParseCondition_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"unbalanced open", "(min-width: 48em"},
		{"unbalanced close", "min-width: 48em)"},
		{"stray brace", "screen { color: red; }"},
		{"stray semicolon", "print;"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := media.ParseCondition(tc.raw); err == nil {
				t.Errorf("ParseCondition(%q) accepted invalid condition", tc.raw)
			}
		})
	}
}

func TestParseCondition_AggregatesErrors(t *testing.T) {
	_, err := media.ParseCondition("screen; { (")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, ";") || !strings.Contains(msg, "{") {
		t.Errorf("error %q does not mention every problem", msg)
	}
}

func TestConditionBuilders(t *testing.T) {
	tests := []struct {
		name string
		cond media.Condition
		want string
	}{
		{"min", media.MinWidth(48, "em"), "(min-width: 48em)"},
		{"max", media.MaxWidth(47.9375, "em"), "(max-width: 47.9375em)"},
		{"px", media.MinWidth(768, "px"), "(min-width: 768px)"},
		{"between", media.Between(30, 50, "em"), "(min-width: 30em) and (max-width: 50em)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cond.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCondition_Tag(t *testing.T) {
	cond, err := media.ParseCondition("(min-width: 48em)")
	if err != nil {
		t.Fatalf("ParseCondition error = %v", err)
	}

	got := cond.Tag()(css.Lit("width: 50%;")).String()
	want := "@media (min-width: 48em) { width: 50%; }"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromTemplate(t *testing.T) {
	cond, err := media.FromTemplate(css.Tpl([]string{"(min-width: ", "em)"}, 48))
	if err != nil {
		t.Fatalf("FromTemplate error = %v", err)
	}
	if cond.String() != "(min-width: 48em)" {
		t.Errorf("String() = %q", cond.String())
	}

	if _, err := media.FromTemplate(css.Tpl([]string{"(min-width: ", "em"}, 48)); err == nil {
		t.Error("FromTemplate accepted unbalanced condition")
	}
}
