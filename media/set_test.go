package media_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/JohnAlbin/styled-media-queries/config"
	"github.com/JohnAlbin/styled-media-queries/css"
	"github.com/JohnAlbin/styled-media-queries/media"
)

func TestSet_DefineAndLookup(t *testing.T) {
	s := media.NewSet(zap.NewNop())

	if err := s.Define("medium", media.MinWidth(48, "em")); err != nil {
		t.Fatalf("Define(medium) error = %v", err)
	}
	if err := s.DefineCondition("wide", "(min-width: 75em)"); err != nil {
		t.Fatalf("DefineCondition(wide) error = %v", err)
	}

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if names := s.Names(); names[0] != "medium" || names[1] != "wide" {
		t.Errorf("Names() = %v, want definition order", names)
	}

	tag, ok := s.Tag("medium")
	if !ok {
		t.Fatal("Tag(medium) not found")
	}
	got := tag(css.Lit("width: 50%;")).String()
	want := "@media (min-width: 48em) { width: 50%; }"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, ok := s.Tag("huge"); ok {
		t.Error("Tag(huge) found undefined helper")
	}

	cond, ok := s.Condition("wide")
	if !ok || cond.String() != "(min-width: 75em)" {
		t.Errorf("Condition(wide) = %q, %v", cond.String(), ok)
	}
}

func TestSet_DefineErrors(t *testing.T) {
	s := media.NewSet(nil)

	if err := s.Define("", media.MinWidth(48, "em")); err == nil {
		t.Error("Define accepted empty name")
	}

	if err := s.Define("medium", media.MinWidth(48, "em")); err != nil {
		t.Fatalf("Define(medium) error = %v", err)
	}
	if err := s.Define("medium", media.MinWidth(64, "em")); err == nil {
		t.Error("Define accepted duplicate name")
	}

	if err := s.DefineCondition("broken", "(min-width: 48em"); err == nil {
		t.Error("DefineCondition accepted unbalanced condition")
	}
}

func TestSet_TagsMappingIsCopy(t *testing.T) {
	s := media.NewSet(nil)
	if err := s.DefineCondition("print", "print"); err != nil {
		t.Fatalf("DefineCondition error = %v", err)
	}

	tags := s.Tags()
	delete(tags, "print")

	if _, ok := s.Tag("print"); !ok {
		t.Error("mutating Tags() result affected the set")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		Version: 1,
		Breakpoints: []config.BreakpointConfig{
			{Name: "small", Condition: "(max-width: 47.9375em)"},
			{Name: "medium", Condition: "(min-width: 48em)"},
		},
	}

	s, err := media.FromConfig(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("FromConfig error = %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	tag, _ := s.Tag("small")
	got := tag(css.Lit("width: auto;")).String()
	want := "@media (max-width: 47.9375em) { width: auto; }"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromConfig_ReportsAllFailures(t *testing.T) {
	cfg := &config.Config{
		Version: 1,
		Breakpoints: []config.BreakpointConfig{
			{Name: "a", Condition: "(min-width: 48em"},
			{Name: "b", Condition: ""},
			{Name: "c", Condition: "(min-width: 75em)"},
		},
	}

	_, err := media.FromConfig(cfg, nil)
	if err == nil {
		t.Fatal("FromConfig accepted invalid breakpoints")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"a"`) || !strings.Contains(msg, `"b"`) {
		t.Errorf("error %q does not mention every bad breakpoint", msg)
	}
}

func TestFromConfig_DefaultConfiguration(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration error = %v", err)
	}

	s, err := media.FromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("FromConfig error = %v", err)
	}

	// Every shipped default must produce a working helper.
	for _, name := range s.Names() {
		tag, ok := s.Tag(name)
		if !ok {
			t.Fatalf("Tag(%s) not found", name)
		}
		frag := tag(css.Lit("width: auto;")).String()
		if !strings.HasPrefix(frag, "@media ") || !strings.HasSuffix(frag, "{ width: auto; }") {
			t.Errorf("default %q rendered %q", name, frag)
		}
	}
}
