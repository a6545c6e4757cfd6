package media

import (
	"fmt"
	"maps"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/JohnAlbin/styled-media-queries/config"
	"github.com/JohnAlbin/styled-media-queries/css"
)

// Set is an ordered collection of named media-query helpers. It is meant to
// be built once at program start and read afterwards; Define is not safe for
// concurrent use, the lookup methods are.
type Set struct {
	log   *zap.Logger
	names []string
	conds map[string]Condition
	tags  map[string]css.Tag
}

// NewSet creates an empty helper set.
func NewSet(log *zap.Logger) *Set {
	if log == nil {
		log = zap.NewNop()
	}
	return &Set{
		log:   log.Named("media"),
		conds: make(map[string]Condition),
		tags:  make(map[string]css.Tag),
	}
}

// Define registers a named helper for the given condition. Names must be
// non-empty and unique within the set. Unknown media types in the condition
// are logged, not rejected.
func (s *Set) Define(name string, cond Condition) error {
	if name == "" {
		return fmt.Errorf("breakpoint name cannot be empty")
	}
	if _, exists := s.conds[name]; exists {
		return fmt.Errorf("duplicate breakpoint %q", name)
	}

	raw := cond.String()
	for _, mt := range unknownMediaTypes(raw) {
		s.log.Debug("Unknown media type in condition", zap.String("breakpoint", name), zap.String("type", mt))
	}

	s.names = append(s.names, name)
	s.conds[name] = cond
	s.tags[name] = cond.Tag()
	s.log.Debug("Defined breakpoint", zap.String("name", name), zap.String("condition", raw))
	return nil
}

// DefineCondition parses raw as a condition and registers it under name.
func (s *Set) DefineCondition(name, raw string) error {
	cond, err := ParseCondition(raw)
	if err != nil {
		return fmt.Errorf("breakpoint %q: %w", name, err)
	}
	return s.Define(name, cond)
}

// Tag returns the helper registered under name.
func (s *Set) Tag(name string) (css.Tag, bool) {
	tag, ok := s.tags[name]
	return tag, ok
}

// Condition returns the condition registered under name.
func (s *Set) Condition(name string) (Condition, bool) {
	cond, ok := s.conds[name]
	return cond, ok
}

// Tags returns the name-to-helper mapping as a copy, the form application
// code typically builds once at module load.
func (s *Set) Tags() map[string]css.Tag {
	return maps.Clone(s.tags)
}

// Names returns breakpoint names in definition order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of defined helpers.
func (s *Set) Len() int {
	return len(s.names)
}

// FromConfig builds a helper set from configured breakpoints. Every
// breakpoint is validated; all failures are reported together.
func FromConfig(cfg *config.Config, log *zap.Logger) (*Set, error) {
	s := NewSet(log)

	var errs error
	for _, bp := range cfg.Breakpoints {
		if err := s.DefineCondition(bp.Name, bp.Condition); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid breakpoint configuration: %w", errs)
	}
	return s, nil
}
