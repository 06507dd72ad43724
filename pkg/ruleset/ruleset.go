package ruleset

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/dmitrymomot/uadetector/pkg/logger"
	"github.com/dmitrymomot/uadetector/pkg/pattern"
)

// Option configures a Set.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger used to report pre-filter hits that no rule
// confirms. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Definition is a raw rule: a fragment and its category payload.
type Definition[T any] struct {
	Regex  string
	Result T
}

// Rule is a compiled rule definition.
type Rule[T any] struct {
	Pattern *pattern.Pattern
	Result  T
}

// Set is an ordered, immutable collection of rules with a combined pre-filter.
type Set[T any] struct {
	name     string
	rules    []Rule[T]
	combined *pattern.Pattern
	log      *slog.Logger
}

// New compiles the definitions in order. Any fragment that fails to compile
// aborts construction; a partially built set is never returned.
func New[T any](name string, defs []Definition[T], opts ...Option) (*Set[T], error) {
	o := options{log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	rules := make([]Rule[T], 0, len(defs))
	fragments := make([]string, 0, len(defs))

	for i, def := range defs {
		p, err := pattern.Compile(def.Regex)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %s rule #%d", ErrInvalidRule, name, i), err)
		}
		rules = append(rules, Rule[T]{Pattern: p, Result: def.Result})
		fragments = append(fragments, def.Regex)
	}

	combined, err := pattern.Combine(fragments)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s combined pattern", ErrInvalidRule, name), err)
	}

	// A combined pattern on regexp2 gates rules on the same engine.
	if combined.Extended() {
		for i := range rules {
			if rules[i].Pattern.Extended() {
				continue
			}
			p, err := pattern.CompileExtended(defs[i].Regex)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("%w: %s rule #%d", ErrInvalidRule, name, i), err)
			}
			rules[i].Pattern = p
		}
	}

	return &Set[T]{name: name, rules: rules, combined: combined, log: o.log}, nil
}

// Name returns the category name the set was built for.
func (s *Set[T]) Name() string { return s.name }

// Len returns the number of rules.
func (s *Set[T]) Len() int { return len(s.rules) }

// Rules iterates the rules in declaration order.
func (s *Set[T]) Rules() iter.Seq2[int, Rule[T]] {
	return func(yield func(int, Rule[T]) bool) {
		for i, r := range s.rules {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Logger returns the logger the set was built with.
func (s *Set[T]) Logger() *slog.Logger { return s.log }

// Combined returns the category's combined pre-filter (nil for an empty set).
func (s *Set[T]) Combined() *pattern.Pattern { return s.combined }

// Prefilter reports whether any rule of the set could match ua.
func (s *Set[T]) Prefilter(ua string) bool {
	return s.combined.MatchString(ua)
}

// Match returns the first rule, in declaration order, matching ua together
// with its capture groups.
func (s *Set[T]) Match(ua string) (Rule[T], pattern.Groups, bool) {
	if !s.Prefilter(ua) {
		return Rule[T]{}, nil, false
	}
	rule, groups, ok := s.Scan(ua)
	if !ok {
		s.log.Debug("combined pattern matched but no rule did",
			logger.Category(s.name), logger.UserAgent(ua))
	}
	return rule, groups, ok
}

// Scan evaluates the rules in order without consulting the pre-filter.
func (s *Set[T]) Scan(ua string) (Rule[T], pattern.Groups, bool) {
	for _, r := range s.rules {
		if groups, ok := r.Pattern.FindGroups(ua); ok {
			return r, groups, true
		}
	}
	return Rule[T]{}, nil, false
}
