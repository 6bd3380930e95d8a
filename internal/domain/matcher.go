// Package domain contains the search core: pattern matching, tree
// filtering, per-file search and result formatting.
package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "rsearch.dev/pkg/rsearch/internal/model"
)

// Matcher finds the first pattern hit in a subject string (a line or a path).
type Matcher interface {
	// Match returns the span of the first pattern, in declaration order,
	// that occurs in text.
	Match(text string) (m.Span, bool)
}

// PatternError reports a regular expression that could not be compiled.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("failed to compile regex %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

type literalMatcher struct {
	patterns []string
}

// NewLiteralMatcher matches plain substrings.
func NewLiteralMatcher(patterns []string) Matcher {
	return &literalMatcher{patterns: patterns}
}

func (lm *literalMatcher) Match(text string) (m.Span, bool) {
	for _, pattern := range lm.patterns {
		if start := strings.Index(text, pattern); start >= 0 {
			return m.Span{Start: start, End: start + len(pattern)}, true
		}
	}

	return m.Span{}, false
}

type regexMatcher struct {
	regexes []*regexp.Regexp
}

// NewRegexMatcher compiles patterns once. Patterns that fail to compile are
// left out and reported as *PatternError values; the remaining ones still
// match.
func NewRegexMatcher(patterns []string) (Matcher, []error) {
	rm := &regexMatcher{regexes: make([]*regexp.Regexp, 0, len(patterns))}

	var problems []error

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			problems = append(problems, &PatternError{Pattern: pattern, Err: err})
			continue
		}

		rm.regexes = append(rm.regexes, re)
	}

	return rm, problems
}

func (rm *regexMatcher) Match(text string) (m.Span, bool) {
	for _, re := range rm.regexes {
		if loc := re.FindStringIndex(text); loc != nil {
			return m.Span{Start: loc[0], End: loc[1]}, true
		}
	}

	return m.Span{}, false
}

// NewMatcher builds the matcher selected by cfg.
func NewMatcher(cfg m.SearchConfig) (Matcher, []error) {
	if cfg.UseRegex {
		return NewRegexMatcher(cfg.RegexPatterns)
	}

	return NewLiteralMatcher(cfg.Patterns), nil
}
