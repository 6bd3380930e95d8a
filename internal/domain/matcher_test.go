package domain

import (
	"regexp/syntax"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

func TestLiteralMatcher(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		text     string
		want     m.Span
		wantOK   bool
	}{
		{"single hit", []string{"foo"}, "a foo b", m.Span{Start: 2, End: 5}, true},
		{"first occurrence of a pattern", []string{"o"}, "foo", m.Span{Start: 1, End: 2}, true},
		{"declaration order beats position", []string{"A", "B"}, "xByA", m.Span{Start: 3, End: 4}, true},
		{"falls through to later pattern", []string{"zzz", "B"}, "xByA", m.Span{Start: 1, End: 2}, true},
		{"no hit", []string{"q"}, "xByA", m.Span{}, false},
		{"no patterns", nil, "anything", m.Span{}, false},
		{"multi-byte text uses byte offsets", []string{"é"}, "café", m.Span{Start: 3, End: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewLiteralMatcher(tt.patterns).Match(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegexMatcher(t *testing.T) {
	t.Run("declaration order beats position", func(t *testing.T) {
		matcher, problems := NewRegexMatcher([]string{"A+", "B"})
		require.Empty(t, problems)

		got, ok := matcher.Match("xByAA")
		require.True(t, ok)
		assert.Equal(t, m.Span{Start: 3, End: 5}, got)
	})

	t.Run("leftmost match of a regex", func(t *testing.T) {
		matcher, _ := NewRegexMatcher([]string{`\d+`})

		got, ok := matcher.Match("a12b345")
		require.True(t, ok)
		assert.Equal(t, m.Span{Start: 1, End: 3}, got)
	})

	t.Run("invalid regex is reported and skipped", func(t *testing.T) {
		matcher, problems := NewRegexMatcher([]string{"(", "a.*"})
		require.Len(t, problems, 1)

		var patternErr *PatternError
		require.ErrorAs(t, problems[0], &patternErr)
		assert.Equal(t, "(", patternErr.Pattern)

		var syntaxErr *syntax.Error
		assert.ErrorAs(t, problems[0], &syntaxErr)

		got, ok := matcher.Match("cab")
		require.True(t, ok)
		assert.Equal(t, m.Span{Start: 1, End: 3}, got)
	})

	t.Run("all invalid matches nothing", func(t *testing.T) {
		matcher, problems := NewRegexMatcher([]string{"(", "[z-a]"})
		assert.Len(t, problems, 2)

		_, ok := matcher.Match("anything")
		assert.False(t, ok)
	})

	t.Run("empty match is a hit", func(t *testing.T) {
		matcher, _ := NewRegexMatcher([]string{"x*"})

		got, ok := matcher.Match("abc")
		require.True(t, ok)
		assert.Equal(t, m.Span{Start: 0, End: 0}, got)
	})
}

func TestNewMatcher(t *testing.T) {
	cfg := m.SearchConfig{Patterns: []string{"lit"}, RegexPatterns: []string{"l.t"}}

	literal, problems := NewMatcher(cfg)
	assert.Empty(t, problems)
	_, ok := literal.Match("lot")
	assert.False(t, ok)

	cfg.UseRegex = true
	regex, problems := NewMatcher(cfg)
	assert.Empty(t, problems)
	_, ok = regex.Match("lot")
	assert.True(t, ok)
}
