package domain

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adaptermocks "rsearch.dev/pkg/rsearch/internal/adapter/mocks"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

func TestOrchestrator_SearchContent(t *testing.T) {
	t.Run("one match per line in line order", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		fs.On("ReadFile", m.Path("/w/a.txt")).Return([]byte("foo foo\nnone\r\nbar foo\r\n"), nil)

		result, err := NewOrchestrator(fs).SearchContent(context.Background(), "/w/a.txt", NewLiteralMatcher([]string{"foo"}))
		require.NoError(t, err)

		assert.Equal(t, m.Path("/w/a.txt"), result.Path)
		assert.Equal(t, []m.LineMatch{
			{Line: "foo foo", Index: 0, Span: m.Span{Start: 0, End: 3}},
			{Line: "bar foo", Index: 2, Span: m.Span{Start: 4, End: 7}},
		}, result.Lines)
	})

	t.Run("final line without terminator", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		fs.On("ReadFile", m.Path("/w/a.txt")).Return([]byte("a\nfoo"), nil)

		result, err := NewOrchestrator(fs).SearchContent(context.Background(), "/w/a.txt", NewLiteralMatcher([]string{"foo"}))
		require.NoError(t, err)
		require.Len(t, result.Lines, 1)
		assert.Equal(t, 1, result.Lines[0].Index)
	})

	t.Run("trailing newline adds no empty line", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		fs.On("ReadFile", m.Path("/w/a.txt")).Return([]byte("a\n"), nil)

		matcher, _ := NewRegexMatcher([]string{"^$"})
		result, err := NewOrchestrator(fs).SearchContent(context.Background(), "/w/a.txt", matcher)
		require.NoError(t, err)
		assert.False(t, result.Matched())
	})

	t.Run("empty file has no lines", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		fs.On("ReadFile", m.Path("/w/empty")).Return([]byte{}, nil)

		result, err := NewOrchestrator(fs).SearchContent(context.Background(), "/w/empty", NewLiteralMatcher([]string{""}))
		require.NoError(t, err)
		assert.False(t, result.Matched())
	})

	t.Run("invalid utf-8 is not text", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		fs.On("ReadFile", m.Path("/w/bin")).Return([]byte{0xff, 0xfe, 'f', 'o', 'o'}, nil)

		_, err := NewOrchestrator(fs).SearchContent(context.Background(), "/w/bin", NewLiteralMatcher([]string{"foo"}))
		require.ErrorIs(t, err, ErrNotText)
	})

	t.Run("read failure", func(t *testing.T) {
		fs := adaptermocks.NewMockSourceFSAdapter(t)
		fs.On("ReadFile", m.Path("/w/gone")).Return(nil, os.ErrPermission)

		_, err := NewOrchestrator(fs).SearchContent(context.Background(), "/w/gone", NewLiteralMatcher([]string{"foo"}))
		require.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewOrchestrator(nil).SearchContent(ctx, "/w/a.txt", NewLiteralMatcher([]string{"foo"}))
		require.True(t, errors.Is(err, context.Canceled))
	})
}

func TestOrchestrator_SearchPath(t *testing.T) {
	orch := NewOrchestrator(nil)

	assert.True(t, orch.SearchPath("/w/src/needle.go", NewLiteralMatcher([]string{"hay", "needle"})))
	assert.False(t, orch.SearchPath("/w/src/main.go", NewLiteralMatcher([]string{"needle"})))
}
