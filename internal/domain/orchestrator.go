package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"rsearch.dev/pkg/rsearch/internal/adapter"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

// ErrNotText is returned for files whose content is not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// Orchestrator runs a matcher against one search subject: the lines of a
// file for content search, or the path itself for filename search.
type Orchestrator interface {
	SearchContent(ctx context.Context, path m.Path, matcher Matcher) (m.FileResult, error)
	SearchPath(path m.Path, matcher Matcher) bool
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewOrchestrator constructs an Orchestrator reading files through fsAdapter.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter) Orchestrator {
	return &orchestrator{fsAdapter: fsAdapter}
}

// SearchContent records at most one match per line, in line order.
func (o *orchestrator) SearchContent(ctx context.Context, path m.Path, matcher Matcher) (m.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return m.FileResult{}, err
	}

	content, err := o.fsAdapter.ReadFile(path)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		return m.FileResult{}, fmt.Errorf("read %s: %w", path, ErrNotText)
	}

	result := m.FileResult{Path: path}

	index := 0
	for line := range strings.Lines(string(content)) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if span, ok := matcher.Match(line); ok {
			result.Lines = append(result.Lines, m.LineMatch{Line: line, Index: index, Span: span})
		}

		index++
	}

	return result, nil
}

// SearchPath reports whether any pattern occurs in the path string.
func (o *orchestrator) SearchPath(path m.Path, matcher Matcher) bool {
	_, ok := matcher.Match(string(path))
	return ok
}
