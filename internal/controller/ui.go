// Package controller provides the output adapters for the search tools.
package controller

import (
	"context"

	m "rsearch.dev/pkg/rsearch/internal/model"
)

// UI defines how results reach the user.
type UI interface {
	// DisplayLines writes role-tagged result lines to standard output.
	DisplayLines(ctx context.Context, lines []m.Line) error
	// DisplayWarning writes a non-fatal diagnostic to standard error.
	DisplayWarning(ctx context.Context, message string)
	// DisplayContent writes raw file content followed by a newline.
	DisplayContent(ctx context.Context, content string) error
	// DisplayListing writes one row per directory entry.
	DisplayListing(ctx context.Context, entries []m.ListEntry) error
}
