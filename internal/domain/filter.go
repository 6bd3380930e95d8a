package domain

import (
	"strings"

	m "rsearch.dev/pkg/rsearch/internal/model"
)

// TreeFilter decides which walked entries are yielded and descended.
type TreeFilter struct {
	recursive bool
	exclude   []string
}

// NewTreeFilter builds the filter for a search configuration.
func NewTreeFilter(cfg m.SearchConfig) *TreeFilter {
	return &TreeFilter{
		recursive: cfg.Recursive,
		exclude:   cfg.Exclude,
	}
}

// Admit reports whether entry passes the filter. The walk root is never
// rejected for being a directory. Entries without a canonical path are
// never excluded.
func (f *TreeFilter) Admit(entry m.Entry) bool {
	if entry.IsDir && !f.recursive && !entry.IsRoot() {
		return false
	}

	return !f.excluded(entry.Canonical)
}

func (f *TreeFilter) excluded(canonical m.Path) bool {
	if canonical == "" {
		return false
	}

	for _, substring := range f.exclude {
		if strings.Contains(string(canonical), substring) {
			return true
		}
	}

	return false
}
