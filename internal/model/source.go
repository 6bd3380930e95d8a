// Package model defines the data structures shared by the search tools.
package model

import "strings"

// verbatimPrefix is the Windows extended-length path prefix.
const verbatimPrefix = `\\?\`

// Path represents a file system path.
type Path string

// Display returns the path as it should be shown to the user.
func (p Path) Display() string {
	return strings.TrimPrefix(string(p), verbatimPrefix)
}

// Entry is one filesystem object visited during a walk.
type Entry struct {
	Path      Path // as reached by the walker
	Canonical Path // absolute, symlink-resolved; empty when it cannot be computed
	Depth     int  // 0 for the walk root
	IsDir     bool
	IsSymlink bool
	ReadOnly  bool
}

// IsRoot reports whether the entry is the root the walk started from.
func (e Entry) IsRoot() bool {
	return e.Depth == 0
}
