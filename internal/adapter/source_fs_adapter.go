// Package adapter contains the filesystem adapters used by the search tools.
package adapter

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"

	m "rsearch.dev/pkg/rsearch/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when searching trees. It hides direct `os` access so the workflow
// logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root depth-first, pre-order. Entries rejected by
	// opts.Admit are neither yielded nor descended.
	Walk(root m.Path, opts WalkOptions) iter.Seq[m.Entry]

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Canonicalize returns the absolute, symlink-resolved form of path.
	Canonicalize(path m.Path) (m.Path, error)

	// ReadDir lists the entries of a single directory without following links.
	ReadDir(path m.Path) ([]m.ListEntry, error)
}

// WalkOptions configures a single walk.
type WalkOptions struct {
	// FollowSymlinks makes the walker resolve symlinks below the root and
	// descend into the directories they point to.
	FollowSymlinks bool
	// Admit decides whether an entry is yielded and, for directories,
	// descended. A nil Admit admits everything.
	Admit func(m.Entry) bool
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected files is the point of the tool
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Canonicalize resolves path to an absolute path without symlinks.
func (a *LocalSourceFSAdapter) Canonicalize(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", fmt.Errorf("absolute path of %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	return m.Path(m.Path(resolved).Display()), nil
}

// ReadDir lists a directory in name order.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]m.ListEntry, error) {
	dirEntries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, err
	}

	entries := make([]m.ListEntry, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		info, err := dirEntry.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}

		entry := m.ListEntry{
			Name:    dirEntry.Name(),
			Mode:    info.Mode(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}

		if entry.IsSymlink() {
			entry.LinkTarget, entry.LinkErr = os.Readlink(filepath.Join(string(path), dirEntry.Name()))
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
