package adapter

import (
	"iter"
	"log/slog"
	"os"
	"path/filepath"

	m "rsearch.dev/pkg/rsearch/internal/model"
)

// Walk iterates over root and, for admitted directories, their children.
func (a *LocalSourceFSAdapter) Walk(root m.Path, opts WalkOptions) iter.Seq[m.Entry] {
	return func(yield func(m.Entry) bool) {
		w := &walker{
			fs:    a,
			opts:  opts,
			yield: yield,
		}
		w.visit(string(root), 0, nil)
	}
}

type walker struct {
	fs    *LocalSourceFSAdapter
	opts  WalkOptions
	yield func(m.Entry) bool
}

// visit handles one path and its subtree. It returns false once the consumer
// has stopped the iteration.
func (w *walker) visit(path string, depth int, ancestors []os.FileInfo) bool {
	entry, info, ok := w.stat(path, depth, ancestors)
	if !ok {
		return true
	}

	if w.opts.Admit != nil && !w.opts.Admit(entry) {
		return true
	}

	if entry.Canonical != "" && !w.yield(entry) {
		return false
	}

	if !entry.IsDir {
		return true
	}

	children, err := os.ReadDir(path)
	if err != nil {
		slog.Debug("skipping unreadable directory", "path", path, "error", err)
		return true
	}

	ancestors = append(ancestors, info)
	for _, child := range children {
		if !w.visit(filepath.Join(path, child.Name()), depth+1, ancestors) {
			return false
		}
	}

	return true
}

// stat builds the Entry for path. The root is always resolved; deeper
// symlinks only when following is enabled.
func (w *walker) stat(path string, depth int, ancestors []os.FileInfo) (m.Entry, os.FileInfo, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		slog.Debug("skipping entry without metadata", "path", path, "error", err)
		return m.Entry{}, nil, false
	}

	isSymlink := info.Mode()&os.ModeSymlink != 0
	if isSymlink && (depth == 0 || w.opts.FollowSymlinks) {
		target, err := os.Stat(path)
		if err != nil {
			slog.Debug("skipping broken symlink", "path", path, "error", err)
			return m.Entry{}, nil, false
		}

		if target.IsDir() && formsLoop(target, ancestors) {
			slog.Debug("skipping symlink loop", "path", path)
			return m.Entry{}, nil, false
		}

		info = target
	}

	entry := m.Entry{
		Path:      m.Path(path),
		Depth:     depth,
		IsDir:     info.IsDir(),
		IsSymlink: isSymlink,
		ReadOnly:  info.Mode().Perm()&0o222 == 0,
	}

	canonical, err := w.fs.Canonicalize(entry.Path)
	if err != nil {
		slog.Debug("no canonical path", "path", path, "error", err)
	} else {
		entry.Canonical = canonical
	}

	return entry, info, true
}

func formsLoop(dir os.FileInfo, ancestors []os.FileInfo) bool {
	for _, ancestor := range ancestors {
		if os.SameFile(dir, ancestor) {
			return true
		}
	}

	return false
}
