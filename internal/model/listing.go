package model

import (
	"os"
	"time"
)

// ListEntry is one row of a directory listing.
type ListEntry struct {
	Name       string
	Mode       os.FileMode
	Size       int64
	ModTime    time.Time
	LinkTarget string // empty unless Mode is a symlink
	LinkErr    error  // set when the symlink target could not be read
}

// IsDir reports whether the entry is a directory.
func (e ListEntry) IsDir() bool {
	return e.Mode.IsDir()
}

// IsSymlink reports whether the entry is a symbolic link.
func (e ListEntry) IsSymlink() bool {
	return e.Mode&os.ModeSymlink != 0
}

// ReadOnly reports whether nobody may write the entry.
func (e ListEntry) ReadOnly() bool {
	return e.Mode.Perm()&0o222 == 0
}
