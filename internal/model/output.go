package model

import "strings"

// Role is the semantic part a piece of output text plays. Renderers decide
// how each role looks.
type Role int

const (
	// RoleText is undecorated text.
	RoleText Role = iota
	// RolePath is a file path.
	RolePath
	// RoleSeparator separates the fields of a result line.
	RoleSeparator
	// RoleLineNumber is a 1-based line number.
	RoleLineNumber
	// RoleMatch is the matched span of a line.
	RoleMatch
)

// Segment is a piece of output text with its role.
type Segment struct {
	Role Role
	Text string
}

// Line is one line of output, without the terminating newline.
type Line []Segment

// String returns the undecorated text of the line.
func (l Line) String() string {
	var b strings.Builder
	for _, segment := range l {
		b.WriteString(segment.Text)
	}

	return b.String()
}
