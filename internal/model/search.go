package model

import (
	"errors"
	"fmt"
)

var (
	// ErrConflictingOutputModes is returned when more than one output mode is requested.
	ErrConflictingOutputModes = errors.New("output modes -n, -l and -L are mutually exclusive")
	// ErrNoPatterns is returned when a search has nothing to look for.
	ErrNoPatterns = errors.New("no search patterns given")
	// ErrNoRoots is returned when a search has nowhere to look.
	ErrNoRoots = errors.New("no search paths given")
)

// OutputMode selects how content search results are rendered.
type OutputMode int

const (
	// OutputDefault prints every matching line prefixed by its path.
	OutputDefault OutputMode = iota
	// OutputLineNumbers prints every matching line prefixed by path and 1-based line number.
	OutputLineNumbers
	// OutputPathsWithMatch prints only the paths of files with at least one match.
	OutputPathsWithMatch
	// OutputPathsWithoutMatch prints only the paths of files without any match.
	OutputPathsWithoutMatch
)

func (o OutputMode) String() string {
	switch o {
	case OutputDefault:
		return "default"
	case OutputLineNumbers:
		return "line-numbers"
	case OutputPathsWithMatch:
		return "paths-with-match"
	case OutputPathsWithoutMatch:
		return "paths-without-match"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(o))
	}
}

// SelectOutputMode turns the independent mode switches of the command line
// into a single OutputMode.
func SelectOutputMode(lineNumbers, withMatch, withoutMatch bool) (OutputMode, error) {
	selected := 0
	mode := OutputDefault

	if lineNumbers {
		selected++
		mode = OutputLineNumbers
	}

	if withMatch {
		selected++
		mode = OutputPathsWithMatch
	}

	if withoutMatch {
		selected++
		mode = OutputPathsWithoutMatch
	}

	if selected > 1 {
		return OutputDefault, ErrConflictingOutputModes
	}

	return mode, nil
}

// SearchConfig holds everything a single search invocation needs. It is
// built once and never modified afterwards.
type SearchConfig struct {
	Roots          []Path
	Recursive      bool
	FollowSymlinks bool
	Exclude        []string
	Patterns       []string
	RegexPatterns  []string
	UseRegex       bool
	OutputMode     OutputMode
}

// ActivePatterns returns the patterns of the kind selected for this search.
func (c SearchConfig) ActivePatterns() []string {
	if c.UseRegex {
		return c.RegexPatterns
	}

	return c.Patterns
}

// Validate reports configuration problems that must stop a search before it starts.
func (c SearchConfig) Validate() error {
	if len(c.Roots) == 0 {
		return ErrNoRoots
	}

	if len(c.ActivePatterns()) == 0 {
		return ErrNoPatterns
	}

	if c.OutputMode < OutputDefault || c.OutputMode > OutputPathsWithoutMatch {
		return fmt.Errorf("unknown output mode %s", c.OutputMode)
	}

	return nil
}
