package model

// Span is a half-open byte range [Start, End) within a string.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// LineMatch is one matching line of a file.
type LineMatch struct {
	Line  string
	Index int // 0-based
	Span  Span
}

// Number returns the 1-based line number.
func (l LineMatch) Number() int {
	return l.Index + 1
}

// FileResult holds the content search outcome for a single file.
type FileResult struct {
	Path  Path
	Lines []LineMatch
}

// Matched reports whether at least one line of the file matched.
func (r FileResult) Matched() bool {
	return len(r.Lines) > 0
}
