package domain

import (
	"strconv"

	m "rsearch.dev/pkg/rsearch/internal/model"
)

const fieldSeparator = ":"

// FormatFileResult renders a content search result under mode. Path-only
// modes produce at most one line; the others produce one line per match.
func FormatFileResult(result m.FileResult, mode m.OutputMode) []m.Line {
	switch mode {
	case m.OutputPathsWithoutMatch:
		if result.Matched() {
			return nil
		}

		return []m.Line{pathLine(result.Path)}
	case m.OutputPathsWithMatch:
		if !result.Matched() {
			return nil
		}

		return []m.Line{pathLine(result.Path)}
	case m.OutputLineNumbers:
		lines := make([]m.Line, 0, len(result.Lines))
		for _, match := range result.Lines {
			line := m.Line{
				{Role: m.RolePath, Text: result.Path.Display()},
				{Role: m.RoleSeparator, Text: fieldSeparator},
				{Role: m.RoleLineNumber, Text: strconv.Itoa(match.Number())},
				{Role: m.RoleSeparator, Text: fieldSeparator},
			}
			lines = append(lines, append(line, decorate(match)...))
		}

		return lines
	default:
		lines := make([]m.Line, 0, len(result.Lines))
		for _, match := range result.Lines {
			line := m.Line{
				{Role: m.RolePath, Text: result.Path.Display()},
				{Role: m.RoleSeparator, Text: fieldSeparator},
			}
			lines = append(lines, append(line, decorate(match)...))
		}

		return lines
	}
}

// FormatPathMatch renders one filename search hit.
func FormatPathMatch(path m.Path) []m.Line {
	return []m.Line{pathLine(path)}
}

func pathLine(path m.Path) m.Line {
	return m.Line{{Role: m.RolePath, Text: path.Display()}}
}

// decorate splits a matching line around its span. Empty pieces are dropped.
func decorate(match m.LineMatch) m.Line {
	text := match.Line
	span := match.Span

	pieces := m.Line{
		{Role: m.RoleText, Text: text[:span.Start]},
		{Role: m.RoleMatch, Text: text[span.Start:span.End]},
		{Role: m.RoleText, Text: text[span.End:]},
	}

	decorated := pieces[:0]
	for _, piece := range pieces {
		if piece.Text != "" {
			decorated = append(decorated, piece)
		}
	}

	return decorated
}
