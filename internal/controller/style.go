package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

// ColorMode controls when output is coloured.
type ColorMode string

// Available ColorMode values.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses the value of the color setting.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", value)
	}
}

// enabled reports whether output written to w should carry colour.
func (c ColorMode) enabled(w io.Writer) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styler renders text according to its role.
type Styler interface {
	Style(role m.Role, text string) string
}

type plainStyler struct{}

func (plainStyler) Style(_ m.Role, text string) string {
	return text
}

type roleStyler struct {
	styles map[m.Role]lipgloss.Style
}

// NewStyler returns the styler for output written to w.
func NewStyler(w io.Writer, mode ColorMode) Styler {
	if !mode.enabled(w) {
		return plainStyler{}
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI)

	base := renderer.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion)

	return &roleStyler{
		styles: map[m.Role]lipgloss.Style{
			m.RolePath:       base.Foreground(lipgloss.Color("5")),
			m.RoleSeparator:  base.Foreground(lipgloss.Color("6")),
			m.RoleLineNumber: base.Foreground(lipgloss.Color("2")),
			m.RoleMatch:      base.Foreground(lipgloss.Color("1")),
		},
	}
}

func (r *roleStyler) Style(role m.Role, text string) string {
	style, ok := r.styles[role]
	if !ok {
		return text
	}

	return style.Render(text)
}

// RenderLine joins the styled segments of line.
func RenderLine(styler Styler, line m.Line) string {
	var b strings.Builder
	for _, segment := range line {
		b.WriteString(styler.Style(segment.Role, segment.Text))
	}

	return b.String()
}
