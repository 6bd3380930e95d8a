package controller

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

// SimpleUI implements UI on top of a cobra Command's output streams.
type SimpleUI struct {
	cmd       *cobra.Command
	colorMode ColorMode
	styler    Styler
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, colorMode ColorMode) *SimpleUI {
	return &SimpleUI{cmd: cmd, colorMode: colorMode}
}

// SetColorMode changes the colour mode for all following output.
func (s *SimpleUI) SetColorMode(mode ColorMode) {
	s.colorMode = mode
	s.styler = nil
}

// DisplayLines writes each line followed by a newline.
func (s *SimpleUI) DisplayLines(ctx context.Context, lines []m.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	styler := s.lineStyler()
	for _, line := range lines {
		if err := s.outPrintf("%s\n", RenderLine(styler, line)); err != nil {
			return err
		}
	}

	return nil
}

// DisplayWarning prints a diagnostic on stderr.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	out := s.cmd.ErrOrStderr()

	prefix := color.New(color.FgYellow, color.Bold)
	if s.colorMode.enabled(out) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}

	_, _ = fmt.Fprintf(out, "%s %s\n", prefix.Sprint("[WARNING]"), message)
}

// DisplayContent prints raw content and a trailing newline.
func (s *SimpleUI) DisplayContent(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.outPrintf("%s\n", content)
}

// DisplayListing prints a borderless table of directory entries.
func (s *SimpleUI) DisplayListing(ctx context.Context, entries []m.ListEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	return s.outPrintf("%s", renderListing(entries))
}

func (s *SimpleUI) lineStyler() Styler {
	if s.styler == nil {
		s.styler = NewStyler(s.cmd.OutOrStdout(), s.colorMode)
	}

	return s.styler
}

// outPrintf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) outPrintf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
