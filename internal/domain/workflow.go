package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rsearch.dev/pkg/rsearch/internal/adapter"
	"rsearch.dev/pkg/rsearch/internal/controller"
	m "rsearch.dev/pkg/rsearch/internal/model"
)

// GrepArgs contains the arguments for a content search.
type GrepArgs struct {
	Config m.SearchConfig
}

// FindArgs contains the arguments for a filename search. Config.OutputMode
// is ignored.
type FindArgs struct {
	Config m.SearchConfig
}

// CatArgs contains the files to concatenate.
type CatArgs struct {
	Paths []m.Path
}

// ListArgs contains the directory to list.
type ListArgs struct {
	Path m.Path
}

// Workflow defines the use cases exposed by the CLI.
type Workflow interface {
	Grep(ctx context.Context, args GrepArgs) error
	Find(ctx context.Context, args FindArgs) error
	Cat(ctx context.Context, args CatArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
	Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		Orchestrator:    orchestrator,
	}
}

// subjectFunc produces the output lines for one admitted entry. An error
// means the entry is skipped.
type subjectFunc func(ctx context.Context, entry m.Entry) ([]m.Line, error)

func (w *workflow) Grep(ctx context.Context, args GrepArgs) error {
	cfg := args.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	matcher := w.buildMatcher(ctx, cfg)

	return w.search(ctx, cfg, func(ctx context.Context, entry m.Entry) ([]m.Line, error) {
		info, err := w.FileInfo(entry.Canonical)
		if err != nil {
			return nil, err
		}

		if !info.Mode().IsRegular() {
			return nil, nil
		}

		result, err := w.SearchContent(ctx, entry.Canonical, matcher)
		if err != nil {
			return nil, err
		}

		return FormatFileResult(result, cfg.OutputMode), nil
	})
}

func (w *workflow) Find(ctx context.Context, args FindArgs) error {
	cfg := args.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	matcher := w.buildMatcher(ctx, cfg)

	return w.search(ctx, cfg, func(_ context.Context, entry m.Entry) ([]m.Line, error) {
		if !w.SearchPath(entry.Canonical, matcher) {
			return nil, nil
		}

		return FormatPathMatch(entry.Canonical), nil
	})
}

// buildMatcher reports every pattern that failed to compile and carries on
// with the rest.
func (w *workflow) buildMatcher(ctx context.Context, cfg m.SearchConfig) Matcher {
	matcher, problems := NewMatcher(cfg)
	for _, problem := range problems {
		slog.Warn("skipping pattern", "error", problem)
		w.DisplayWarning(ctx, problem.Error())
	}

	return matcher
}

// search walks every root in order and displays the lines produced by
// subject for each admitted entry, one entry at a time.
func (w *workflow) search(ctx context.Context, cfg m.SearchConfig, subject subjectFunc) error {
	filter := NewTreeFilter(cfg)
	opts := adapter.WalkOptions{
		FollowSymlinks: cfg.FollowSymlinks,
		Admit:          filter.Admit,
	}

	slog.Info("starting search",
		"roots", cfg.Roots,
		"recursive", cfg.Recursive,
		"follow_symlinks", cfg.FollowSymlinks,
		"regex", cfg.UseRegex,
		"mode", cfg.OutputMode.String(),
	)

	visited, skipped, printed := 0, 0, 0

	for _, root := range cfg.Roots {
		for entry := range w.Walk(root, opts) {
			if err := ctx.Err(); err != nil {
				return err
			}

			visited++

			lines, err := subject(ctx, entry)
			if err != nil {
				skipped++

				slog.Debug("skipping entry", "path", entry.Canonical, "error", err)

				continue
			}

			if len(lines) == 0 {
				continue
			}

			if err := w.DisplayLines(ctx, lines); err != nil {
				return fmt.Errorf("display: %w", err)
			}

			printed += len(lines)
		}
	}

	slog.Info("search finished", "visited", visited, "skipped", skipped, "lines", printed)

	return nil
}

func (w *workflow) Cat(ctx context.Context, args CatArgs) error {
	if len(args.Paths) == 0 {
		return errors.New("no files given")
	}

	for _, path := range args.Paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		content, err := w.ReadFile(path)
		if err != nil {
			slog.Warn("cannot read file", "path", path, "error", err)
			w.DisplayWarning(ctx, err.Error())

			continue
		}

		if err := w.DisplayContent(ctx, string(content)); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	entries, err := w.ReadDir(args.Path)
	if err != nil {
		return fmt.Errorf("list %s: %w", args.Path, err)
	}

	if err := w.DisplayListing(ctx, entries); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
