package main

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/mdtools"
	"golang.org/x/sync/errgroup"
)

// outcome describes what happened to a single file.
type outcome int

const (
	outcomeUpdated outcome = iota
	outcomeUnchanged
	outcomePreview
	outcomeStale
	outcomeNoHeadings
	outcomeSkipped
	outcomeFailed
)

type fileResult struct {
	path    string
	outcome outcome
	toc     []string
	err     error
}

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	limit := c.Concurrency
	if limit <= 0 {
		limit = 1
	}

	results := make([]fileResult, len(c.Files))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, path := range c.Files {
		g.Go(func() error {
			results[i] = c.process(deps, path)
			return nil
		})
	}
	_ = g.Wait()

	var failed, stale int
	for _, r := range results {
		switch r.outcome {
		case outcomeUpdated:
			fmt.Fprintf(deps.Stdout, "TOC updated in %s\n", r.path)
		case outcomeUnchanged:
			fmt.Fprintf(deps.Stdout, "TOC already up to date in %s\n", r.path)
		case outcomePreview:
			fmt.Fprintf(deps.Stdout, "Preview of TOC for %s:\n\n%s\n", r.path, mdtools.JoinLines(r.toc))
		case outcomeStale:
			stale++
			fmt.Fprintf(deps.Stdout, "TOC out of date in %s\n", r.path)
		case outcomeNoHeadings:
			fmt.Fprintf(deps.Stdout, "No valid markdown headings (## to ######) found in %s\n", r.path)
		case outcomeSkipped:
			fmt.Fprintf(deps.Stdout, "Skipped %s (toc disabled in front matter)\n", r.path)
		case outcomeFailed:
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.path, errorText(r.err))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(c.Files))
	}
	if stale > 0 {
		return fmt.Errorf("%d of %d files have an outdated TOC", stale, len(c.Files))
	}
	return nil
}

// process regenerates the TOC of a single file.
func (c *GenerateCmd) process(deps *Dependencies, path string) fileResult {
	fail := func(err error) fileResult {
		return fileResult{path: path, outcome: outcomeFailed, err: err}
	}

	data, err := deps.Store.ReadFile(deps.Ctx, path)
	if err != nil {
		return fail(err)
	}

	fm, body, err := deps.FrontMatter.Split(data)
	if err != nil {
		return fail(err)
	}
	if fm.TOCDisabled() {
		return fileResult{path: path, outcome: outcomeSkipped}
	}

	headings, err := deps.Headings.ParseHeadings(body)
	if err != nil {
		return fail(err)
	}
	lo, hi := c.levels()
	headings = mdtools.FilterHeadings(headings, lo, hi)
	if len(headings) == 0 {
		return fileResult{path: path, outcome: outcomeNoHeadings}
	}

	toc := mdtools.BuildTOC(headings)
	lines, err := mdtools.UpdateTOC(mdtools.SplitLines(string(body)), toc)
	if err != nil {
		return fail(err)
	}
	if c.DryRun {
		return fileResult{path: path, outcome: outcomePreview, toc: toc}
	}

	var out bytes.Buffer
	if fm != nil {
		out.Write(fm.Raw)
	}
	out.WriteString(mdtools.JoinLines(lines))

	if c.Check {
		if bytes.Equal(out.Bytes(), data) {
			return fileResult{path: path, outcome: outcomeUnchanged}
		}
		return fileResult{path: path, outcome: outcomeStale}
	}

	changed, err := deps.Store.WriteFile(deps.Ctx, path, out.Bytes())
	if err != nil {
		return fail(err)
	}
	if !changed {
		return fileResult{path: path, outcome: outcomeUnchanged}
	}
	return fileResult{path: path, outcome: outcomeUpdated}
}

// levels returns the heading level range, defaulting unset bounds.
func (c *GenerateCmd) levels() (lo, hi int) {
	lo, hi = c.MinLevel, c.MaxLevel
	if lo == 0 {
		lo = mdtools.MinHeadingLevel
	}
	if hi == 0 {
		hi = mdtools.MaxHeadingLevel
	}
	return lo, hi
}

// errorText returns the message shown to users for err.
// Application errors show their message; anything else is shown verbatim.
func errorText(err error) string {
	if mdtools.ErrorCode(err) == mdtools.EINTERNAL {
		return err.Error()
	}
	return mdtools.ErrorMessage(err)
}
