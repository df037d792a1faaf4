package main

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mdtools"
)

// transposedPrefix is prepended to the source file name to name the output.
const transposedPrefix = "transposed_"

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if !c.Transpose {
		fmt.Fprintln(deps.Stdout, "No transformation selected. Use --transpose to enable transposing.")
		return nil
	}

	src, err := c.load(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	markdown := src.content
	if src.html {
		if markdown, err = c.htmlToMarkdown(deps, src.content); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}
	}

	table, err := deps.Tables.ParseTable([]byte(markdown))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", src.name, errorText(err))
		return err
	}

	out := filepath.Join(src.dir, outputName(src.name))
	rendered := mdtools.RenderTable(c.Title, table.Transpose(c.Corner))
	if _, err := deps.Store.WriteFile(deps.Ctx, out, []byte(rendered)); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", out, errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Transposed markdown table written to: %s\n", out)
	return nil
}

// source is a loaded input document.
type source struct {
	name    string // file name, used to name the output
	dir     string // output directory
	content string
	html    bool
}

// load reads the source from disk, or downloads it into the output
// directory when it is an http(s) URL.
func (c *ConvertCmd) load(deps *Dependencies) (*source, error) {
	if u, ok := parseRemote(c.Source); ok {
		dir := c.OutputPath
		if dir == "" {
			dir = "."
		}

		res, err := deps.Fetcher.Fetch(deps.Ctx, c.Source)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", c.Source, err)
		}

		name := remoteName(u)
		if _, err := deps.Store.WriteFile(deps.Ctx, filepath.Join(dir, name), res.Body); err != nil {
			return nil, fmt.Errorf("save %s: %w", name, err)
		}
		fmt.Fprintf(deps.Stdout, "Downloaded %s to %s\n", c.Source, filepath.Join(dir, name))

		return &source{name: name, dir: dir, content: string(res.Body), html: res.IsHTML()}, nil
	}

	dir := c.OutputPath
	if dir == "" {
		dir = filepath.Dir(c.Source)
	}

	data, err := deps.Store.ReadFile(deps.Ctx, c.Source)
	if err != nil {
		return nil, err
	}

	return &source{
		name:    filepath.Base(c.Source),
		dir:     dir,
		content: string(data),
		html:    mdtools.IsHTMLPath(c.Source),
	}, nil
}

// htmlToMarkdown reduces an HTML page to its table and converts it.
func (c *ConvertCmd) htmlToMarkdown(deps *Dependencies, html string) (string, error) {
	tableHTML, err := deps.Extractor.ExtractTable(html)
	if err != nil {
		return "", err
	}
	return deps.Converter.Convert(tableHTML)
}

// parseRemote reports whether s is an http or https URL.
func parseRemote(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, false
	}
	return u, true
}

// remoteName returns the local file name for a downloaded URL.
func remoteName(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "index.md"
	}
	return name
}

// outputName names the transposed copy of a source file. HTML sources are
// written as markdown.
func outputName(name string) string {
	if mdtools.IsHTMLPath(name) {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".md"
	}
	return transposedPrefix + name
}

// errorText returns the message shown to users for err.
// Application errors show their message; anything else is shown verbatim.
func errorText(err error) string {
	if mdtools.ErrorCode(err) == mdtools.EINTERNAL {
		return err.Error()
	}
	return mdtools.ErrorMessage(err)
}
