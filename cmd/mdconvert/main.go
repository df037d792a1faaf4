package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdtools"
	"github.com/fwojciec/mdtools/fs"
	"github.com/fwojciec/mdtools/goldmark"
	"github.com/fwojciec/mdtools/goquery"
	"github.com/fwojciec/mdtools/htmltomarkdown"
	mdhttp "github.com/fwojciec/mdtools/http"
	mdslog "github.com/fwojciec/mdtools/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdconvert"),
		kong.Description("Convert markdown tables, optionally fetching the source over HTTP"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_title":      mdtools.DefaultTableTitle,
			"default_user_agent": mdhttp.DefaultUserAgent,
			"default_max_bytes":  strconv.Itoa(mdhttp.DefaultMaxBytes),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies
	fetcher := mdhttp.NewFetcher(
		mdhttp.WithTimeout(cli.Timeout),
		mdhttp.WithUserAgent(cli.UserAgent),
		mdhttp.WithMaxBytes(cli.MaxBytes),
	)
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Store:     fs.NewFileStore(),
		Fetcher:   fetcher,
		Extractor: goquery.NewTableExtractor(goquery.WithSelector(cli.Selector)),
		Converter: htmltomarkdown.NewConverter(),
		Tables:    newTableParser(cli.Parser),
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Store = mdslog.NewLoggingFileStore(deps.Store, logger)
		deps.Fetcher = mdslog.NewLoggingFetcher(deps.Fetcher, logger)
	}

	cmd := &ConvertCmd{
		Source:     cli.Source,
		Transpose:  cli.Transpose,
		OutputPath: cli.OutputPath,
		Title:      cli.Title,
		Corner:     cli.Corner,
	}

	return cmd.Run(deps)
}

// newTableParser returns the table parser registered under name.
func newTableParser(name string) mdtools.TableParser {
	if name == "goldmark" {
		return goldmark.NewParser()
	}
	return mdtools.NewLineParser()
}
