package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdtools"
	"github.com/fwojciec/mdtools/frontmatter"
	"github.com/fwojciec/mdtools/fs"
	"github.com/fwojciec/mdtools/goldmark"
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
		kong.Name("mdtoc"),
		kong.Description("Generate or update the table of contents of markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no files provided")
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

	if err := cli.Validate(); err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Store:       fs.NewFileStore(),
		FrontMatter: frontmatter.NewParser(),
		Headings:    newHeadingParser(cli.Parser),
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Store = mdslog.NewLoggingFileStore(deps.Store, logger)
	}

	cmd := &GenerateCmd{
		Files:       cli.Files,
		DryRun:      cli.DryRun,
		Check:       cli.Check,
		MinLevel:    cli.MinLevel,
		MaxLevel:    cli.MaxLevel,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}

// newHeadingParser returns the heading parser registered under name.
func newHeadingParser(name string) mdtools.HeadingParser {
	if name == "goldmark" {
		return goldmark.NewParser()
	}
	return mdtools.NewLineParser()
}
