package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/mdtools"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Store       mdtools.FileStore
	FrontMatter mdtools.FrontMatterParser
	Headings    mdtools.HeadingParser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DryRun      bool     `short:"n" name:"dry-run" help:"Preview the TOC without writing to files"`
	Check       bool     `help:"Fail if any file's TOC is missing or out of date; write nothing"`
	Parser      string   `enum:"lines,goldmark" default:"lines" env:"MDTOC_PARSER" help:"Heading parser (${enum})"`
	MinLevel    int      `name:"min-level" default:"2" help:"Shallowest heading level listed"`
	MaxLevel    int      `name:"max-level" default:"6" help:"Deepest heading level listed"`
	Concurrency int      `short:"c" default:"4" env:"MDTOC_CONCURRENCY" help:"Files processed concurrently"`
	Debug       bool     `env:"MDTOC_DEBUG" help:"Log file operations to stderr"`
	Files       []string `arg:"" required:"" name:"file" help:"Markdown files to update (e.g., README.md)"`
}

// Validate checks flag combinations kong cannot express.
func (c *CLI) Validate() error {
	if c.MinLevel < mdtools.MinHeadingLevel || c.MaxLevel > mdtools.MaxHeadingLevel {
		return fmt.Errorf("heading levels must be between %d and %d", mdtools.MinHeadingLevel, mdtools.MaxHeadingLevel)
	}
	if c.MinLevel > c.MaxLevel {
		return fmt.Errorf("--min-level %d is greater than --max-level %d", c.MinLevel, c.MaxLevel)
	}
	if c.DryRun && c.Check {
		return fmt.Errorf("--dry-run and --check are mutually exclusive")
	}
	return nil
}

// GenerateCmd regenerates the TOC of one or more markdown files.
type GenerateCmd struct {
	Files       []string
	DryRun      bool
	Check       bool
	MinLevel    int
	MaxLevel    int
	Concurrency int
}
