package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/mdtools"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Store     mdtools.FileStore
	Fetcher   mdtools.Fetcher
	Extractor mdtools.TableExtractor
	Converter mdtools.Converter
	Tables    mdtools.TableParser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Transpose  bool          `short:"t" help:"Transpose the markdown table"`
	OutputPath string        `short:"o" name:"output-path" aliases:"output_path" env:"MDCONVERT_OUTPUT_PATH" help:"Output directory (default: the source file's directory, or . for URLs)"`
	Title      string        `default:"${default_title}" help:"Heading written above the table (empty for none)"`
	Corner     string        `help:"Top-left header of the transposed table, e.g. 'Framework / Tool' (default: keep the original)"`
	Parser     string        `enum:"lines,goldmark" default:"lines" env:"MDCONVERT_PARSER" help:"Table parser (${enum})"`
	Selector   string        `default:"table" env:"MDCONVERT_SELECTOR" help:"CSS selector for the table in HTML sources"`
	Timeout    time.Duration `default:"10s" env:"MDCONVERT_TIMEOUT" help:"HTTP fetch timeout"`
	UserAgent  string        `default:"${default_user_agent}" env:"MDCONVERT_USER_AGENT" help:"User-Agent header sent when fetching"`
	MaxBytes   int64         `default:"${default_max_bytes}" env:"MDCONVERT_MAX_BYTES" help:"Largest document accepted when fetching"`
	Debug      bool          `env:"MDCONVERT_DEBUG" help:"Log fetches and file operations to stderr"`
	Source     string        `arg:"" required:"" name:"file-path" help:"Path or URL to the markdown file"`
}

// ConvertCmd converts the table of a local or remote markdown file.
type ConvertCmd struct {
	Source     string
	Transpose  bool
	OutputPath string
	Title      string
	Corner     string
}
