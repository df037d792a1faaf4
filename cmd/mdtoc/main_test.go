package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/mdtools/cmd/mdtoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "mdtoc")
	assert.Contains(t, stdout.String(), "--dry-run")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "mdtoc")
}

func TestMain_Run_InvalidParser(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--parser", "regex", "README.md"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_InvalidLevels(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--min-level", "4", "--max-level", "3", "README.md"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_DryRunAndCheckConflict(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--dry-run", "--check", "README.md"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UpdatesFile(t *testing.T) {
	t.Parallel()

	for _, parser := range []string{"lines", "goldmark"} {
		t.Run(parser, func(t *testing.T) {
			t.Parallel()

			// Given: a README on disk
			path := filepath.Join(t.TempDir(), "README.md")
			source := "# Project\n\n## Install\n\n```sh\n## not a heading\n```\n\n## Usage\n"
			require.NoError(t, os.WriteFile(path, []byte(source), 0644))

			m := main.NewMain()
			var stdout, stderr bytes.Buffer

			// When: running mdtoc
			err := m.Run(context.Background(), []string{"--parser", parser, path}, &stdout, &stderr)

			// Then: the TOC is written to the file
			require.NoError(t, err)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(content), "<!-- toc -->\n- [Install](#install)\n- [Usage](#usage)\n<!-- tocstop -->\n")
			assert.NotContains(t, string(content), "#not-a-heading")
			assert.Contains(t, stdout.String(), "TOC updated in "+path)
		})
	}
}

func TestMain_Run_DebugLogsFileOperations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("## Usage\n"), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--debug", path}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "read file")
	assert.Contains(t, stderr.String(), "write file")
}

func TestMain_Run_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.md")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{path}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "file not found: "+path)
}
