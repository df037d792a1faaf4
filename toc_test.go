package mdtools_test

import (
	"testing"

	"github.com/fwojciec/mdtools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTOC(t *testing.T) {
	t.Parallel()

	t.Run("indents by heading level", func(t *testing.T) {
		t.Parallel()

		toc := mdtools.BuildTOC([]mdtools.Heading{
			{Level: 2, Title: "Install", Anchor: "install"},
			{Level: 3, Title: "From source", Anchor: "from-source"},
			{Level: 6, Title: "Deep", Anchor: "deep"},
		})

		assert.Equal(t, []string{
			"<!-- toc -->\n",
			"- [Install](#install)\n",
			"  - [From source](#from-source)\n",
			"        - [Deep](#deep)\n",
			"<!-- tocstop -->\n",
		}, toc)
	})

	t.Run("empty headings produce only markers", func(t *testing.T) {
		t.Parallel()

		toc := mdtools.BuildTOC(nil)

		assert.Equal(t, []string{"<!-- toc -->\n", "<!-- tocstop -->\n"}, toc)
	})
}

func TestUpdateTOC(t *testing.T) {
	t.Parallel()

	toc := mdtools.BuildTOC([]mdtools.Heading{{Level: 2, Title: "Usage", Anchor: "usage"}})

	t.Run("inserts after the title", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("# Project\nIntro\n## Usage\n")

		updated, err := mdtools.UpdateTOC(lines, toc)

		require.NoError(t, err)
		assert.Equal(t, "# Project\n\n<!-- toc -->\n- [Usage](#usage)\n<!-- tocstop -->\n\nIntro\n## Usage\n", mdtools.JoinLines(updated))
	})

	t.Run("terminates an unterminated title line", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("# Project")

		updated, err := mdtools.UpdateTOC(lines, toc)

		require.NoError(t, err)
		assert.Equal(t, "# Project\n\n<!-- toc -->\n- [Usage](#usage)\n<!-- tocstop -->\n\n", mdtools.JoinLines(updated))
	})

	t.Run("prepends when there is no title", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("## Usage\ntext\n")

		updated, err := mdtools.UpdateTOC(lines, toc)

		require.NoError(t, err)
		assert.Equal(t, "<!-- toc -->\n- [Usage](#usage)\n<!-- tocstop -->\n\n## Usage\ntext\n", mdtools.JoinLines(updated))
	})

	t.Run("ignores titles inside code fences", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("```\n# comment\n```\n# Real\n")

		updated, err := mdtools.UpdateTOC(lines, toc)

		require.NoError(t, err)
		assert.Equal(t, "```\n# comment\n```\n# Real\n\n<!-- toc -->\n- [Usage](#usage)\n<!-- tocstop -->\n\n", mdtools.JoinLines(updated))
	})

	t.Run("replaces an existing block", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("# Project\n\n<!-- toc -->\n- [Old](#old)\n<!-- tocstop -->\n\n## Usage\n")

		updated, err := mdtools.UpdateTOC(lines, toc)

		require.NoError(t, err)
		assert.Equal(t, "# Project\n\n<!-- toc -->\n- [Usage](#usage)\n<!-- tocstop -->\n\n## Usage\n", mdtools.JoinLines(updated))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("# Project\nIntro\n## Usage\n")

		once, err := mdtools.UpdateTOC(lines, toc)
		require.NoError(t, err)
		twice, err := mdtools.UpdateTOC(once, toc)
		require.NoError(t, err)

		assert.Equal(t, mdtools.JoinLines(once), mdtools.JoinLines(twice))
	})

	t.Run("rejects reversed markers", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("<!-- tocstop -->\n<!-- toc -->\n")

		_, err := mdtools.UpdateTOC(lines, toc)

		require.Error(t, err)
		assert.Equal(t, mdtools.EINVALID, mdtools.ErrorCode(err))
	})

	t.Run("rejects a start marker without end marker", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("# Project\n<!-- toc -->\n## Usage\n")

		_, err := mdtools.UpdateTOC(lines, toc)

		require.Error(t, err)
		assert.Equal(t, mdtools.EINVALID, mdtools.ErrorCode(err))
	})
	t.Run("replaces markers sharing one line", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("# T\n<!-- toc --><!-- tocstop -->\n## Usage\n")

		updated, err := mdtools.UpdateTOC(lines, toc)

		require.NoError(t, err)
		assert.Equal(t, "# T\n<!-- toc -->\n- [Usage](#usage)\n<!-- tocstop -->\n## Usage\n", mdtools.JoinLines(updated))
	})

	t.Run("keeps CRLF line endings", func(t *testing.T) {
		t.Parallel()

		lines := mdtools.SplitLines("# Project\r\nIntro\r\n## Usage\r\n")

		once, err := mdtools.UpdateTOC(lines, toc)
		require.NoError(t, err)
		twice, err := mdtools.UpdateTOC(once, toc)
		require.NoError(t, err)

		want := "# Project\r\n\r\n<!-- toc -->\r\n- [Usage](#usage)\r\n<!-- tocstop -->\r\n\r\nIntro\r\n## Usage\r\n"
		assert.Equal(t, want, mdtools.JoinLines(once))
		assert.Equal(t, want, mdtools.JoinLines(twice))
	})
}
