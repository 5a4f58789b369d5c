package commands

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docinclude/internal/errors"
	"git.home.luguber.info/inful/docinclude/internal/pathspec"
	"git.home.luguber.info/inful/docinclude/internal/testutil"
)

var writeFile = testutil.WriteFile

func TestRunList_GlobSelectsOnlyMarkdown(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "a.md"), "")
	writeFile(t, filepath.Join(root, "docs", "b.txt"), "")
	spec := filepath.Join(root, ".docinclude")
	writeFile(t, spec, "docs/*.md\n")

	var out bytes.Buffer
	require.NoError(t, RunList(&out, spec, root))
	assert.Equal(t, "docs/a.md\n", out.String())
}

func TestRunList_NegationReExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), "")
	writeFile(t, filepath.Join(root, "docs", "keep.md"), "")
	writeFile(t, filepath.Join(root, "docs", "skip.md"), "")
	spec := filepath.Join(root, ".docinclude")
	writeFile(t, spec, "# docs\n*.md\n!docs/skip.md\n")

	var out bytes.Buffer
	require.NoError(t, RunList(&out, spec, root))
	assert.Equal(t, "README.md\ndocs/keep.md\n", out.String())
}

func TestRunList_LinkedDirectoryListsContents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shared", "api.md"), "")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join("..", "shared"), filepath.Join(root, "docs", "api")))
	spec := filepath.Join(root, ".docinclude")
	writeFile(t, spec, "docs/\n")

	var out bytes.Buffer
	require.NoError(t, RunList(&out, spec, root))
	assert.Equal(t, "docs/api/api.md\n", out.String())
}

func TestRunList_MissingSpecFails(t *testing.T) {
	root := t.TempDir()

	var out bytes.Buffer
	err := RunList(&out, filepath.Join(root, ".docinclude"), root)
	require.Error(t, err)
	assert.ErrorIs(t, err, pathspec.ErrSpecNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryPattern))
	assert.Empty(t, out.String())
}

func TestListCmd_Run(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "a.md"), "")
	spec := filepath.Join(root, "spec")
	writeFile(t, spec, "docs/\n")

	var out bytes.Buffer
	cmd := &ListCmd{Spec: spec, Root: root}
	require.NoError(t, cmd.Run(&Global{Out: &out}, &CLI{}))
	assert.Equal(t, "docs/a.md\n", out.String())
}
