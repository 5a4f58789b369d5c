package doclist

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CommentsAndBlankLinesSkipped(t *testing.T) {
	src := "# comment\n\nindex.md\nguide.md\n"

	entries, err := Parse(strings.NewReader(src), Options{})
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Line: 3, Path: "index.md"},
		{Line: 4, Path: "guide.md"},
	}, entries)
}

func TestParse_TrimsWhitespaceAndIndentedComments(t *testing.T) {
	src := "  docs/a.md  \n\t# indented comment\n\tdocs/b.md\r\n"

	entries, err := Parse(strings.NewReader(src), Options{BlankLines: BlankLinesSkip})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/a.md", "docs/b.md"}, Paths(entries))
}

func TestParse_BlankLineWarns(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := Parse(strings.NewReader("a.md\n   \nb.md\n"), Options{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "line=2")
}

func TestParse_RejectPolicy(t *testing.T) {
	_, err := Parse(strings.NewReader("# c\n\nindex.md\n"), Options{BlankLines: BlankLinesReject})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBlankEntry)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_RejectPolicyWithoutBlankLines(t *testing.T) {
	entries, err := Parse(strings.NewReader("index.md\nguide.md"), Options{BlankLines: BlankLinesReject})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.md", "guide.md"}, Paths(entries))
}

func TestParse_UnknownPolicy(t *testing.T) {
	_, err := Parse(strings.NewReader("a.md\n"), Options{BlankLines: "ignore"})
	require.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestParse_Empty(t *testing.T) {
	entries, err := Parse(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("index.md\n# later\nguide.md\n"), 0o644))

	entries, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Line: 1, Path: "index.md"}, {Line: 3, Path: "guide.md"}}, entries)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFileName), Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrListNotFound)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestBlankLinePolicy_IsValid(t *testing.T) {
	assert.True(t, BlankLinePolicy("").IsValid())
	assert.True(t, BlankLinesSkip.IsValid())
	assert.True(t, BlankLinesReject.IsValid())
	assert.False(t, BlankLinePolicy("keep").IsValid())
}
