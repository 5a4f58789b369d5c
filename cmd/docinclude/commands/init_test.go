package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docinclude/internal/config"
	"git.home.luguber.info/inful/docinclude/internal/doclist"
	"git.home.luguber.info/inful/docinclude/internal/testutil"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.DefaultFileName)

	var out bytes.Buffer
	require.NoError(t, RunInit(&out, cfgPath, false))
	assert.Contains(t, out.String(), "initialized successfully")
	testutil.NewFileAssertions(t, dir).
		AssertFileContains(config.DefaultFileName, "docs_dir: docs").
		AssertFileExists(doclist.DefaultFileName).
		AssertFileExists(config.DefaultSpecFileName)

	out.Reset()
	require.Error(t, RunInit(&out, cfgPath, false))
	assert.Contains(t, out.String(), "Initialization failed")

	out.Reset()
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{Out: &out}, &CLI{Config: cfgPath}))
}
