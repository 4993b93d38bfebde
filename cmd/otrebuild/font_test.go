package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/otrebuild/internal/fontload"
	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/reconcile"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Font.ttf")
	path, err := outputPath(input, "", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Font#1.ttf"), path)
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	path, err = outputPath(input, "", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Font#2.ttf"), path)
	path, err = outputPath(filepath.Join(dir, "Font#1.ttf"), "", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Font#2.ttf"), path)
	//
	out := t.TempDir()
	path, err = outputPath(input, "", out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "Font#1.ttf"), path)
	path, err = outputPath(input, filepath.Join(out, "Other.ttf"), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "Other.ttf"), path)
	_, err = outputPath(input, filepath.Join(out, "missing", "Other.ttf"), "")
	assert.Error(t, err)
}

func TestProcessFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild")
	defer teardown()
	//
	f, err := fontload.GoFont("Go-Regular")
	require.NoError(t, err)
	dir := t.TempDir()
	input := filepath.Join(dir, "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(input, f.Binary, 0o644))
	r := processFont(input, "", "", reconcile.DefaultJobs(), nil)
	require.NoError(t, r.err)
	assert.Equal(t, filepath.Join(dir, "Go-Regular#1.ttf"), r.output)
	rebuilt, err := fontload.LoadOpenTypeFont(r.output)
	require.NoError(t, err)
	assert.Equal(t, f.Fontname, rebuilt.Fontname)
	_, err = ot.Parse(rebuilt.Binary)
	assert.NoError(t, err)
	//
	broken := filepath.Join(dir, "broken.ttf")
	require.NoError(t, os.WriteFile(broken, []byte("no font"), 0o644))
	r = processFont(broken, "", "", reconcile.DefaultJobs(), nil)
	assert.Error(t, r.err)
}

func TestSetupJobs(t *testing.T) {
	cli.RebuildMapping, cli.MacOffice, cli.Config = true, true, ""
	defer func() { cli.RebuildMapping, cli.MacOffice = false, false }()
	jobs, cfg, err := setup()
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.False(t, jobs.FixCmap)
	assert.True(t, jobs.RebuildCmap)
	assert.True(t, jobs.RebuildMacOffice)
	assert.True(t, jobs.FixName)
	//
	cli.Config = filepath.Join(t.TempDir(), "font.yaml")
	defer func() { cli.Config = "" }()
	require.NoError(t, os.WriteFile(cli.Config, []byte("name:\n  en:\n    fontFamily: Test\n"), 0o644))
	jobs, cfg, err = setup()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.False(t, jobs.FixName, "configured names replace the name fix")
}
