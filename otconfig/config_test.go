package otconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
general:
  version: 1.5
  embeddingRestriction: 2
style:
  styleLink: 3
  widthScale: 12
  weightScale: 7
  italicAngle: -9.5
  isMonospaced: true
metrics:
  hheaAscender: 880
  hheaLineGap: 0
  winDescender: -220
name:
  en:
    fontFamily: "  Example Sans  "
    fontSubfamily: ""
    distributorID: "AB-C"
  ja:
    fontFamily: サンプル
  fr:
    fontFamily: Exemple
`

func TestParseConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.config")
	defer teardown()
	//
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, ot.Some(1.5), cfg.Version())
	assert.Equal(t, ot.Some(EmbedPreviewAndPrint), cfg.EmbeddingRestriction())
	assert.True(t, cfg.HasStyle())
	assert.Equal(t, ot.Some(3), cfg.StyleLink())
	assert.True(t, cfg.WidthScale().IsNone(), "width scale out of range")
	assert.Equal(t, ot.Some(7), cfg.WeightScale())
	assert.Equal(t, ot.Some(-9.5), cfg.ItalicAngle())
	assert.Equal(t, ot.Some(true), cfg.IsMonospaced())
	pos, thick := cfg.Underline()
	assert.True(t, pos.IsNone())
	assert.True(t, thick.IsNone())
	asc, desc, gap := cfg.HheaMetrics()
	assert.Equal(t, ot.Some(880.0), asc)
	assert.True(t, desc.IsNone())
	assert.Equal(t, ot.Some(0.0), gap)
	_, winDesc := cfg.WinMetrics()
	assert.Equal(t, ot.Some(-220.0), winDesc)
	//
	en := cfg.English()
	require.NotNil(t, en)
	assert.Equal(t, ot.Some("Example Sans"), en.Get(FontFamily))
	assert.True(t, en.Get(FontSubfamily).IsNone())
	assert.True(t, en.Get(Designer).IsNone())
	assert.Equal(t, []string{"fr", "ja"}, cfg.Languages())
}

func TestEmptyConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.config")
	defer teardown()
	//
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.False(t, cfg.HasStyle())
	assert.True(t, cfg.StyleLink().IsNone())
	assert.True(t, cfg.Version().IsNone())
	asc, _, _ := cfg.TypoMetrics()
	assert.True(t, asc.IsNone())
	assert.Nil(t, cfg.English())
	assert.Empty(t, cfg.Languages())
}

func TestRejectUnknownKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.config")
	defer teardown()
	//
	for _, doc := range []string{
		"style:\n  stylelink: 1\n",
		"name:\n  en:\n    family: X\n",
		"general: [1, 2]\n",
	} {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrConfig, doc)
	}
}

func TestLoadAndMarshal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.config")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "font.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	data, err := cfg.Marshal()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
	//
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
