package ot

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawTable is a directory entry of a synthetic font. gap is the number of
// padding bytes before the table data.
type rawTable struct {
	tag  string
	data []byte
	gap  int
}

// synthFont assembles an sfnt binary with the tables in the given directory
// order. Offsets may be moved past the end of the font by tooLong bytes for
// the last table.
func synthFont(tables []rawTable, tooLong uint32) []byte {
	font := binary.BigEndian.AppendUint32(nil, FontTypeTrueType)
	font = binary.BigEndian.AppendUint16(font, uint16(len(tables)))
	font = append(font, make([]byte, 6)...)
	dir := len(font)
	font = append(font, make([]byte, 16*len(tables))...)
	for i, t := range tables {
		font = append(font, make([]byte, t.gap)...)
		entry := font[dir+16*i:]
		copy(entry, t.tag)
		binary.BigEndian.PutUint32(entry[8:], uint32(len(font)))
		size := uint32(len(t.data))
		if i == len(tables)-1 {
			size += tooLong
		}
		binary.BigEndian.PutUint32(entry[12:], size)
		font = append(font, t.data...)
	}
	return font
}

func postV3() []byte {
	b := make([]byte, 32)
	binary.BigEndian.PutUint32(b, 0x00030000)
	return b
}

func TestParseWarnsOnDirectoryIrregularities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := synthFont([]rawTable{
		{tag: "post", data: postV3()},
		{tag: "cmap", data: []byte{0, 0, 0, 0}, gap: 2},
		{tag: "cmap", data: []byte{0, 1, 0, 0}, gap: 2},
	}, 0)
	otf, err := Parse(font)
	require.NoError(t, err)
	assert.Empty(t, otf.Errors())
	assert.False(t, otf.HasCriticalErrors())
	issues := make(map[string]Tag)
	for _, w := range otf.Warnings() {
		issues[w.Issue] = w.Table
		assert.NotZero(t, w.Offset, "%s", w)
	}
	assert.Equal(t, T("cmap"), issues["table directory not sorted"])
	assert.Equal(t, T("cmap"), issues["table not aligned to four bytes"])
	assert.Equal(t, T("cmap"), issues["duplicate table, keeping the first one"])
	assert.Equal(t, []byte{0, 0, 0, 0}, otf.Table(T("cmap")).Binary())
	assert.Equal(t, []Tag{T("post"), T("cmap")}, otf.TableTags())
}

func TestParseKeepsUninterpretableTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := synthFont([]rawTable{
		{tag: "head", data: make([]byte, 20)},
		{tag: "post", data: postV3()},
	}, 0)
	otf, err := Parse(font)
	require.NoError(t, err)
	require.Len(t, otf.Errors(), 1)
	e := otf.Errors()[0]
	assert.Equal(t, T("head"), e.Table)
	assert.Equal(t, "Header", e.Section)
	assert.Equal(t, SeverityMajor, e.Severity)
	assert.Contains(t, e.Error(), "[MAJOR] head/Header at offset")
	assert.Empty(t, otf.CriticalErrors())
	assert.Nil(t, otf.Head())
	assert.Len(t, otf.Table(T("head")).Binary(), 20)
	require.NotNil(t, otf.Post())
}

func TestParseRejectsTableBeyondFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	font := synthFont([]rawTable{
		{tag: "cmap", data: []byte{0, 0, 0, 0}},
		{tag: "name", data: []byte{0, 0, 0, 0}},
	}, 100)
	_, err := Parse(font)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "exceed font size")
	//
	_, err = Parse(font[:20]) // directory cut off
	assert.Error(t, err)
}

func TestSetTableRecordsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	otf, err := Parse(synthFont([]rawTable{{tag: "post", data: postV3()}}, 0))
	require.NoError(t, err)
	require.Empty(t, otf.Errors())
	require.NoError(t, otf.SetTable(T("post"), make([]byte, 8)))
	require.Len(t, otf.Errors(), 1)
	assert.Equal(t, T("post"), otf.Errors()[0].Table)
	assert.Nil(t, otf.Post())
	require.NoError(t, otf.SetTable(T("post"), postV3()))
	assert.NotNil(t, otf.Post())
	assert.Len(t, otf.Errors(), 1, "errors accumulate over the life of a font")
}

func TestFontWarningString(t *testing.T) {
	w := FontWarning{Table: T("cmap"), Issue: "table not aligned to four bytes", Offset: 78}
	assert.Equal(t, "[WARNING] cmap at offset 78: table not aligned to four bytes", w.String())
	w.Offset = 0
	assert.Equal(t, "[WARNING] cmap: table not aligned to four bytes", w.String())
	assert.Equal(t, "UNKNOWN", ErrorSeverity(7).String())
}
