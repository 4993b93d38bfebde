package otname

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/otrebuild/otplatform"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
)

func TestEncodeDecodeName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	raw := Record{Key: Key{NameID: 1, PlatformID: 3, EncodingID: 1, LanguageID: 0x0407}, Raw: []byte{0, 'A', 0}}
	recs := []Record{
		NewRecord("Test", sfnt.NameIDFamily, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsBMP, 0x0409),
		NewRecord("Café", sfnt.NameIDFamily, otplatform.PlatformIDMacintosh, otplatform.EncodingIDMacRoman, 0),
		NewRecord("Test", sfnt.NameIDFamily, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsFull, 0x0409),
		raw,
	}
	data, skipped, err := Encode(recs)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, uint16(4), binary.BigEndian.Uint16(data[2:4]))
	storage := data[binary.BigEndian.Uint16(data[4:6]):]
	assert.Len(t, storage, 4+8+3, "identical strings share storage")
	//
	decoded, warnings, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, warnings, 1, "raw record cannot be decoded")
	want := []Record{recs[1], raw, recs[0], recs[2]}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Errorf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestEncodeSkipsUnencodable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	recs := []Record{
		NewRecord("中文", sfnt.NameIDFamily, otplatform.PlatformIDMacintosh, otplatform.EncodingIDMacRoman, 0),
		NewRecord("OK", sfnt.NameIDFamily, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsBMP, 0x0409),
	}
	data, skipped, err := Encode(recs)
	require.NoError(t, err)
	assert.Equal(t, []Key{recs[0].Key}, skipped)
	decoded, _, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "OK", decoded[0].Text)
}

func TestDecodeRejectsBrokenTables(t *testing.T) {
	_, _, err := Decode([]byte{0, 0, 0})
	assert.ErrorIs(t, err, ErrNameTable)
	_, _, err = Decode([]byte{0, 0, 0, 9, 0, 6})
	assert.ErrorIs(t, err, ErrNameTable)
	_, _, err = Decode([]byte{0, 2, 0, 0, 0, 6})
	assert.ErrorIs(t, err, ErrNameTable)
}

func TestDecodeFormat1SkipsLanguageTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	data := []byte{
		0, 1, 0, 2, 0, 32, // format 1, 2 records, storage at 32
		0, 3, 0, 1, 0x80, 0x00, 0, 1, 0, 2, 0, 0, // language-tag record
		0, 3, 0, 1, 0x04, 0x09, 0, 1, 0, 2, 0, 0,
		0, 0, // no language tags
		0, 'X',
	}
	recs, warnings, err := Decode(data)
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	require.Len(t, recs, 1)
	assert.Equal(t, "X", recs[0].Text)
	assert.Equal(t, uint16(0x0409), recs[0].LanguageID)
}
