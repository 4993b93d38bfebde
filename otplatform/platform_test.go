package otplatform

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacLangForTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.platform")
	defer teardown()
	//
	tests := []struct {
		tag  string
		lang uint16
		ok   bool
	}{
		{"en", 0, true},
		{"fr", 1, true},
		{"fr-CA", 1, true},
		{"de-AT", 2, true},
		{"es", 6, true},
		{"et", 27, true},
		{"nl-BE", 34, true},
		{"zh-Hant", 19, true},
		{"zh-TW", 19, true},
		{"zh", 33, true},
		{"ja-JP", 11, true},
		{"ru", 32, true},
		{"el", 0, false}, // no Mac Greek codec
		{"ar", 0, false},
		{"he-IL", 0, false},
		{"tl", 0, false},
		{"not a tag", 0, false},
	}
	for _, tc := range tests {
		lang, ok := MacLangForTag(tc.tag)
		assert.Equal(t, tc.ok, ok, "tag %q", tc.tag)
		if tc.ok {
			assert.Equal(t, tc.lang, lang, "tag %q", tc.tag)
		}
	}
}

func TestLanguageTablesConsistent(t *testing.T) {
	for lcid, mac := range winLangToMac {
		assert.True(t, IsSupportedMacLang(mac), "LCID 0x%04X maps to unsupported Mac language %d", lcid, mac)
	}
	for mac, lcids := range macLangToWin {
		assert.True(t, IsSupportedMacLang(mac), "Mac language %d has no script", mac)
		for _, lcid := range lcids {
			back, ok := MacLangForWin(lcid)
			assert.True(t, ok, "LCID 0x%04X not mapped back", lcid)
			assert.Equal(t, mac, back, "LCID 0x%04X", lcid)
		}
	}
	for tag, mac := range langTagToMac {
		assert.True(t, HasWinLangs(mac), "tag %q has no Windows fan-out", tag)
	}
	for mac := range unsupportedMacLangToEncoding {
		assert.False(t, IsSupportedMacLang(mac), "Mac language %d listed twice", mac)
	}
}

func TestFrenchFanOut(t *testing.T) {
	assert.Equal(t, []uint16{0x040C, 0x0C0C}, WinLangsForMac(1))
	enc, ok := MacEncoding(1)
	require.True(t, ok)
	assert.Equal(t, EncodingIDMacRoman, enc)
	assert.Nil(t, WinLangsForMac(29)) // Sami
}

func TestEncodeMacRoman(t *testing.T) {
	b, err := EncodeMac("Café", EncodingIDMacRoman)
	require.NoError(t, err)
	assert.Equal(t, []byte{'C', 'a', 'f', 0x8E}, b)
	s, err := DecodeMac(b, EncodingIDMacRoman)
	require.NoError(t, err)
	assert.Equal(t, "Café", s)
}

func TestUnencodableSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.platform")
	defer teardown()
	//
	_, err := EncodeMac("ab中文cd→", EncodingIDMacRoman)
	var uerr *UnencodableError
	require.True(t, errors.As(err, &uerr), "expected UnencodableError, got %v", err)
	assert.Equal(t, 2, uerr.Start)
	assert.Equal(t, 4, uerr.End)
	_, err = EncodeMac("Привет", EncodingIDMacCyrillic)
	assert.NoError(t, err)
	_, err = EncodeMac("日本語", EncodingIDMacJapanese)
	assert.NoError(t, err)
}

func TestMacCentralEuropean(t *testing.T) {
	b, err := EncodeMac("Łódź", EncodingIDMacCentralEuroRoman)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFC, 0x97, 'd', 0x90}, b)
	s, err := DecodeMac(b, EncodingIDMacCentralEuroRoman)
	require.NoError(t, err)
	assert.Equal(t, "Łódź", s)
	_, err = EncodeMac("ß€", EncodingIDMacCentralEuroRoman)
	var uerr *UnencodableError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, 1, uerr.Start)
}

func TestWindowsCodecs(t *testing.T) {
	b, err := EncodeWin("Aé", EncodingIDWindowsBMP)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 'A', 0, 0xE9}, b)
	b, err = EncodeWin("𝔄", EncodingIDWindowsFull)
	require.NoError(t, err)
	assert.Len(t, b, 4)
	_, err = DecodeWin([]byte{0, 'A', 0}, EncodingIDWindowsBMP)
	assert.ErrorIs(t, err, ErrUndecodable)
	_, err = DecodeWin([]byte{0x88, 0xA0}, EncodingIDWindowsJohab)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	s, err := DecodeName([]byte{0, 'O', 0, 'K'}, PlatformIDUnicode, EncodingIDUnicodeBMP)
	require.NoError(t, err)
	assert.Equal(t, "OK", s)
}

func TestMacRomanCodePage(t *testing.T) {
	assert.Equal(t, 'Å', MacRomanToUnicode(0x81))
	assert.Equal(t, 'À', MacRomanToUnicode(0xCB))
	assert.Equal(t, 'A', MacRomanToUnicode(0x41))
	b, ok := UnicodeToMacRoman('Å')
	assert.True(t, ok)
	assert.Equal(t, byte(0x81), b)
	_, ok = UnicodeToMacRoman('中')
	assert.False(t, ok)
}
