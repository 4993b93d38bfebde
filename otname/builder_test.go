package otname

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/otrebuild/otplatform"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
)

var (
	macRoman = otplatform.PlatformEncoding{Platform: otplatform.PlatformIDMacintosh, Encoding: otplatform.EncodingIDMacRoman}
	winBMP   = otplatform.PlatformEncoding{Platform: otplatform.PlatformIDWindows, Encoding: otplatform.EncodingIDWindowsBMP}
	winFull  = otplatform.PlatformEncoding{Platform: otplatform.PlatformIDWindows, Encoding: otplatform.EncodingIDWindowsFull}
	winSym   = otplatform.PlatformEncoding{Platform: otplatform.PlatformIDWindows, Encoding: otplatform.EncodingIDWindowsSymbol}
	uniBMP   = otplatform.PlatformEncoding{Platform: otplatform.PlatformIDUnicode, Encoding: otplatform.EncodingIDUnicodeBMP}
	allCmaps = []otplatform.PlatformEncoding{macRoman, winSym, winBMP, winFull}
)

func TestFrenchFanOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	b := NewBuilder()
	require.True(t, b.AddName("Test", sfnt.NameIDFamily, "fr"))
	recs, warnings := b.Build(allCmaps)
	assert.Empty(t, warnings)
	var mac, win []Key
	for _, r := range recs {
		assert.Equal(t, "Test", r.Text)
		if r.IsMacintosh() {
			mac = append(mac, r.Key)
		} else if r.IsWindows() {
			win = append(win, r.Key)
		}
	}
	assert.Equal(t, []Key{{NameID: 1, PlatformID: 1, EncodingID: 0, LanguageID: 1}}, mac)
	lcids := otplatform.WinLangsForMac(1)
	require.Len(t, lcids, 2)
	assert.Len(t, win, 3*len(lcids))
	for _, enc := range []otplatform.EncodingID{0, 1, 10} {
		for _, lcid := range lcids {
			assert.True(t, b.Has(Key{NameID: 1, PlatformID: 3, EncodingID: enc, LanguageID: lcid}),
				"missing Windows record enc=%d lcid=0x%04X", enc, lcid)
		}
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	b := NewBuilder()
	assert.False(t, b.AddName("اختبار", sfnt.NameIDFamily, "ar"))
	assert.False(t, b.AddName("Test", sfnt.NameIDFamily, "xx-invalid-"))
	assert.False(t, b.AddMacNameEx("Test", sfnt.NameIDFamily, 4)) // Arabic
	assert.Equal(t, 0, b.Len())
}

func TestLaterWriteWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	b := NewBuilder()
	b.AddEngName("First", sfnt.NameIDFamily)
	b.AddEngName("Second", sfnt.NameIDFamily)
	b.AddName("Troisième", sfnt.NameIDFamily, "fr")
	b.AddName("Quatrième", sfnt.NameIDFamily, "fr-FR")
	recs, _ := b.Build(allCmaps)
	seen := make(map[Key]bool)
	for _, r := range recs {
		assert.False(t, seen[r.Key], "duplicate key %s", r.Key)
		seen[r.Key] = true
		switch r.LanguageID {
		case otplatform.MacLangEnglish, otplatform.WinLangEnUS:
			assert.Equal(t, "Second", r.Text)
		default:
			assert.Equal(t, "Quatrième", r.Text)
		}
	}
	assert.Len(t, recs, (1+3)+(1+6))
}

func TestBuildFollowsCmapCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	b := NewBuilder()
	b.AddEngName("Test", sfnt.NameIDFamily)
	b.AddNameEx("Unicode", sfnt.NameIDFamily, otplatform.PlatformIDUnicode, otplatform.EncodingIDUnicodeBMP, 0)
	tests := []struct {
		cmaps []otplatform.PlatformEncoding
		want  []Key
	}{
		{nil, []Key{
			{NameID: 1, PlatformID: 0, EncodingID: 3, LanguageID: 0},
		}},
		{[]otplatform.PlatformEncoding{uniBMP}, []Key{
			{NameID: 1, PlatformID: 1, EncodingID: 0, LanguageID: 0},
			{NameID: 1, PlatformID: 0, EncodingID: 3, LanguageID: 0},
		}},
		{[]otplatform.PlatformEncoding{winBMP, winFull}, []Key{
			{NameID: 1, PlatformID: 3, EncodingID: 1, LanguageID: 0x0409},
			{NameID: 1, PlatformID: 3, EncodingID: 10, LanguageID: 0x0409},
			{NameID: 1, PlatformID: 0, EncodingID: 3, LanguageID: 0},
		}},
	}
	for i, tc := range tests {
		recs, _ := b.Build(tc.cmaps)
		keys := make([]Key, len(recs))
		for j, r := range recs {
			keys[j] = r.Key
		}
		if diff := cmp.Diff(tc.want, keys); diff != "" {
			t.Errorf("case %d: unexpected records (-want +got):\n%s", i, diff)
		}
	}
}

func TestFamilyNameTruncation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	exact := "Ä" + strings.Repeat("a", 30)
	long := exact + "b"
	require.Equal(t, 31, len([]rune(exact)))
	//
	b := NewBuilder()
	b.AddEngName(exact, sfnt.NameIDFamily)
	recs, warnings := b.Build(allCmaps)
	assert.Empty(t, warnings)
	for _, r := range recs {
		assert.Equal(t, exact, r.Text)
	}
	b = NewBuilder()
	b.AddWinNameEx(long, sfnt.NameIDFamily, otplatform.WinLangEnUS)
	recs, warnings = b.Build(allCmaps)
	assert.Len(t, warnings, 3)
	for _, r := range recs {
		assert.Equal(t, exact, r.Text)
	}
}

func TestPostScriptNameTruncation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	exact := strings.Repeat("P", 63)
	b := NewBuilder()
	b.AddPostScriptName(exact)
	recs, warnings := b.Build(allCmaps)
	assert.Empty(t, warnings)
	assert.Equal(t, exact, recs[0].Text)
	//
	b.AddPostScriptName(exact + "Q")
	recs, warnings = b.Build(allCmaps)
	assert.Len(t, warnings, 4) // Macintosh and three Windows encodings
	for _, r := range recs {
		assert.Equal(t, exact, r.Text)
	}
}

func TestPostScriptNameSanitized(t *testing.T) {
	assert.Equal(t, "My-Font-Bold", SanitizePostScriptName("My (Font)  Bold"))
	assert.Equal(t, "AB", SanitizePostScriptName("A[/%]{<>}B"))
}

func TestStripUnencodableMacChars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	b := NewBuilder()
	b.AddEngName("Fönt中文X→", sfnt.NameIDFull)
	recs, warnings := b.Build(allCmaps)
	assert.Len(t, warnings, 1)
	for _, r := range recs {
		if r.IsMacintosh() {
			assert.Equal(t, "FöntX", r.Text)
		} else {
			assert.Equal(t, "Fönt中文X→", r.Text)
		}
	}
}

func TestPSCIDFindfontPerMacEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	b := NewBuilder()
	b.AddEngName("Test", sfnt.NameIDFamily)
	b.AddName("テスト", sfnt.NameIDFamily, "ja")
	require.True(t, b.AddPSCIDFFName("Test CID"))
	recs, _ := b.Build([]otplatform.PlatformEncoding{macRoman})
	var cid []Key
	for _, r := range recs {
		if r.NameID == NameIDPSCIDFindfont {
			assert.Equal(t, "Test-CID", r.Text)
			cid = append(cid, r.Key)
		}
	}
	assert.Equal(t, []Key{
		{NameID: 20, PlatformID: 1, EncodingID: otplatform.EncodingIDMacRoman, LanguageID: 0xFFFF},
		{NameID: 20, PlatformID: 1, EncodingID: otplatform.EncodingIDMacJapanese, LanguageID: 0xFFFF},
	}, cid)
}

func TestConvertWinLegacy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	b := NewBuilder()
	b.AddNameEx("ゴシック", sfnt.NameIDFamily, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsShiftJIS, 0x0411)
	b.AddNameEx("Orphan", sfnt.NameIDFamily, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsBig5, 0x7FFF)
	assert.False(t, b.ConvertWinLegacy())
	mac, ok := b.Get(Key{NameID: 1, PlatformID: 1, EncodingID: otplatform.EncodingIDMacJapanese, LanguageID: 11})
	require.True(t, ok)
	assert.Equal(t, "ゴシック", mac.Text)
	assert.True(t, b.Has(Key{NameID: 1, PlatformID: 3, EncodingID: 1, LanguageID: 0x0411}))
	assert.True(t, b.Has(Key{NameID: 1, PlatformID: 3, EncodingID: 2, LanguageID: 0x0411}))
	recs, _ := b.Build([]otplatform.PlatformEncoding{winBMP})
	assert.Len(t, recs, 1)
}

func TestFixedIDHelpers(t *testing.T) {
	b := NewBuilder()
	b.AddStylelink(StyleLinkBoldItalic)
	b.AddVersionString("Version 2")
	b.AddVersion(-1.5)
	b.AddFontUniqueID("Test; Version 1.50")
	sub, _ := b.Get(Key{NameID: 2, PlatformID: 3, EncodingID: 1, LanguageID: 0x0409})
	assert.Equal(t, "Bold Italic", sub.Text)
	b.AddStylelink(StyleLinkNone)
	sub, _ = b.Get(Key{NameID: 2, PlatformID: 1, EncodingID: 0, LanguageID: 0})
	assert.Equal(t, "Regular", sub.Text)
	ver, _ := b.Get(Key{NameID: 5, PlatformID: 1, EncodingID: 0, LanguageID: 0})
	assert.Equal(t, "Version 1.50", ver.Text)
	assert.True(t, b.AddMacCompatibleFullEx("Test Bold", 0))
	assert.False(t, b.Has(Key{NameID: 18, PlatformID: 3, EncodingID: 1, LanguageID: 0x0409}))
}

func TestRecordSetLaterWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.name")
	defer teardown()
	//
	set := NewRecordSet()
	win := func(text string, id sfnt.NameID) Record {
		return NewRecord(text, id, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsBMP, 0x0409)
	}
	mac := NewRecord("Mac", sfnt.NameIDFamily, otplatform.PlatformIDMacintosh, otplatform.EncodingIDMacRoman, 0)
	assert.False(t, set.Put(win("First", sfnt.NameIDFamily)))
	assert.False(t, set.Put(win("Bold", sfnt.NameIDSubfamily)))
	assert.False(t, set.Put(mac))
	assert.True(t, set.Put(win("Second", sfnt.NameIDFamily)))
	assert.Equal(t, 3, set.Len())
	r, ok := set.Get(win("", sfnt.NameIDFamily).Key)
	require.True(t, ok)
	assert.Equal(t, "Second", r.Text)
	//
	var texts []string
	for _, r := range set.Records() {
		texts = append(texts, r.Text)
	}
	if diff := cmp.Diff([]string{"Mac", "Second", "Bold"}, texts); diff != "" {
		t.Errorf("records out of key order (-want +got):\n%s", diff)
	}
	set.Remove(mac.Key)
	assert.False(t, set.Has(mac.Key))
}
