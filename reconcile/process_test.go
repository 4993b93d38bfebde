package reconcile

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/otrebuild/internal/fontload"
	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otcmap"
	"github.com/npillmayer/otrebuild/otconfig"
	"github.com/npillmayer/otrebuild/otname"
	"github.com/npillmayer/otrebuild/otplatform"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type FontTestEnviron struct {
	suite.Suite
}

func TestFontSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.reconcile")
	defer teardown()
	suite.Run(t, new(FontTestEnviron))
}

func (env *FontTestEnviron) SetupSuite() {
	tracing.Select("otrebuild.reconcile").SetTraceLevel(tracing.LevelInfo)
}

// load returns a fresh copy of a Go font.
func (env *FontTestEnviron) load(name string) (*fontload.ScalableFont, *ot.Font) {
	f, err := fontload.GoFont(name)
	env.Require().NoError(err)
	otf, err := ot.Parse(f.Binary)
	env.Require().NoError(err)
	return f, otf
}

// reload writes a font and parses the result with package sfnt.
func (env *FontTestEnviron) reload(otf *ot.Font) *sfnt.Font {
	data, err := otf.Bytes()
	env.Require().NoError(err)
	f, err := fontload.ParseOpenTypeFont(data)
	env.Require().NoError(err)
	_, err = ot.Parse(data)
	env.Require().NoError(err)
	return f.SFNT
}

func (env *FontTestEnviron) names(otf *ot.Font) []otname.Record {
	records, _, err := readNames(otf)
	env.Require().NoError(err)
	return records
}

func (env *FontTestEnviron) hasName(records []otname.Record, k otname.Key, text string) {
	r, ok := findRecord(records, k)
	if env.True(ok, "missing %s", k) {
		env.Equal(text, r.Text, "text of %s", k)
	}
}

// --- Tests -----------------------------------------------------------------

func (env *FontTestEnviron) TestInitAcceptsGoFont() {
	_, otf := env.load("Go-Regular")
	env.Require().NoError(RebuildDSIG(otf))
	skip, warnings, err := Init(otf, DefaultJobs())
	env.Require().NoError(err)
	env.Empty(warnings)
	env.True(skip.Has(SkipFromCFF))
	env.False(skip.Has(SkipFixName))
	env.False(otf.HasTable(tagDSIG), "signature must be removed")
}

func (env *FontTestEnviron) TestInitRejectsFonts() {
	_, otf := env.load("Go-Regular")
	otf.RemoveTable(ot.T("hmtx"))
	_, _, err := Init(otf, DefaultJobs())
	env.True(errors.Is(err, ErrMissingTables), "expected missing tables, have %v", err)
	//
	_, otf = env.load("Go-Regular")
	env.Require().NoError(otf.SetTable(ot.T("fvar"), []byte{0, 1, 0, 0}))
	_, _, err = Init(otf, DefaultJobs())
	env.True(errors.Is(err, ErrVariableFont), "expected variable font, have %v", err)
	//
	_, otf = env.load("Go-Regular")
	symbol := subtable(otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsSymbol, otcmap.FormatSegmentDelta,
		map[uint32]sfnt.GlyphIndex{0xF041: 1})
	env.Require().NoError(writeCmap(otf, []otcmap.Subtable{symbol}))
	_, _, err = Init(otf, DefaultJobs())
	env.True(errors.Is(err, ErrSymbolFont), "expected symbol font, have %v", err)
}

func (env *FontTestEnviron) TestInitCreatesName() {
	_, otf := env.load("Go-Bold")
	_, err := FixCmap(otf, DefaultJobs())
	env.Require().NoError(err)
	otf.Head().SetMacStyle(ot.MacStyleBold)
	otf.RemoveTable(tagName)
	skip, warnings, err := Init(otf, DefaultJobs())
	env.Require().NoError(err)
	env.NotEmpty(warnings)
	env.True(skip.Has(SkipFixName))
	records := env.names(otf)
	en := func(id sfnt.NameID) otname.Key {
		return winKey(id, otplatform.EncodingIDWindowsBMP, otplatform.WinLangEnUS)
	}
	env.hasName(records, en(sfnt.NameIDFamily), "Untitled Font")
	env.hasName(records, en(sfnt.NameIDSubfamily), "Bold")
	env.hasName(records, en(sfnt.NameIDFull), "Untitled Font Bold")
	env.hasName(records, en(sfnt.NameIDPostScript), "UntitledFont-Bold")
	env.hasName(records, macKey(sfnt.NameIDFamily, otplatform.MacLangEnglish), "Untitled Font")
}

func (env *FontTestEnviron) TestFixTables() {
	_, otf := env.load("Go-Regular")
	otf.OS2().SetWeightClass(0)
	otf.OS2().SetWidthClass(12)
	otf.OS2().SetFsType(0xFFFF)
	otf.Head().SetMagic(0)
	FixHead(otf)
	FixHhea(otf)
	FixOS2(otf)
	env.Equal(ot.HeadMagic, otf.Head().Magic)
	env.Equal(uint16(400), otf.OS2().WeightClass)
	env.Equal(uint16(5), otf.OS2().WidthClass)
	env.Equal(uint16(0b1110), otf.OS2().FsType)
	env.Equal(uint32(0x00010000), otf.HHea().Version)
}

func (env *FontTestEnviron) TestProcessGoFont() {
	f, otf := env.load("Go-Regular")
	family, err := f.SFNT.Name(nil, sfnt.NameIDFamily)
	env.Require().NoError(err)
	_, err = Process(otf, DefaultJobs(), nil)
	env.Require().NoError(err)
	cmap, err := readCmap(otf)
	env.Require().NoError(err)
	pes := otcmap.Coverage(cmap)
	env.Contains(pes, peMacRoman)
	env.Contains(pes, peWinBMP)
	env.Contains(pes, peUniBMP)
	records := env.names(otf)
	env.hasName(records, macKey(sfnt.NameIDFamily, otplatform.MacLangEnglish), family)
	sf := env.reload(otf)
	reread, err := sf.Name(nil, sfnt.NameIDFamily)
	env.Require().NoError(err)
	env.Equal(family, reread)
	var buf sfnt.Buffer
	gid, err := sf.GlyphIndex(&buf, 'A')
	env.Require().NoError(err)
	env.NotZero(gid)
}

func (env *FontTestEnviron) TestProcessRebuildMapping() {
	_, otf := env.load("Go-Mono")
	jobs := DefaultJobs()
	jobs.FixCmap, jobs.RebuildCmap, jobs.RebuildDSIG = false, true, true
	_, err := Process(otf, jobs, nil)
	env.Require().NoError(err)
	cmap, err := readCmap(otf)
	env.Require().NoError(err)
	for _, s := range cmap {
		env.False(s.IsMacRoman(), "Macintosh Roman subtable survived a rebuild")
	}
	env.Contains(otcmap.Coverage(cmap), peWinBMP)
	env.Equal(dummyDSIG, otf.Table(tagDSIG).Binary())
	env.reload(otf)
}

const testConfig = `
general:
  version: 2.5
  embeddingRestriction: 1
style:
  styleLink: 2
  weightScale: 7
metrics:
  typoAscender: 900
name:
  en:
    fontFamily: Tester
    distributorID: "N-P"
    designer: Jane Doe
  fr:
    fontFamily: Testeur
  xx:
    fontFamily: Nobody
`

func (env *FontTestEnviron) TestRebuildByConfig() {
	_, otf := env.load("Go-Regular")
	cfg, err := otconfig.Parse([]byte(testConfig))
	env.Require().NoError(err)
	_, err = FixCmap(otf, DefaultJobs())
	env.Require().NoError(err)
	warnings, err := RebuildByConfig(otf, cfg)
	env.Require().NoError(err)
	unsupported := 0
	for _, w := range warnings {
		if strings.Contains(w.Issue, `"xx"`) {
			unsupported++
		}
	}
	env.Equal(1, unsupported, "language xx is not supported")
	//
	env.NotZero(otf.Head().MacStyle & ot.MacStyleBold)
	env.Equal(2.5, otf.Head().FontRevision)
	os2 := otf.OS2()
	env.Equal(uint16(700), os2.WeightClass)
	env.Equal(uint16(8), os2.FsType)
	env.Equal("NP  ", os2.VendorID)
	env.Equal(int16(900), os2.TypoAscender)
	env.NotZero(os2.FsSelection & ot.FsSelectionBold)
	env.Zero(os2.FsSelection & ot.FsSelectionItalic)
	env.Equal(0.0, otf.Post().ItalicAngle)
	//
	records := env.names(otf)
	en := func(id sfnt.NameID) otname.Key {
		return winKey(id, otplatform.EncodingIDWindowsBMP, otplatform.WinLangEnUS)
	}
	env.hasName(records, en(sfnt.NameIDFamily), "Tester")
	env.hasName(records, en(sfnt.NameIDSubfamily), "Bold")
	env.hasName(records, en(sfnt.NameIDTypographicFamily), "Tester")
	env.hasName(records, en(sfnt.NameIDTypographicSubfamily), "B")
	env.hasName(records, en(sfnt.NameIDFull), "Tester B")
	env.hasName(records, en(sfnt.NameIDVersion), "Version 2.50")
	env.hasName(records, en(sfnt.NameIDPostScript), "Tester-B")
	env.hasName(records, en(sfnt.NameIDDesigner), "Jane Doe")
	env.hasName(records, macKey(sfnt.NameIDSubfamily, otplatform.MacLangEnglish), "B")
	fr := winKey(sfnt.NameIDFamily, otplatform.EncodingIDWindowsBMP, 0x040C)
	env.hasName(records, fr, "Testeur")
	env.hasName(records, winKey(sfnt.NameIDSubfamily, otplatform.EncodingIDWindowsBMP, 0x040C), "Bold")
	env.hasName(records, macKey(sfnt.NameIDFamily, 1), "Testeur")
	env.hasName(records, macKey(sfnt.NameIDPostScript, 1), "Tester-B")
	env.reload(otf)
}

func (env *FontTestEnviron) TestAddMacOffice() {
	_, otf := env.load("Go-Italic")
	jobs := DefaultJobs()
	jobs.RebuildMacOffice = true
	_, err := Process(otf, jobs, nil)
	env.Require().NoError(err)
	cmap, err := readCmap(otf)
	env.Require().NoError(err)
	env.NotContains(otcmap.Coverage(cmap), peMacRoman)
	env.hasName(env.names(otf), macKey(sfnt.NameIDSubfamily, otplatform.MacLangEnglish), "Italic Regular")
}

func (env *FontTestEnviron) TestRebuildDSIG() {
	_, otf := env.load("Go-Regular")
	env.Require().NoError(RebuildDSIG(otf))
	env.True(otf.HasTable(tagDSIG))
	data, err := otf.Bytes()
	env.Require().NoError(err)
	reparsed, err := ot.Parse(data)
	env.Require().NoError(err)
	env.Equal(dummyDSIG, reparsed.Table(tagDSIG).Binary())
}
