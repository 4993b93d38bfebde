package otquery

import (
	"testing"

	"github.com/npillmayer/otrebuild/internal/fontload"
	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otplatform"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	f   *fontload.ScalableFont
	otf *ot.Font
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.query")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("otrebuild.query").SetTraceLevel(tracing.LevelError)
	var err error
	env.f, err = fontload.GoFont("Go-Bold")
	env.Require().NoError(err)
	env.otf, err = ot.Parse(env.f.Binary)
	env.Require().NoError(err)
	tracing.Select("otrebuild.query").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestFontTypeInfo() {
	env.Equal("TrueType", FontType(env.otf), "expected font type of test font to be TrueType")
	env.Equal("unknown", FontType(nil))
}

func (env *InfoTestEnviron) TestNameInfo() {
	info := NameInfo(env.otf)
	env.T().Logf("info = %v", info)
	family, err := env.f.SFNT.Name(nil, sfnt.NameIDFamily)
	env.Require().NoError(err)
	env.Equal(family, info[Family], "expected font family name from sfnt")
	env.Equal(env.f.Fontname, info[FullName])
	env.NotEmpty(info[Subfamily])
}

func (env *InfoTestEnviron) TestNamePlatforms() {
	counts := NamePlatforms(env.otf)
	winBMP := otplatform.PlatformEncoding{Platform: otplatform.PlatformIDWindows, Encoding: otplatform.EncodingIDWindowsBMP}
	env.Greater(counts[winBMP], 0, "expected Windows BMP names")
	n := 0
	for range NamesRange(env.otf) {
		n++
	}
	env.Greater(n, 0)
}

func (env *InfoTestEnviron) TestStyleInfo() {
	style, ok := Style(env.otf)
	env.Require().True(ok, "expected to decode style tables")
	env.Equal(uint16(700), style.WeightClass, "expected Go Bold to have weight class 700")
	env.Equal(env.otf.Head().MacStyle, style.MacStyle)
	_, ok = Style(nil)
	env.False(ok)
}

func (env *InfoTestEnviron) TestCmapInfo() {
	infos, err := CmapInfo(env.otf)
	env.Require().NoError(err)
	env.Require().NotEmpty(infos)
	found := false
	for _, info := range infos {
		env.T().Logf("cmap subtable %s", info)
		if info.Platform == 3 && info.Encoding == 1 {
			found = true
			env.Equal("Unicode BMP", info.Kind)
			env.Greater(info.Size, 0)
		}
	}
	env.True(found, "expected a Windows BMP subtable")
}
