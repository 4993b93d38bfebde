package otplatform

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// PlatformID is the platform identifier of name records and cmap subtables.
type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDWindows   PlatformID = 3
)

func (p PlatformID) String() string {
	switch p {
	case PlatformIDUnicode:
		return "Unicode"
	case PlatformIDMacintosh:
		return "Macintosh"
	case PlatformIDWindows:
		return "Windows"
	}
	return fmt.Sprintf("Platform(%d)", uint16(p))
}

// EncodingID is a platform specific encoding identifier.
type EncodingID uint16

// Unicode platform encodings.
const (
	EncodingIDUnicodeBMP          EncodingID = 3
	EncodingIDUnicodeFull         EncodingID = 4
	EncodingIDUnicodeVariation    EncodingID = 5
	EncodingIDUnicodeFullCoverage EncodingID = 6
)

// Windows platform encodings.
const (
	EncodingIDWindowsSymbol   EncodingID = 0 // symbol fonts are not supported
	EncodingIDWindowsBMP      EncodingID = 1
	EncodingIDWindowsShiftJIS EncodingID = 2
	EncodingIDWindowsPRC      EncodingID = 3
	EncodingIDWindowsBig5     EncodingID = 4
	EncodingIDWindowsWansung  EncodingID = 5
	EncodingIDWindowsJohab    EncodingID = 6
	EncodingIDWindowsFull     EncodingID = 10
)

// Macintosh platform encodings (script codes).
const (
	EncodingIDMacRoman            EncodingID = 0
	EncodingIDMacJapanese         EncodingID = 1
	EncodingIDMacTradChinese      EncodingID = 2
	EncodingIDMacKorean           EncodingID = 3
	EncodingIDMacCyrillic         EncodingID = 7
	EncodingIDMacSimpChinese      EncodingID = 25
	EncodingIDMacCentralEuroRoman EncodingID = 29
)

const (
	MacLangEnglish uint16 = 0      // Macintosh English
	WinLangEnUS    uint16 = 0x0409 // Windows English (United States)
	MacLangAny     uint16 = 0xFFFF // used for PostScript CID findfont names
)

// PlatformEncoding names a platform/encoding pair.
type PlatformEncoding struct {
	Platform PlatformID
	Encoding EncodingID
}

// IsWindowsUnicode reports whether enc is one of the Unicode-based Windows
// encodings: Symbol, BMP or full repertoire.
func IsWindowsUnicode(enc EncodingID) bool {
	return enc == EncodingIDWindowsSymbol || enc == EncodingIDWindowsBMP ||
		enc == EncodingIDWindowsFull
}

// IsWindowsLegacy reports whether enc is a Windows code page encoding.
func IsWindowsLegacy(enc EncodingID) bool {
	return enc >= EncodingIDWindowsShiftJIS && enc <= EncodingIDWindowsJohab
}

// --- Language lookups ------------------------------------------------------

// MacLangForTag resolves a BCP-47 language tag to a Macintosh language code.
// Tags not listed verbatim are canonicalized and matched by language and
// script, then by language alone. It fails for unknown and for unsupported
// languages.
func MacLangForTag(tag string) (uint16, bool) {
	if lang, ok := langTagToMac[tag]; ok {
		return lang, IsSupportedMacLang(lang)
	}
	if _, ok := unsupportedLangTagToMac[tag]; ok {
		return 0, false
	}
	t, err := language.Parse(tag)
	if err != nil {
		tracer().Debugf("cannot parse language tag %q: %v", tag, err)
		return 0, false
	}
	base, _ := t.Base()
	script, _ := t.Script()
	region, conf := t.Region()
	candidates := []string{t.String()}
	if conf == language.Exact {
		candidates = append(candidates, base.String()+"-"+region.String())
	}
	candidates = append(candidates, base.String()+"-"+script.String(), base.String())
	for _, c := range candidates {
		if _, ok := unsupportedLangTagToMac[c]; ok {
			return 0, false
		}
		if lang, ok := langTagToMac[c]; ok {
			return lang, IsSupportedMacLang(lang)
		}
	}
	return 0, false
}

// IsUnsupportedLangTag reports whether tag is a known language which cannot
// be used for name records.
func IsUnsupportedLangTag(tag string) bool {
	_, ok := unsupportedLangTagToMac[tag]
	return ok
}

// IsSupportedMacLang reports whether a Macintosh language has a script with
// an available codec.
func IsSupportedMacLang(macLang uint16) bool {
	_, ok := macLangToEncoding[macLang]
	return ok
}

// MacEncoding returns the Macintosh script code a Macintosh language is
// written in.
func MacEncoding(macLang uint16) (EncodingID, bool) {
	enc, ok := macLangToEncoding[macLang]
	return EncodingID(enc), ok
}

// UnsupportedMacEncoding returns the Macintosh script code of a language
// listed as unsupported.
func UnsupportedMacEncoding(macLang uint16) (EncodingID, bool) {
	enc, ok := unsupportedMacLangToEncoding[macLang]
	return EncodingID(enc), ok
}

// WinLangsForMac returns the Windows LCIDs a Macintosh language fans out to.
// The result is nil if the Macintosh language has no Windows counterpart.
func WinLangsForMac(macLang uint16) []uint16 {
	return slices.Clone(macLangToWin[macLang])
}

// HasWinLangs reports whether a Macintosh language has Windows counterparts.
func HasWinLangs(macLang uint16) bool {
	_, ok := macLangToWin[macLang]
	return ok
}

// MacLangForWin maps a Windows LCID to its Macintosh language code.
func MacLangForWin(lcid uint16) (uint16, bool) {
	lang, ok := winLangToMac[lcid]
	return lang, ok
}
