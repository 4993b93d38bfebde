package otquery

import (
	"iter"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otname"
	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

// NamesRange yields the decoded records of a font's 'name' table. Records
// which cannot be decoded are skipped.
func NamesRange(otf *ot.Font) iter.Seq2[otname.Key, string] {
	records := names(otf)
	return func(yield func(otname.Key, string) bool) {
		for _, r := range records {
			if r.IsRaw() {
				continue
			}
			if !yield(r.Key, r.Text) {
				return
			}
		}
	}
}

func names(otf *ot.Font) []otname.Record {
	if otf == nil {
		return nil
	}
	table := otf.Table(ot.T("name"))
	if table == nil {
		tracer().Debugf("no name table found in font")
		return nil
	}
	records, _, err := otname.Decode(table.Binary())
	if err != nil {
		tracer().Debugf("name table cannot be decoded: %v", err)
		return nil
	}
	return records
}

// Keys of the NameInfo map.
const (
	Family            = "family"
	Subfamily         = "subfamily"
	FullName          = "full-name"
	Version           = "version"
	PostScriptName    = "postscript-name"
	TypoFamily        = "typographic-family"
	TypoSubfamily     = "typographic-subfamily"
	MacCompatibleFull = "mac-compatible-full-name"
)

var nameInfoIDs = map[sfnt.NameID]string{
	sfnt.NameIDFamily:               Family,
	sfnt.NameIDSubfamily:            Subfamily,
	sfnt.NameIDFull:                 FullName,
	sfnt.NameIDVersion:              Version,
	sfnt.NameIDPostScript:           PostScriptName,
	sfnt.NameIDTypographicFamily:    TypoFamily,
	sfnt.NameIDTypographicSubfamily: TypoSubfamily,
	otname.NameIDMacCompatibleFull:  MacCompatibleFull,
}

// NameInfo returns the English names of a font. Windows (US English) names
// take precedence over Macintosh names.
func NameInfo(otf *ot.Font) map[string]string {
	info := make(map[string]string)
	fromWin := make(map[string]bool)
	for k, text := range NamesRange(otf) {
		key, ok := nameInfoIDs[k.NameID]
		if !ok {
			continue
		}
		switch {
		case k.PlatformID == otplatform.PlatformIDWindows && k.LanguageID == otplatform.WinLangEnUS:
			if !fromWin[key] {
				info[key] = text
				fromWin[key] = true
			}
		case k.PlatformID == otplatform.PlatformIDMacintosh && k.LanguageID == otplatform.MacLangEnglish:
			if _, ok := info[key]; !ok {
				info[key] = text
			}
		}
	}
	return info
}

// NamePlatforms counts the name records per platform/encoding pair.
func NamePlatforms(otf *ot.Font) map[otplatform.PlatformEncoding]int {
	counts := make(map[otplatform.PlatformEncoding]int)
	for _, r := range names(otf) {
		counts[otplatform.PlatformEncoding{Platform: r.PlatformID, Encoding: r.EncodingID}]++
	}
	return counts
}
