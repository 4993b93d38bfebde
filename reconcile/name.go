package reconcile

import (
	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otcmap"
	"github.com/npillmayer/otrebuild/otname"
	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

// Windows encodings a Macintosh record is converted to.
var winEncodings = []otplatform.EncodingID{
	otplatform.EncodingIDWindowsSymbol,
	otplatform.EncodingIDWindowsBMP,
	otplatform.EncodingIDWindowsFull,
}

// BuildNameTable filters and completes name records for a font with the
// given 'cmap' subtables: records are emitted only for platforms the
// subtables serve, PostScript CID findfont names are generated for every
// Macintosh encoding in use, and over-long or unencodable strings are cut.
// Records with equal keys overwrite each other, the later one wins.
func BuildNameTable(records []otname.Record, cmap []otcmap.Subtable) ([]otname.Record, []ot.FontWarning) {
	b := otname.NewBuilder()
	b.AddPSCIDFFNameFromRecords(records)
	for _, r := range records {
		if r.NameID == otname.NameIDPSCIDFindfont {
			continue
		}
		b.AddRecord(r)
	}
	return b.Build(otcmap.Coverage(cmap))
}

// FixNameRecords makes name records consistent across platforms and with
// the 'cmap' subtables of a font.
//
// Records in supported languages are converted between platforms: Windows
// records to Macintosh records of the corresponding language, and
// Macintosh records to Windows records of all corresponding languages, each
// in the encodings Symbol, BMP and full repertoire. A conversion never
// replaces an existing record. Records which cannot be decoded or are in an
// unsupported language are kept as they are.
//
// The PostScript name is taken from psName if present, else from the
// English records.
func FixNameRecords(records []otname.Record, cmap []otcmap.Subtable, psName ot.Option[string]) ([]otname.Record, []ot.FontWarning) {
	b := otname.NewBuilder()
	if name, ok := psName.Unwrap(); ok && name != "" {
		b.AddPostScriptName(name)
	} else {
		b.AddPostScriptNameFromRecords(records)
	}
	b.AddPSCIDFFNameFromRecords(records)
	var mac, win, unsupported []otname.Record
	var warnings []ot.FontWarning
	for _, r := range records {
		switch {
		case r.IsRaw():
			warnings = append(warnings, warning("name", "%s cannot be decoded, kept as is", r.Key))
			unsupported = append(unsupported, r)
		case r.NameID == sfnt.NameIDPostScript || r.NameID == otname.NameIDPSCIDFindfont:
			continue
		case r.IsMacintosh() && otplatform.HasWinLangs(r.LanguageID):
			mac = append(mac, r)
			b.AddRecord(r)
		case r.IsWindows() && hasMacLang(r.LanguageID):
			win = append(win, r)
			b.AddRecord(r)
		default:
			tracer().Debugf("%s in unsupported language, kept as is", r.Key)
			unsupported = append(unsupported, r)
		}
	}
	for _, r := range win {
		if r.NameID == sfnt.NameIDTypographicFamily || r.NameID == sfnt.NameIDTypographicSubfamily {
			continue // Macintosh uses IDs 1 and 2 only
		}
		macLang, _ := otplatform.MacLangForWin(r.LanguageID)
		enc, ok := otplatform.MacEncoding(macLang)
		if !ok {
			continue
		}
		k := otname.Key{NameID: r.NameID, PlatformID: otplatform.PlatformIDMacintosh, EncodingID: enc, LanguageID: macLang}
		if !b.Has(k) {
			b.AddMacNameEx(r.Text, r.NameID, macLang)
		}
	}
	for _, r := range mac {
		if r.NameID == otname.NameIDMacCompatibleFull {
			continue
		}
		for _, lcid := range otplatform.WinLangsForMac(r.LanguageID) {
			for _, enc := range winEncodings {
				k := otname.Key{NameID: r.NameID, PlatformID: otplatform.PlatformIDWindows, EncodingID: enc, LanguageID: lcid}
				if !b.Has(k) {
					b.AddNameEx(r.Text, r.NameID, otplatform.PlatformIDWindows, enc, lcid)
				}
			}
		}
	}
	result, w := b.Build(otcmap.Coverage(cmap))
	warnings = append(warnings, w...)
	present := make(map[otname.Key]bool, len(result))
	for _, r := range result {
		present[r.Key] = true
	}
	for _, r := range unsupported {
		if !present[r.Key] {
			present[r.Key] = true
			result = append(result, r)
		}
	}
	return result, warnings
}

func hasMacLang(lcid uint16) bool {
	_, ok := otplatform.MacLangForWin(lcid)
	return ok
}

// FixName rewrites the 'name' table of a font with FixNameRecords against
// the font's current 'cmap' table. The PostScript name of a CFF font is
// taken from the CFF table.
func FixName(otf *ot.Font) ([]ot.FontWarning, error) {
	records, warnings, err := readNames(otf)
	if err != nil {
		return warnings, err
	}
	cmap, err := readCmap(otf)
	if err != nil {
		return warnings, err
	}
	psName := ot.None[string]()
	if top, ok := otf.CFF().Unwrap(); ok {
		psName = ot.Some(top.FontName)
	}
	records, w := FixNameRecords(records, cmap, psName)
	warnings = append(warnings, w...)
	w, err = writeNames(otf, records)
	return append(warnings, w...), err
}
