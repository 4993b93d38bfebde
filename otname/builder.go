package otname

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

// Frequently used name IDs without a constant in package sfnt.
const (
	NameIDMacCompatibleFull sfnt.NameID = 18
	NameIDPSCIDFindfont     sfnt.NameID = 20
)

const (
	maxFamilyLength  = 31 // characters; longer legacy family names break Windows
	maxPSNameLength  = 63 // bytes
	englishSubfamily = "Regular"
)

// StyleLink is the style-linking of a font within its legacy family.
type StyleLink int

const (
	StyleLinkNone StyleLink = iota
	StyleLinkRegular
	StyleLinkBold
	StyleLinkItalic
	StyleLinkBoldItalic
)

func (sl StyleLink) String() string {
	switch sl {
	case StyleLinkRegular:
		return "Regular"
	case StyleLinkBold:
		return "Bold"
	case StyleLinkItalic:
		return "Italic"
	case StyleLinkBoldItalic:
		return "Bold Italic"
	}
	return "None"
}

// Builder collects name records per platform class and builds a 'name'
// record list consistent with a font's 'cmap' coverage.
//
// All Add methods report success with a boolean. A false return means that
// nothing has been added, usually because a language is unsupported.
type Builder struct {
	mac       *RecordSet
	winSym    *RecordSet
	winBMP    *RecordSet
	winFull   *RecordSet
	winLegacy *RecordSet
	misc      *RecordSet
	psCIDName ot.Option[string] // pending PostScript CID findfont name
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		mac:       NewRecordSet(),
		winSym:    NewRecordSet(),
		winBMP:    NewRecordSet(),
		winFull:   NewRecordSet(),
		winLegacy: NewRecordSet(),
		misc:      NewRecordSet(),
	}
}

// Clear resets the builder to its initial state.
func (b *Builder) Clear() {
	for _, s := range b.sets() {
		s.Clear()
	}
	b.psCIDName = ot.None[string]()
}

func (b *Builder) sets() []*RecordSet {
	return []*RecordSet{b.mac, b.winSym, b.winBMP, b.winFull, b.winLegacy, b.misc}
}

// setFor routes a key to the record set of its platform class.
func (b *Builder) setFor(k Key) *RecordSet {
	switch k.PlatformID {
	case otplatform.PlatformIDMacintosh:
		return b.mac
	case otplatform.PlatformIDWindows:
		switch k.EncodingID {
		case otplatform.EncodingIDWindowsSymbol:
			return b.winSym
		case otplatform.EncodingIDWindowsBMP:
			return b.winBMP
		case otplatform.EncodingIDWindowsFull:
			return b.winFull
		}
		return b.winLegacy
	}
	return b.misc
}

// Has reports whether a record with key k has been added.
func (b *Builder) Has(k Key) bool {
	return b.setFor(k).Has(k)
}

// Get returns the record added for key k.
func (b *Builder) Get(k Key) (Record, bool) {
	return b.setFor(k).Get(k)
}

// Len returns the number of records held, over all platform classes.
func (b *Builder) Len() int {
	n := 0
	for _, s := range b.sets() {
		n += s.Len()
	}
	return n
}

// --- Adding names ----------------------------------------------------------

// AddNameEx adds a single record, routed to its platform class by platform
// and encoding. Windows encodings other than Symbol, BMP and full repertoire
// go to the legacy class; platforms other than Macintosh and Windows go to
// the miscellaneous class.
func (b *Builder) AddNameEx(text string, id sfnt.NameID, p otplatform.PlatformID, e otplatform.EncodingID, lang uint16) bool {
	return b.AddRecord(NewRecord(text, id, p, e, lang))
}

// AddRecord adds a record as is, raw records included.
func (b *Builder) AddRecord(r Record) bool {
	b.setFor(r.Key).Put(r)
	return true
}

// AddEngName adds a name as Macintosh English and Windows English (US) in all
// three Unicode-based Windows encodings. It always succeeds.
func (b *Builder) AddEngName(text string, id sfnt.NameID) bool {
	b.AddMacNameEx(text, id, otplatform.MacLangEnglish)
	b.AddWinNameEx(text, id, otplatform.WinLangEnUS)
	return true
}

// AddName adds a name for a BCP-47 language tag: one Macintosh record and
// one Windows record per Windows language of the tag's Macintosh language
// and per Unicode-based Windows encoding. It fails if the language is
// unsupported or has no Windows counterpart.
func (b *Builder) AddName(text string, id sfnt.NameID, tag string) bool {
	macLang, ok := otplatform.MacLangForTag(tag)
	if !ok || !otplatform.HasWinLangs(macLang) {
		tracer().Debugf("cannot add name %d for language %q", id, tag)
		return false
	}
	if !b.AddMacNameEx(text, id, macLang) {
		return false
	}
	for _, lcid := range otplatform.WinLangsForMac(macLang) {
		b.AddWinNameEx(text, id, lcid)
	}
	return true
}

// AddMacName adds a Macintosh record for a BCP-47 language tag.
func (b *Builder) AddMacName(text string, id sfnt.NameID, tag string) bool {
	macLang, ok := otplatform.MacLangForTag(tag)
	if !ok {
		return false
	}
	return b.AddMacNameEx(text, id, macLang)
}

// AddMacNameEx adds a Macintosh record for a Macintosh language code. The
// encoding is the script of the language.
func (b *Builder) AddMacNameEx(text string, id sfnt.NameID, macLang uint16) bool {
	enc, ok := otplatform.MacEncoding(macLang)
	if !ok || !otplatform.HasCodec(otplatform.PlatformIDMacintosh, enc) {
		return false
	}
	b.mac.Put(NewRecord(text, id, otplatform.PlatformIDMacintosh, enc, macLang))
	return true
}

// AddWinNames adds Windows records for a BCP-47 language tag, one per
// Windows language of the tag and per Unicode-based Windows encoding.
func (b *Builder) AddWinNames(text string, id sfnt.NameID, tag string) bool {
	macLang, ok := otplatform.MacLangForTag(tag)
	if !ok || !otplatform.HasWinLangs(macLang) {
		return false
	}
	for _, lcid := range otplatform.WinLangsForMac(macLang) {
		b.AddWinNameEx(text, id, lcid)
	}
	return true
}

// AddWinNameEx adds a Windows record for a Windows language ID in each of the
// encodings Symbol, BMP and full repertoire.
func (b *Builder) AddWinNameEx(text string, id sfnt.NameID, lcid uint16) bool {
	b.winSym.Put(NewRecord(text, id, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsSymbol, lcid))
	b.winBMP.Put(NewRecord(text, id, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsBMP, lcid))
	b.winFull.Put(NewRecord(text, id, otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsFull, lcid))
	return true
}

// --- Names with fixed IDs --------------------------------------------------

// AddStylelink sets the English subfamily (name ID 2) from a style link.
func (b *Builder) AddStylelink(sl StyleLink) bool {
	switch sl {
	case StyleLinkBold, StyleLinkItalic, StyleLinkBoldItalic:
		return b.AddEngName(sl.String(), sfnt.NameIDSubfamily)
	}
	return b.AddEngName(englishSubfamily, sfnt.NameIDSubfamily)
}

// AddFontUniqueID sets the English unique font identifier (name ID 3).
func (b *Builder) AddFontUniqueID(text string) bool {
	return b.AddEngName(text, sfnt.NameIDUniqueIdentifier)
}

// AddVersion sets the English version string (name ID 5) from a numeric
// font revision, formatted as "Version x.yz".
func (b *Builder) AddVersion(version float64) bool {
	return b.AddVersionString(fmt.Sprintf("Version %.2f", math.Abs(version)))
}

// AddVersionString sets the English version string (name ID 5). A string
// without a period gets ".00" appended.
func (b *Builder) AddVersionString(text string) bool {
	if !strings.ContainsRune(text, '.') {
		text += ".00"
	}
	return b.AddEngName(text, sfnt.NameIDVersion)
}

var (
	psForbidden  = regexp.MustCompile(`[()\[\]{}<>/%]+`)
	psWhitespace = regexp.MustCompile(`\s+`)
)

// SanitizePostScriptName removes the characters not allowed in PostScript
// names and replaces runs of white space by hyphens.
func SanitizePostScriptName(s string) string {
	s = psForbidden.ReplaceAllString(s, "")
	return psWhitespace.ReplaceAllString(s, "-")
}

// AddPostScriptName sets the English PostScript name (name ID 6).
func (b *Builder) AddPostScriptName(text string) bool {
	return b.AddEngName(SanitizePostScriptName(text), sfnt.NameIDPostScript)
}

// AddPostScriptNameFromRecords sets the PostScript name from the first
// English record with name ID 6 in recs.
func (b *Builder) AddPostScriptNameFromRecords(recs []Record) bool {
	for _, r := range recs {
		if r.NameID != sfnt.NameIDPostScript || r.IsRaw() {
			continue
		}
		if r.LanguageID == otplatform.MacLangEnglish || r.LanguageID == otplatform.WinLangEnUS {
			return b.AddPostScriptName(r.Text)
		}
	}
	return false
}

// AddMacCompatibleFull adds a Macintosh-only compatible full name (name
// ID 18) for a BCP-47 language tag.
func (b *Builder) AddMacCompatibleFull(text string, tag string) bool {
	return b.AddMacName(text, NameIDMacCompatibleFull, tag)
}

// AddMacCompatibleFullEx adds a Macintosh-only compatible full name (name
// ID 18) for a Macintosh language code.
func (b *Builder) AddMacCompatibleFullEx(text string, macLang uint16) bool {
	return b.AddMacNameEx(text, NameIDMacCompatibleFull, macLang)
}

// AddPSCIDFFName sets the PostScript CID findfont name (name ID 20). The
// records are generated in Build, one per Macintosh encoding in use.
func (b *Builder) AddPSCIDFFName(text string) bool {
	text = SanitizePostScriptName(text)
	if text == "" {
		return false
	}
	b.psCIDName = ot.Some(text)
	return true
}

// AddPSCIDFFNameFromRecords sets the PostScript CID findfont name from the
// first record with name ID 20 in recs.
func (b *Builder) AddPSCIDFFNameFromRecords(recs []Record) bool {
	for _, r := range recs {
		if r.NameID == NameIDPSCIDFindfont && !r.IsRaw() {
			return b.AddPSCIDFFName(r.Text)
		}
	}
	return false
}

// --- Maintenance -----------------------------------------------------------

// ConvertWinLegacy converts every record in a Windows legacy encoding to a
// Macintosh record and to the Unicode-based Windows records of its language.
// The legacy records themselves are kept. It must be called before Build and
// reports false if some record has no Macintosh language.
func (b *Builder) ConvertWinLegacy() bool {
	ok := true
	for _, r := range b.winLegacy.Records() {
		if r.IsRaw() {
			continue
		}
		macLang, found := otplatform.MacLangForWin(r.LanguageID)
		if !found || !b.AddMacNameEx(r.Text, r.NameID, macLang) {
			tracer().Debugf("legacy record %s has no Macintosh counterpart", r.Key)
			ok = false
			continue
		}
		b.AddWinNameEx(r.Text, r.NameID, r.LanguageID)
	}
	return ok
}

// ClearMiscellaneous drops all records which are neither Macintosh nor
// Windows records.
func (b *Builder) ClearMiscellaneous() {
	b.misc.Clear()
}

// --- Build -----------------------------------------------------------------

// coverage holds the platform classes a font's 'cmap' table supports.
type coverage struct {
	mac, winSym, winBMP, winFull, winLegacy bool
}

func makeCoverage(subtables []otplatform.PlatformEncoding) coverage {
	var c coverage
	for _, pe := range subtables {
		switch pe.Platform {
		case otplatform.PlatformIDUnicode, otplatform.PlatformIDMacintosh:
			c.mac = true
		case otplatform.PlatformIDWindows:
			switch pe.Encoding {
			case otplatform.EncodingIDWindowsSymbol:
				c.winSym = true
			case otplatform.EncodingIDWindowsBMP:
				c.winBMP = true
			case otplatform.EncodingIDWindowsFull:
				c.winFull = true
			default:
				c.winLegacy = true
			}
		}
	}
	return c
}

// Build finishes the record set and returns the records for a font whose
// 'cmap' subtables have the given platform/encoding pairs.
//
// Before emission, Build generates the PostScript CID findfont records for
// every Macintosh encoding in use, truncates legacy family names longer than
// 31 characters and PostScript names longer than 63 bytes, and strips
// characters from Macintosh records which their encoding cannot represent.
// Records are emitted per class in the order Macintosh, Windows Symbol,
// Windows BMP, Windows full repertoire, Windows legacy, and only for classes
// covered by the 'cmap' table. Miscellaneous records are always appended.
func (b *Builder) Build(subtables []otplatform.PlatformEncoding) ([]Record, []ot.FontWarning) {
	var warnings []ot.FontWarning
	b.genPSCIDFindfont()
	warnings = append(warnings, b.truncateLimited()...)
	warnings = append(warnings, b.removeUnsupportedChars()...)
	cov := makeCoverage(subtables)
	var recs []Record
	emit := []struct {
		needed bool
		set    *RecordSet
	}{
		{cov.mac, b.mac},
		{cov.winSym, b.winSym},
		{cov.winBMP, b.winBMP},
		{cov.winFull, b.winFull},
		{cov.winLegacy, b.winLegacy},
		{true, b.misc},
	}
	for _, e := range emit {
		if e.needed {
			recs = append(recs, e.set.Records()...)
		}
	}
	tracer().Debugf("built %d name records", len(recs))
	return recs, warnings
}

func (b *Builder) genPSCIDFindfont() {
	name, ok := b.psCIDName.Unwrap()
	if !ok {
		return
	}
	encs := make(map[otplatform.EncodingID]struct{})
	for r := range b.mac.All() {
		encs[r.EncodingID] = struct{}{}
	}
	for enc := range encs {
		b.AddNameEx(name, NameIDPSCIDFindfont, otplatform.PlatformIDMacintosh, enc, otplatform.MacLangAny)
	}
}

func (b *Builder) truncateLimited() []ot.FontWarning {
	var warnings []ot.FontWarning
	for _, s := range b.sets() {
		for _, r := range s.Records() {
			if r.IsRaw() {
				continue
			}
			switch {
			case r.NameID == sfnt.NameIDFamily && utf8.RuneCountInString(r.Text) > maxFamilyLength:
				t := truncateRunes(r.Text, maxFamilyLength)
				warnings = append(warnings, warning("legacy family name %q longer than %d characters, truncated to %q",
					r.Text, maxFamilyLength, t))
				s.update(r.Key, t)
			case r.NameID == sfnt.NameIDPostScript && len(r.Text) > maxPSNameLength:
				t := truncateBytes(r.Text, maxPSNameLength)
				warnings = append(warnings, warning("PostScript name %q longer than %d bytes, truncated to %q",
					r.Text, maxPSNameLength, t))
				s.update(r.Key, t)
			}
		}
	}
	return warnings
}

// removeUnsupportedChars iteratively removes runs of characters from
// Macintosh records until the record's encoding can represent the string.
// Records in an encoding without codec are dropped.
func (b *Builder) removeUnsupportedChars() []ot.FontWarning {
	var warnings []ot.FontWarning
	for _, r := range b.mac.Records() {
		if r.IsRaw() {
			continue
		}
		text := r.Text
		for {
			_, err := otplatform.EncodeMac(text, r.EncodingID)
			if err == nil {
				break
			}
			var uerr *otplatform.UnencodableError
			if !errors.As(err, &uerr) {
				warnings = append(warnings, warning("dropping %s: %v", r.Key, err))
				b.mac.Remove(r.Key)
				text = ""
				break
			}
			runes := []rune(text)
			text = string(runes[:uerr.Start]) + string(runes[uerr.End:])
		}
		if text != r.Text && b.mac.Has(r.Key) {
			warnings = append(warnings, warning("stripped characters from %s: %q becomes %q", r.Key, r.Text, text))
			b.mac.update(r.Key, text)
		}
	}
	return warnings
}

// --- Helpers ---------------------------------------------------------------

func warning(format string, args ...any) ot.FontWarning {
	w := ot.FontWarning{Table: ot.T("name"), Issue: fmt.Sprintf(format, args...)}
	tracer().Infof("%s", w.Issue)
	return w
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// truncateBytes cuts s to at most n bytes without splitting a rune.
func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
