package reconcile

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otcmap"
	"github.com/npillmayer/otrebuild/otconfig"
	"github.com/npillmayer/otrebuild/otname"
	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

// RebuildCmap regenerates the 'cmap' table of a font with ReconcileCmap in
// mode Rebuild. If jobs include FixName, the 'name' table is made
// consistent with the new 'cmap' table afterwards.
func RebuildCmap(otf *ot.Font, jobs Jobs) ([]ot.FontWarning, error) {
	subtables, err := readCmap(otf)
	if err != nil {
		return nil, err
	}
	subtables, warnings := ReconcileCmap(subtables, Rebuild, jobs)
	if err = writeCmap(otf, subtables); err != nil {
		return warnings, err
	}
	if jobs.FixName {
		w, err := FixName(otf)
		return append(warnings, w...), err
	}
	return warnings, nil
}

// dummyDSIG is a 'DSIG' table of version 1 without signatures.
var dummyDSIG = []byte{0, 0, 0, 1, 0, 0, 0, 0}

// RebuildDSIG installs an empty digital signature. Some applications
// require a 'DSIG' table to enable OpenType features of a font.
func RebuildDSIG(otf *ot.Font) error {
	return otf.SetTable(tagDSIG, append([]byte(nil), dummyDSIG...))
}

// RebuildByConfig applies a configuration to the tables 'head', 'hhea',
// 'post' and 'OS/2', and rebuilds the 'name' table from the configured
// names.
func RebuildByConfig(otf *ot.Font, cfg *otconfig.Config) ([]ot.FontWarning, error) {
	if cfg == nil {
		return nil, nil
	}
	updateHead(otf.Head(), cfg)
	updateHhea(otf.HHea(), cfg)
	updatePost(otf.Post(), cfg)
	updateOS2(otf.OS2(), cfg)
	return rebuildName(otf, cfg)
}

func updateHead(head *ot.HeadTable, cfg *otconfig.Config) {
	if head == nil {
		return
	}
	if v, ok := cfg.Version().Unwrap(); ok {
		head.SetFontRevision(math.Abs(v))
	}
	style := head.MacStyle
	if sl, ok := cfg.StyleLink().Unwrap(); ok {
		style &^= ot.MacStyleBold | ot.MacStyleItalic
		switch otname.StyleLink(sl) {
		case otname.StyleLinkBold:
			style |= ot.MacStyleBold
		case otname.StyleLinkItalic:
			style |= ot.MacStyleItalic
		case otname.StyleLinkBoldItalic:
			style |= ot.MacStyleBold | ot.MacStyleItalic
		}
	}
	if w, ok := cfg.WidthScale().Unwrap(); ok {
		style &^= ot.MacStyleCondensed | ot.MacStyleExtended
		if w < 5 {
			style |= ot.MacStyleCondensed
		} else if w > 5 {
			style |= ot.MacStyleExtended
		}
	}
	head.SetMacStyle(style)
}

func updateHhea(hhea *ot.HHeaTable, cfg *otconfig.Config) {
	if hhea == nil {
		return
	}
	asc, desc, gap := cfg.HheaMetrics()
	hhea.SetMetrics(
		ot.Map(asc, toInt16).Or(hhea.Ascender),
		ot.Map(desc, toInt16).Or(hhea.Descender),
		ot.Map(gap, toInt16).Or(hhea.LineGap),
	)
}

func updatePost(post *ot.PostTable, cfg *otconfig.Config) {
	if post == nil {
		return
	}
	if mono, ok := cfg.IsMonospaced().Unwrap(); ok {
		post.SetFixedPitch(mono)
	}
	if sl, ok := cfg.StyleLink().Unwrap(); ok {
		if otname.StyleLink(sl) > otname.StyleLinkBold {
			post.SetItalicAngle(defaultItalicAngle)
		} else {
			post.SetItalicAngle(0)
		}
	}
	if angle, ok := cfg.ItalicAngle().Unwrap(); ok {
		post.SetItalicAngle(angle)
	}
	pos, thick := cfg.Underline()
	post.SetUnderline(
		ot.Map(pos, toInt16).Or(post.UnderlinePosition),
		ot.Map(thick, toInt16).Or(post.UnderlineThickness),
	)
}

// fsType values by embedding restriction.
var fsTypes = map[int]uint16{
	otconfig.EmbedInstallable:     0,
	otconfig.EmbedEditable:        8,
	otconfig.EmbedPreviewAndPrint: 4,
	otconfig.EmbedRestricted:      2,
}

var nonAlphaNum = regexp.MustCompile(`[^A-Za-z0-9]+`)

func updateOS2(os2 *ot.OS2Table, cfg *otconfig.Config) {
	if os2 == nil {
		return
	}
	if r, ok := cfg.EmbeddingRestriction().Unwrap(); ok {
		os2.SetFsType(fsTypes[r])
	}
	if id, ok := cfg.English().Get(otconfig.DistributorID).Unwrap(); ok {
		os2.SetVendorID(nonAlphaNum.ReplaceAllString(id, ""))
	}
	asc, desc, gap := cfg.TypoMetrics()
	os2.SetTypoMetrics(
		ot.Map(asc, toInt16).Or(os2.TypoAscender),
		ot.Map(desc, toInt16).Or(os2.TypoDescender),
		ot.Map(gap, toInt16).Or(os2.TypoLineGap),
	)
	winAsc, winDesc := cfg.WinMetrics()
	os2.SetWinMetrics(
		ot.Map(winAsc, toAbsUint16).Or(os2.WinAscent),
		ot.Map(winDesc, toAbsUint16).Or(os2.WinDescent),
	)
	if w, ok := cfg.WidthScale().Unwrap(); ok {
		os2.SetWidthClass(uint16(w))
	}
	sel := os2.FsSelection
	weight, hasWeight := cfg.WeightScale().Unwrap()
	if hasWeight {
		os2.SetWeightClass(winSafeWeightClasses[weight-1])
		sel &^= 0b1111110
		if weight == 4 {
			sel |= ot.FsSelectionRegular
		} else if weight > 6 {
			sel |= ot.FsSelectionBold
		}
	}
	if sl, ok := cfg.StyleLink().Unwrap(); ok {
		sel &^= ot.FsSelectionItalic
		switch otname.StyleLink(sl) {
		case otname.StyleLinkRegular:
			sel |= ot.FsSelectionRegular
			if !hasWeight {
				os2.SetWeightClass(400)
				sel &^= 0b0111111
			}
		case otname.StyleLinkBold:
			sel |= ot.FsSelectionBold
			if !hasWeight {
				os2.SetWeightClass(700)
				sel &^= 0b1011111
			}
		case otname.StyleLinkItalic:
			sel |= ot.FsSelectionItalic
			if !hasWeight {
				os2.SetWeightClass(400)
				sel &^= 0b1111110
			}
		case otname.StyleLinkBoldItalic:
			sel |= ot.FsSelectionBold | ot.FsSelectionItalic
			if !hasWeight {
				os2.SetWeightClass(700)
				sel &^= 0b1011110
			}
		}
	}
	os2.SetFsSelection(sel)
}

func toInt16(x float64) int16 {
	return clampInt16(x)
}

func toAbsUint16(x float64) uint16 {
	return uint16(min(math.MaxUint16, math.Abs(math.Round(x))))
}

// --- Names -----------------------------------------------------------------

// Optional name fields and their name IDs.
var optionalNames = []struct {
	field string
	id    sfnt.NameID
}{
	{otconfig.Copyright, sfnt.NameIDCopyright},
	{otconfig.Trademark, sfnt.NameIDTrademark},
	{otconfig.Description, sfnt.NameIDDescription},
	{otconfig.Designer, sfnt.NameIDDesigner},
	{otconfig.DesignerURL, sfnt.NameIDDesignerURL},
	{otconfig.Distributor, sfnt.NameIDManufacturer},
	{otconfig.DistributorURL, sfnt.NameIDVendorURL},
	{otconfig.License, sfnt.NameIDLicense},
	{otconfig.LicenseURL, sfnt.NameIDLicenseURL},
}

// essentials are the English names every Macintosh language needs.
type essentials struct {
	family, subfamily, uniqueID, version, psName string
}

// rebuildName replaces the 'name' table with the names of a configuration.
// The English font family is mandatory.
func rebuildName(otf *ot.Font, cfg *otconfig.Config) ([]ot.FontWarning, error) {
	if cfg.Name == nil {
		return nil, nil
	}
	en := cfg.English()
	family, ok := en.Get(otconfig.FontFamily).Unwrap()
	if !ok {
		return []ot.FontWarning{warning("name", "no English font family configured, names not rebuilt")}, nil
	}
	old, warnings, err := readNames(otf)
	if err != nil {
		return warnings, err
	}
	b := otname.NewBuilder()
	b.AddPSCIDFFNameFromRecords(old)
	//
	sl, hasLink := cfg.StyleLink().Unwrap()
	link := otname.StyleLink(sl)
	weight, hasWeight := cfg.WeightScale().Unwrap()
	subfamily, legacyFamily := "R", family
	if cfg.HasStyle() {
		var width, wght, italic string
		if w, ok := cfg.WidthScale().Unwrap(); ok && w != 5 {
			width = abbreviatedWidths[w-1]
		}
		if hasWeight {
			wght = abbreviatedWeights[weight-1]
		}
		if a, ok := cfg.ItalicAngle().Unwrap(); ok && a != 0 {
			italic = "It"
		}
		if s := squeeze(strings.Join([]string{width, wght, italic}, " ")); s != "" {
			subfamily = s
		}
		legacyFamily = squeeze(legacyFamily + " " + width)
		switch {
		case hasLink && link == otname.StyleLinkRegular:
			if hasWeight && weight != 4 {
				legacyFamily += " " + wght
			}
		case hasLink && link == otname.StyleLinkItalic:
			legacyFamily = squeeze(legacyFamily + " " + wght)
		case hasLink && link != otname.StyleLinkNone:
		default:
			link = otname.StyleLinkNone
			legacyFamily = squeeze(strings.Join([]string{legacyFamily, wght, italic}, " "))
		}
		b.AddStylelink(link)
	} else {
		b.AddStylelink(otname.StyleLinkNone)
	}
	if sub, ok := en.Get(otconfig.FontSubfamily).Unwrap(); ok {
		subfamily = sub
		legacyFamily = family + " " + subfamily
		if hasLink {
			switch link {
			case otname.StyleLinkBold, otname.StyleLinkBoldItalic:
				legacyFamily = family
			case otname.StyleLinkRegular:
				legacyFamily = replaceWords(legacyFamily, regularStyles, "")
			case otname.StyleLinkItalic:
				legacyFamily = replaceWords(legacyFamily, italicStyles, "")
			}
		}
		legacyFamily = squeeze(legacyFamily)
	}
	fullName := en.Get(otconfig.FontFullName).Or(family + " " + subfamily)
	psName := strings.ReplaceAll(family, " ", "") + "-" + strings.ReplaceAll(subfamily, " ", "")
	if top, ok := otf.CFF().Unwrap(); ok && top.FontName != "" {
		psName = top.FontName
	}
	psName = en.Get(otconfig.PostScriptName).Or(psName)
	version := versionString(otf.Head())
	if v, ok := cfg.Version().Unwrap(); ok {
		version = fmt.Sprintf("Version %.2f", math.Abs(v))
	}
	version = en.Get(otconfig.VersionString).Or(version)
	uniqueID := en.Get(otconfig.UniqueID).Or(fullName + "; " + version)
	//
	b.AddMacNameEx(family, sfnt.NameIDFamily, otplatform.MacLangEnglish)
	b.AddMacNameEx(subfamily, sfnt.NameIDSubfamily, otplatform.MacLangEnglish)
	b.AddWinNameEx(legacyFamily, sfnt.NameIDFamily, otplatform.WinLangEnUS)
	b.AddWinNameEx(family, sfnt.NameIDTypographicFamily, otplatform.WinLangEnUS)
	b.AddWinNameEx(subfamily, sfnt.NameIDTypographicSubfamily, otplatform.WinLangEnUS)
	b.AddEngName(fullName, sfnt.NameIDFull)
	b.AddMacCompatibleFullEx(fullName, otplatform.MacLangEnglish)
	b.AddFontUniqueID(uniqueID)
	b.AddVersionString(version)
	b.AddPostScriptName(psName)
	for _, n := range optionalNames {
		if text, ok := en.Get(n.field).Unwrap(); ok {
			b.AddEngName(text, n.id)
		}
	}
	ess := essentials{family: family, subfamily: subfamily, uniqueID: uniqueID, version: version, psName: psName}
	for _, tag := range cfg.Languages() {
		if !addLanguage(b, cfg, tag, ess) {
			warnings = append(warnings, warning("name", "language %q not supported, names left out", tag))
		}
	}
	cmap, err := readCmap(otf)
	if err != nil {
		return warnings, err
	}
	records, w := b.Build(otcmap.Coverage(cmap))
	warnings = append(warnings, w...)
	w, err = writeNames(otf, records)
	return append(warnings, w...), err
}

// addLanguage adds the names configured for a language other than English.
// Macintosh needs the essential names in every language; where a language
// does not configure them, the English ones are used. It reports false if
// the language is not supported.
func addLanguage(b *otname.Builder, cfg *otconfig.Config, tag string, ess essentials) bool {
	lang := cfg.Name[tag]
	family, hasFamily := lang.Get(otconfig.FontFamily).Unwrap()
	subfamily, hasSubfamily := lang.Get(otconfig.FontSubfamily).Unwrap()
	fullName, hasFullName := lang.Get(otconfig.FontFullName).Unwrap()
	legacyFamily, legacySubfamily := family, "Regular"
	if sl, ok := cfg.StyleLink().Unwrap(); ok && otname.StyleLink(sl) != otname.StyleLinkNone {
		legacySubfamily = legacyWinStyles[sl-1]
	} else if hasFamily && hasSubfamily {
		legacyFamily = family + " " + subfamily
	}
	if !hasFullName && hasFamily && hasSubfamily {
		fullName, hasFullName = family+" "+subfamily, true
	}
	macFamily, macSubfamily := ess.family, ess.subfamily
	macFullName := macFamily + " " + macSubfamily
	if hasFamily {
		macFamily = family
	}
	if hasSubfamily {
		macSubfamily = subfamily
	}
	if hasFullName {
		macFullName = fullName
	}
	if !b.AddMacName(macFamily, sfnt.NameIDFamily, tag) {
		tracer().Debugf("no Macintosh language for %q", tag)
		return false
	}
	b.AddMacName(macSubfamily, sfnt.NameIDSubfamily, tag)
	b.AddMacName(ess.uniqueID, sfnt.NameIDUniqueIdentifier, tag)
	b.AddMacName(macFullName, sfnt.NameIDFull, tag)
	b.AddMacName(ess.version, sfnt.NameIDVersion, tag)
	b.AddMacName(ess.psName, sfnt.NameIDPostScript, tag)
	b.AddMacCompatibleFull(macFullName, tag)
	b.AddWinNames(legacySubfamily, sfnt.NameIDSubfamily, tag)
	if legacyFamily != "" {
		b.AddWinNames(legacyFamily, sfnt.NameIDFamily, tag)
	}
	if hasFamily {
		b.AddWinNames(family, sfnt.NameIDTypographicFamily, tag)
	}
	if hasSubfamily {
		b.AddWinNames(subfamily, sfnt.NameIDTypographicSubfamily, tag)
	}
	if hasFullName {
		b.AddWinNames(fullName, sfnt.NameIDFull, tag)
	}
	for _, n := range optionalNames {
		if text, ok := lang.Get(n.field).Unwrap(); ok {
			b.AddName(text, n.id, tag)
		}
	}
	return true
}
