package reconcile

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otcmap"
	"github.com/npillmayer/otrebuild/otname"
	"golang.org/x/image/font/sfnt"
)

// Fatal conditions found by Init.
var (
	ErrMissingTables = errors.New("font lacks required tables")
	ErrSymbolFont    = errors.New("symbol fonts are not supported")
	ErrVariableFont  = errors.New("variable fonts are not supported")
)

var requiredTables = []string{"cmap", "head", "hhea", "hmtx", "maxp"}

// Init checks whether a font can be processed and prepares it: the digital
// signature is removed if jobs say so, and a missing 'name' table is
// created. Fonts lacking required tables, symbol fonts and variable fonts
// are rejected with an error wrapping ErrMissingTables, ErrSymbolFont or
// ErrVariableFont.
func Init(otf *ot.Font, jobs Jobs) (Skip, []ot.FontWarning, error) {
	var missing []string
	for _, tag := range requiredTables {
		if !otf.HasTable(ot.T(tag)) {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		return 0, nil, fmt.Errorf("%w: %s", ErrMissingTables, strings.Join(missing, ", "))
	}
	if otf.IsVariable() {
		return 0, nil, ErrVariableFont
	}
	cmap, err := readCmap(otf)
	if err != nil {
		return 0, nil, err
	}
	for _, s := range cmap {
		if s.IsSymbol() {
			return 0, nil, fmt.Errorf("%w: found %s", ErrSymbolFont, s)
		}
	}
	var skip Skip
	var warnings []ot.FontWarning
	if jobs.RemoveDSIG && otf.HasTable(tagDSIG) {
		tracer().Infof("removing digital signature")
		otf.RemoveTable(tagDSIG)
	}
	if !otf.HasTable(tagName) {
		records, w := createName(otf, cmap)
		warnings = append(warnings, w...)
		w, err = writeNames(otf, records)
		warnings = append(warnings, w...)
		if err != nil {
			return 0, warnings, err
		}
		warnings = append(warnings, warning("name", "font has no 'name' table, created one"))
		skip |= SkipFixName
	}
	if !otf.IsCFF() {
		skip |= SkipFromCFF
	}
	return skip, warnings, nil
}

// cffNames holds names found in the top dict of a CFF font.
type cffNames struct {
	family, subfamily, fullName, psName ot.Option[string]
	version, copyright, trademark       ot.Option[string]
}

func namesFromCFF(otf *ot.Font) cffNames {
	var n cffNames // all None
	top, ok := otf.CFF().Unwrap()
	if !ok {
		return n
	}
	nonEmpty := func(o ot.Option[string]) ot.Option[string] {
		if s := strings.TrimSpace(o.Or("")); s != "" {
			return ot.Some(s)
		}
		return ot.None[string]()
	}
	n.psName = nonEmpty(ot.Some(top.FontName))
	n.version = ot.Map(nonEmpty(top.Version), func(v string) string { return "Version " + v })
	n.trademark = nonEmpty(top.Notice)
	n.copyright = nonEmpty(top.Copyright)
	n.fullName = nonEmpty(top.FullName)
	n.family = nonEmpty(top.FamilyName)
	n.subfamily = ot.Map(nonEmpty(top.Weight), titleCase)
	if angle, ok := top.ItalicAngle.Unwrap(); ok && angle != 0 {
		if sub, ok := n.subfamily.Unwrap(); ok && !isRegularStyle(sub) {
			n.subfamily = ot.Some(sub + " Italic")
		} else {
			n.subfamily = ot.Some("Italic")
		}
	}
	return n
}

// versionString formats the font revision of 'head'.
func versionString(head *ot.HeadTable) string {
	if head == nil {
		return "Version 0.00"
	}
	return fmt.Sprintf("Version %.2f", head.FontRevision)
}

// createName creates name records for a font without 'name' table, from the
// CFF top dict if possible.
func createName(otf *ot.Font, cmap []otcmap.Subtable) ([]otname.Record, []ot.FontWarning) {
	n := namesFromCFF(otf)
	family := n.family.Or(defaultFontName)
	subfamily := n.subfamily.Or(winStyle(otf.Head()))
	fullName := n.fullName.Or(n.psName.Or(family + " " + subfamily))
	version := n.version.Or(versionString(otf.Head()))
	psName := n.psName.Or(strings.ReplaceAll(family, " ", "") + "-" + strings.ReplaceAll(subfamily, " ", ""))
	b := otname.NewBuilder()
	if s, ok := n.copyright.Unwrap(); ok {
		b.AddEngName(s, sfnt.NameIDCopyright)
	}
	if s, ok := n.trademark.Unwrap(); ok {
		b.AddEngName(s, sfnt.NameIDTrademark)
	}
	switch {
	case slices.Contains(legacyWinStyles, subfamily):
		b.AddEngName(family, sfnt.NameIDFamily)
		b.AddEngName(subfamily, sfnt.NameIDSubfamily)
	case strings.Contains(subfamily, "Italic"):
		b.AddEngName(family+" "+strings.ReplaceAll(subfamily, " Italic", ""), sfnt.NameIDFamily)
		b.AddStylelink(otname.StyleLinkItalic)
		b.AddEngName(family, sfnt.NameIDTypographicFamily)
		b.AddEngName(subfamily, sfnt.NameIDTypographicSubfamily)
	default:
		b.AddEngName(family+" "+subfamily, sfnt.NameIDFamily)
		b.AddStylelink(otname.StyleLinkRegular)
		b.AddEngName(family, sfnt.NameIDTypographicFamily)
		b.AddEngName(subfamily, sfnt.NameIDTypographicSubfamily)
	}
	b.AddEngName(fullName, sfnt.NameIDFull)
	b.AddPostScriptName(psName)
	b.AddFontUniqueID(fullName + "; " + version)
	b.AddVersionString(version)
	tracer().Infof("created names for %q", fullName)
	return b.Build(otcmap.Coverage(cmap))
}
