package reconcile

import (
	"strings"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otname"
	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

// macSubfamilyKey is the key of the English Macintosh subfamily record.
var macSubfamilyKey = otname.Key{
	NameID:     sfnt.NameIDSubfamily,
	PlatformID: otplatform.PlatformIDMacintosh,
	EncodingID: 0,
	LanguageID: otplatform.MacLangEnglish,
}

// AddMacOffice rewrites the English Macintosh subfamily so that Mac Office
// 2011 lists the font with its width and weight spelled out, as in
// "Condensed Bold Italic". Width and weight are taken from 'OS/2'.
// Fonts without 'OS/2' or without an English Macintosh subfamily are left
// alone.
func AddMacOffice(otf *ot.Font) ([]ot.FontWarning, error) {
	os2 := otf.OS2()
	if os2 == nil {
		return nil, nil
	}
	records, warnings, err := readNames(otf)
	if err != nil {
		return warnings, err
	}
	i := -1
	for j, r := range records {
		if r.Key == macSubfamilyKey && !r.IsRaw() {
			i = j
			break
		}
	}
	if i < 0 {
		tracer().Debugf("no English Macintosh subfamily, nothing to do for Mac Office")
		return warnings, nil
	}
	sub := macOfficeSubfamily(records[i].Text, os2.WidthClass, os2.WeightClass)
	tracer().Infof("Mac Office subfamily %q -> %q", records[i].Text, sub)
	records[i].Text = sub
	w, err := writeNames(otf, records)
	return append(warnings, w...), err
}

// macOfficeSubfamily replaces width and weight words of a subfamily by the
// standard names for the OS/2 classes.
func macOfficeSubfamily(sub string, widthClass, weightClass uint16) string {
	sub = replaceWords(sub, italicStyles, "Italic")
	for _, words := range [][]string{standardWidths, abbreviatedWidths, standardWeights, abbreviatedWeights} {
		sub = replaceWords(sub, words, "")
	}
	width := ""
	if widthClass >= 1 && widthClass <= 9 && widthClass != 5 {
		width = standardWidths[widthClass-1]
	}
	weight := standardWeights[weightScale(weightClass)-1]
	return squeeze(strings.Join([]string{sub, width, weight}, " "))
}

// weightScale maps an OS/2 weight class to a weight scale 1 … 10. Classes
// 250 and 275 are the Windows-safe ultralight and extralight.
func weightScale(class uint16) int {
	switch {
	case class == 250:
		return 1
	case class == 275:
		return 2
	case class > 1000:
		return 4
	case class <= 100:
		return 1
	}
	return int(min(10, (class+99)/100))
}
