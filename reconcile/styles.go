package reconcile

import (
	"regexp"
	"slices"
	"strings"

	"github.com/npillmayer/otrebuild/ot"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultFontName    = "Untitled Font"
	defaultItalicAngle = -12.0
)

var (
	regularStyles   = []string{"Regular", "Rg", "Roman", "Rm", "R", "Normal", "Norm", "Nm", "Book", "Bk"}
	italicStyles    = []string{"Italic", "It", "Oblique", "Obl"}
	legacyWinStyles = []string{"Regular", "Bold", "Italic", "Bold Italic"}
)

// Widths by width scale 1 … 9.
var (
	abbreviatedWidths = []string{"UCond", "XCond", "Cond", "DCond", "M", "DExt", "Ext", "XExt", "UExt"}
	standardWidths    = []string{"Ultra-condensed", "Extra-condensed", "Condensed", "Semi-condensed",
		"Medium", "Semi-expanded", "Expanded", "Extra-expanded", "Ultra-expanded"}
)

// Weights by weight scale 1 … 10.
var (
	abbreviatedWeights = []string{"UL", "EL", "L", "R", "M", "SB", "B", "EB", "H", "BL"}
	standardWeights    = []string{"Ultralight", "Extralight", "Light", "Regular", "Medium",
		"Semibold", "Bold", "Extrabold", "Heavy", "Black"}
	winSafeWeightClasses = []uint16{250, 275, 300, 400, 500, 600, 700, 800, 900, 950}
)

// winStyle is the legacy Windows style of a font's macStyle bits.
func winStyle(head *ot.HeadTable) string {
	if head == nil {
		return "Regular"
	}
	bold, italic := head.MacStyle&ot.MacStyleBold != 0, head.MacStyle&ot.MacStyleItalic != 0
	switch {
	case bold && italic:
		return "Bold Italic"
	case bold:
		return "Bold"
	case italic:
		return "Italic"
	}
	return "Regular"
}

// replaceWords replaces each of words, as a whole word and ignoring case,
// by repl.
func replaceWords(s string, words []string, repl string) string {
	for _, w := range words {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
		s = re.ReplaceAllLiteralString(s, repl)
	}
	return s
}

// squeeze collapses runs of white space and trims the result.
func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// titleCase converts "SEMIBOLD" or "semibold" to "Semibold".
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

func isRegularStyle(s string) bool {
	return slices.Contains(regularStyles, s)
}
