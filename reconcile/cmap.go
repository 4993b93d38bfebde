package reconcile

import (
	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otcmap"
	"github.com/npillmayer/otrebuild/otplatform"
	"seehuhn.de/go/sfnt/cmap"
)

// Mode selects the procedure of ReconcileCmap.
type Mode int

const (
	// Fix keeps the subtables of a font and derives the missing ones.
	Fix Mode = iota
	// Rebuild regenerates all subtables from the single best source subtable.
	Rebuild
)

func (m Mode) String() string {
	if m == Rebuild {
		return "rebuild"
	}
	return "fix"
}

// ReconcileCmap derives a consistent set of 'cmap' subtables from the
// subtables of a font.
//
// Subtables the engine does not recognize, such as variation sequences or
// legacy CJK encodings, are appended to the result unchanged and in order,
// unless a derived subtable has the same platform, encoding and language.
// The result holds at most one subtable per key.
// Lossy derivations are reported as warnings.
func ReconcileCmap(subtables []otcmap.Subtable, mode Mode, jobs Jobs) ([]otcmap.Subtable, []ot.FontWarning) {
	tracer().Debugf("reconciling %d cmap subtables, mode %s", len(subtables), mode)
	if mode == Rebuild {
		return rebuildCmap(subtables)
	}
	return fixCmap(subtables, jobs)
}

// Source slots of mode Fix, from most to least complete.
const (
	slotUniFull = iota
	slotUniBMP
	slotMacRoman
	slotBMPFromMacRoman
	fixSlotCount
)

// fixCmap fills the source slots top-down, each empty slot derived from the
// one above it, and expands the slots to their platform variants.
func fixCmap(subtables []otcmap.Subtable, jobs Jobs) ([]otcmap.Subtable, []ot.FontWarning) {
	var slots [fixSlotCount]*otcmap.Subtable
	var unsupported []otcmap.Subtable
	put := func(slot int, s otcmap.Subtable) {
		switch {
		case s.PlatformID == otplatform.PlatformIDWindows:
			slots[slot] = &s
		case slots[slot] == nil:
			slots[slot] = &s
		default:
			tracer().Debugf("ignoring %s, slot %d already taken", s, slot)
		}
	}
	for _, s := range subtables {
		switch {
		case s.IsRaw():
			unsupported = append(unsupported, s)
		case s.IsUnicode() && s.Format == otcmap.FormatSegmentCoverage:
			put(slotUniFull, s)
		case s.IsUnicode() && (s.Format == otcmap.FormatSegmentDelta || s.Format == otcmap.FormatTrimmedArray):
			put(slotUniBMP, s)
		case s.IsMacRoman():
			slots[slotMacRoman] = &s
		default:
			unsupported = append(unsupported, s)
		}
	}
	var warnings []ot.FontWarning
	for level := slotUniFull; level < slotBMPFromMacRoman; level++ {
		if slots[level+1] != nil || slots[level] == nil {
			continue
		}
		next, w := deriveNext(level, *slots[level])
		slots[level+1] = &next
		warnings = append(warnings, w...)
	}
	var result []otcmap.Subtable
	if s := slots[slotUniFull]; s != nil {
		result = append(result, otcmap.BuildFullRepertoireVariants(*s)...)
	}
	if s := slots[slotUniBMP]; s != nil {
		result = append(result, otcmap.BuildBMPVariants(*s)...)
	}
	if s := slots[slotMacRoman]; s != nil {
		if jobs.RebuildMacOffice {
			tracer().Infof("leaving out Macintosh Roman subtable for Mac Office")
		} else {
			result = append(result, *s)
		}
	}
	if s := slots[slotBMPFromMacRoman]; s != nil && slots[slotUniBMP] == nil {
		result = append(result, otcmap.BuildBMPVariants(*s)...)
	}
	return passThrough(result, unsupported, warnings)
}

// passThrough appends the subtables the engine does not consume to result,
// leaving out those whose key result already holds. Dropping a subtable
// which differs from the one kept is reported.
func passThrough(result, unsupported []otcmap.Subtable, warnings []ot.FontWarning) ([]otcmap.Subtable, []ot.FontWarning) {
	emitted := make(map[cmap.Key]int, len(result)+len(unsupported))
	for i, s := range result {
		emitted[s.Key()] = i
	}
	for _, s := range unsupported {
		i, taken := emitted[s.Key()]
		if !taken {
			emitted[s.Key()] = len(result)
			result = append(result, s)
			continue
		}
		if !s.Equal(result[i]) {
			warnings = append(warnings, warning("cmap", "%s replaced by %s", s, result[i]))
		}
	}
	return result, warnings
}

// deriveNext derives the subtable of slot level+1 from the subtable in slot
// level.
func deriveNext(level int, s otcmap.Subtable) (otcmap.Subtable, []ot.FontWarning) {
	switch level {
	case slotUniFull:
		bmp, dropped := otcmap.Truncate(s)
		bmp = otcmap.BuildBMPVariants(bmp)[0]
		if dropped > 0 {
			return bmp, []ot.FontWarning{warning("cmap",
				"%d characters beyond the BMP not available in BMP subtables", dropped)}
		}
		return bmp, nil
	case slotUniBMP:
		mac := otcmap.BuildMacRomanFromUnicode(s)
		if n := s.Len() - mac.Len(); n > 0 {
			return mac, []ot.FontWarning{warning("cmap",
				"%d characters not representable in Macintosh Roman", n)}
		}
		return mac, nil
	}
	return otcmap.BuildUnicodeFromMacRoman(s)[0], nil
}

// Source slots of mode Rebuild, listed by decreasing precedence.
const (
	slotLastResort = iota
	slotWinFull
	slotMacFull
	slotWinBMP
	slotMacBMP
	slotMacRomanOnly
	rebuildSlotCount
)

// rebuildCmap regenerates all Unicode subtables from the best source
// subtable. Macintosh Roman subtables serve as a source only and are not
// part of the result.
func rebuildCmap(subtables []otcmap.Subtable) ([]otcmap.Subtable, []ot.FontWarning) {
	var slots [rebuildSlotCount]*otcmap.Subtable
	var unsupported []otcmap.Subtable
	for _, s := range subtables {
		slot := -1
		switch {
		case s.IsLastResort():
			slot = slotLastResort
		case s.IsRaw():
		case s.IsUnicode() && s.Format == otcmap.FormatSegmentCoverage:
			slot = pick(s, slotWinFull, slotMacFull)
		case s.IsUnicode() && (s.Format == otcmap.FormatSegmentDelta || s.Format == otcmap.FormatTrimmedArray):
			slot = pick(s, slotWinBMP, slotMacBMP)
		case s.IsMacRoman():
			slot = slotMacRomanOnly
		}
		if slot < 0 {
			unsupported = append(unsupported, s)
			continue
		}
		slots[slot] = &s
	}
	var result []otcmap.Subtable
	var warnings []ot.FontWarning
	for slot, s := range slots {
		if s == nil {
			continue
		}
		tracer().Debugf("rebuilding cmap from %s", s)
		switch slot {
		case slotLastResort:
			result = otcmap.BuildFmt13FromLastResort(*s)
		case slotWinFull, slotMacFull:
			var dropped int
			result, dropped = otcmap.BuildBMPAndFullFromFull(*s)
			if dropped > 0 {
				warnings = append(warnings, warning("cmap",
					"%d characters beyond the BMP not available in BMP subtables", dropped))
			}
		case slotWinBMP, slotMacBMP:
			result = otcmap.BuildBMPVariants(*s)
		case slotMacRomanOnly:
			result = otcmap.BuildUnicodeFromMacRoman(*s)
		}
		break
	}
	if result == nil {
		warnings = append(warnings, warning("cmap", "no Unicode or Macintosh Roman subtable to rebuild from"))
	}
	return passThrough(result, unsupported, warnings)
}

// pick chooses the Windows or the Unicode platform slot of a subtable.
func pick(s otcmap.Subtable, win, uni int) int {
	if s.PlatformID == otplatform.PlatformIDWindows {
		return win
	}
	return uni
}
