package otcmap

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

// Subtable formats handled by this package.
const (
	FormatByte            uint16 = 0
	FormatSegmentDelta    uint16 = 4
	FormatTrimmedArray    uint16 = 6
	FormatSegmentCoverage uint16 = 12
	FormatManyToOne       uint16 = 13
	FormatVariation       uint16 = 14
)

// Group maps a range of character codes to a single glyph, as in format 13
// subtables.
type Group struct {
	Start, End uint32 // inclusive
	Glyph      sfnt.GlyphIndex
}

// Subtable is a single 'cmap' subtable for a platform/encoding/language
// combination.
//
// Mapping is set for formats 0, 4, 6 and 12, Groups for format 13. Subtables
// of any other format carry their binary form in Raw.
type Subtable struct {
	PlatformID otplatform.PlatformID
	EncodingID otplatform.EncodingID
	Language   uint16 // Macintosh only, 0 otherwise
	Format     uint16
	Mapping    map[uint32]sfnt.GlyphIndex
	Groups     []Group
	Raw        []byte
}

func (s Subtable) String() string {
	switch {
	case s.Raw != nil:
		return fmt.Sprintf("cmap(%d,%d,%d) format %d, %d bytes", s.PlatformID, s.EncodingID,
			s.Language, s.Format, len(s.Raw))
	case s.Format == FormatManyToOne:
		return fmt.Sprintf("cmap(%d,%d,%d) format %d, %d groups", s.PlatformID, s.EncodingID,
			s.Language, s.Format, len(s.Groups))
	}
	return fmt.Sprintf("cmap(%d,%d,%d) format %d, %d codes", s.PlatformID, s.EncodingID,
		s.Language, s.Format, len(s.Mapping))
}

// PlatformEncoding returns the platform/encoding pair of the subtable.
func (s Subtable) PlatformEncoding() otplatform.PlatformEncoding {
	return otplatform.PlatformEncoding{Platform: s.PlatformID, Encoding: s.EncodingID}
}

// IsRaw reports whether the subtable is kept in binary form only.
func (s Subtable) IsRaw() bool {
	return s.Raw != nil
}

// IsUnicode is true for subtables of the Unicode platform and for Windows
// subtables in the Unicode BMP or full repertoire encodings.
func (s Subtable) IsUnicode() bool {
	switch s.PlatformID {
	case otplatform.PlatformIDUnicode:
		return true
	case otplatform.PlatformIDWindows:
		return s.EncodingID == otplatform.EncodingIDWindowsBMP ||
			s.EncodingID == otplatform.EncodingIDWindowsFull
	}
	return false
}

// IsMacRoman is true for Macintosh Roman subtables with language 0.
func (s Subtable) IsMacRoman() bool {
	return s.PlatformID == otplatform.PlatformIDMacintosh &&
		s.EncodingID == otplatform.EncodingIDMacRoman && s.Language == 0
}

// IsLastResort is true for format 13 subtables of the Unicode platform.
func (s Subtable) IsLastResort() bool {
	return s.PlatformID == otplatform.PlatformIDUnicode && s.Format == FormatManyToOne
}

// IsVariationSequences is true for format 14 subtables of the Unicode
// platform.
func (s Subtable) IsVariationSequences() bool {
	return s.PlatformID == otplatform.PlatformIDUnicode && s.Format == FormatVariation
}

// IsSymbol is true for Windows symbol subtables.
func (s Subtable) IsSymbol() bool {
	return s.PlatformID == otplatform.PlatformIDWindows &&
		s.EncodingID == otplatform.EncodingIDWindowsSymbol
}

// IsBMP is true for Unicode subtables in format 4 or 6.
func (s Subtable) IsBMP() bool {
	return s.IsUnicode() && !s.IsRaw() &&
		(s.Format == FormatSegmentDelta || s.Format == FormatTrimmedArray)
}

// IsFullRepertoire is true for Unicode subtables in format 12.
func (s Subtable) IsFullRepertoire() bool {
	return s.IsUnicode() && !s.IsRaw() && s.Format == FormatSegmentCoverage
}

// Len returns the number of mapped character codes.
func (s Subtable) Len() int {
	if s.Format == FormatManyToOne {
		n := 0
		for _, g := range s.Groups {
			n += int(g.End-g.Start) + 1
		}
		return n
	}
	return len(s.Mapping)
}

// Lookup returns the glyph for a character code, or 0 for unmapped codes.
func (s Subtable) Lookup(code uint32) sfnt.GlyphIndex {
	if s.Format == FormatManyToOne {
		for _, g := range s.Groups {
			if code >= g.Start && code <= g.End {
				return g.Glyph
			}
		}
		return 0
	}
	return s.Mapping[code]
}

// Equal reports whether two subtables share key and format and map the same
// codes to the same glyphs.
func (s Subtable) Equal(t Subtable) bool {
	return s.Key() == t.Key() && s.Format == t.Format &&
		maps.Equal(s.Mapping, t.Mapping) &&
		slices.Equal(s.Groups, t.Groups) &&
		bytes.Equal(s.Raw, t.Raw)
}

// Codes returns the mapped character codes in ascending order.
func (s Subtable) Codes() []uint32 {
	return slices.Sorted(maps.Keys(s.Mapping))
}

// retag copies a subtable for a different platform identity.
func (s Subtable) retag(p otplatform.PlatformID, e otplatform.EncodingID, format uint16) Subtable {
	t := Subtable{
		PlatformID: p,
		EncodingID: e,
		Format:     format,
	}
	if s.Mapping != nil {
		t.Mapping = maps.Clone(s.Mapping)
	}
	if s.Groups != nil {
		t.Groups = slices.Clone(s.Groups)
	}
	return t
}

// Coverage returns the platform/encoding pairs of a list of subtables, in
// order and without duplicates.
func Coverage(subtables []Subtable) []otplatform.PlatformEncoding {
	var pes []otplatform.PlatformEncoding
	for _, s := range subtables {
		pe := s.PlatformEncoding()
		if !slices.Contains(pes, pe) {
			pes = append(pes, pe)
		}
	}
	return pes
}
