package otcmap

import (
	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

const (
	surrogateFirst = 0xD800
	surrogateLast  = 0xDFFF
	bmpLimit       = 0x10000
)

// IsBMPCode reports whether a Unicode code point can be mapped in a BMP
// subtable: below U+10000 and not a surrogate.
func IsBMPCode(code uint32) bool {
	return code < surrogateFirst || (code > surrogateLast && code < bmpLimit)
}

// Truncate returns a copy of a full repertoire subtable reduced to BMP code
// points, and the number of codes dropped.
func Truncate(full Subtable) (Subtable, int) {
	bmp := Subtable{
		PlatformID: full.PlatformID,
		EncodingID: full.EncodingID,
		Format:     FormatSegmentDelta,
		Mapping:    make(map[uint32]sfnt.GlyphIndex, len(full.Mapping)),
	}
	dropped := 0
	for code, gid := range full.Mapping {
		if IsBMPCode(code) {
			bmp.Mapping[code] = gid
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		tracer().Infof("truncating to BMP drops %d codes", dropped)
	}
	return bmp, dropped
}

// BuildMacRomanFromUnicode derives a Macintosh Roman subtable in format 6
// from a Unicode subtable. Only characters of the Macintosh Roman repertoire
// are kept. Format 13 sources are looked up but not counted against.
func BuildMacRomanFromUnicode(uni Subtable) Subtable {
	mac := Subtable{
		PlatformID: otplatform.PlatformIDMacintosh,
		EncodingID: otplatform.EncodingIDMacRoman,
		Format:     FormatTrimmedArray,
		Mapping:    make(map[uint32]sfnt.GlyphIndex),
	}
	for code := range 256 {
		r := otplatform.MacRomanToUnicode(byte(code))
		if gid := uni.Lookup(uint32(r)); gid != 0 {
			mac.Mapping[uint32(code)] = gid
		}
	}
	if uni.Format != FormatManyToOne {
		if n := len(uni.Mapping) - len(mac.Mapping); n > 0 {
			tracer().Infof("%d characters not in Macintosh Roman", n)
		}
	}
	return mac
}

// BuildUnicodeFromMacRoman derives the Windows BMP (3,1) and Unicode BMP
// (0,3) subtables, both format 4, from a Macintosh Roman subtable.
func BuildUnicodeFromMacRoman(mac Subtable) []Subtable {
	uni := Subtable{Mapping: make(map[uint32]sfnt.GlyphIndex, len(mac.Mapping))}
	for code, gid := range mac.Mapping {
		if code > 0xFF {
			continue
		}
		uni.Mapping[uint32(otplatform.MacRomanToUnicode(byte(code)))] = gid
	}
	return BuildBMPVariants(uni)
}

// BuildBMPVariants re-tags a BMP mapping as Windows BMP (3,1) and Unicode BMP
// (0,3) subtables, both format 4.
func BuildBMPVariants(bmp Subtable) []Subtable {
	return []Subtable{
		bmp.retag(otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsBMP, FormatSegmentDelta),
		bmp.retag(otplatform.PlatformIDUnicode, otplatform.EncodingIDUnicodeBMP, FormatSegmentDelta),
	}
}

// BuildFullRepertoireVariants re-tags a full repertoire mapping as Windows
// full repertoire (3,10) and Unicode full repertoire (0,4) subtables, both
// format 12.
func BuildFullRepertoireVariants(full Subtable) []Subtable {
	return []Subtable{
		full.retag(otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsFull, FormatSegmentCoverage),
		full.retag(otplatform.PlatformIDUnicode, otplatform.EncodingIDUnicodeFull, FormatSegmentCoverage),
	}
}

// BuildBMPAndFullFromFull derives the Windows BMP, Windows full repertoire,
// Unicode BMP and Unicode full repertoire subtables from a full repertoire
// mapping, in this order. The BMP subtables drop surrogates and
// supplementary-plane code points; their number is returned as well.
func BuildBMPAndFullFromFull(full Subtable) ([]Subtable, int) {
	bmp, dropped := Truncate(full)
	bmps := BuildBMPVariants(bmp)
	fulls := BuildFullRepertoireVariants(full)
	return []Subtable{bmps[0], fulls[0], bmps[1], fulls[1]}, dropped
}

// BuildFmt13FromLastResort re-tags a format 13 subtable as Windows full
// repertoire (3,10), Unicode full repertoire (0,4) and Unicode full coverage
// (0,6) subtables.
func BuildFmt13FromLastResort(lastResort Subtable) []Subtable {
	return []Subtable{
		lastResort.retag(otplatform.PlatformIDWindows, otplatform.EncodingIDWindowsFull, FormatManyToOne),
		lastResort.retag(otplatform.PlatformIDUnicode, otplatform.EncodingIDUnicodeFull, FormatManyToOne),
		lastResort.retag(otplatform.PlatformIDUnicode, otplatform.EncodingIDUnicodeFullCoverage, FormatManyToOne),
	}
}
