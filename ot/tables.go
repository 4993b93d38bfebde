package ot

import (
	"bytes"
	"fmt"
	"math"

	"seehuhn.de/go/sfnt/maxp"
)

// --- head ------------------------------------------------------------------

// Sizes of the fixed parts of typed tables.
const (
	headSize    = 54
	hheaSize    = 36
	os2MinSize  = 78
	postMinSize = 32
)

// HeadMagic is the value of field magicNumber of table 'head'.
const HeadMagic uint32 = 0x5F0F3CF5

// HeadTable gives global information about the font.
// Only a small subset of fields are made public by HeadTable, as they are
// needed for consistency-checks and repairs. Setters patch the binary data of
// the table.
type HeadTable struct {
	tableBase
	Version          uint32   // 0x00010000 for version 1.0
	FontRevision     float64  // set by font manufacturer
	Magic            uint32   // should be HeadMagic
	Flags            uint16   // see https://docs.microsoft.com/en-us/typography/opentype/spec/head
	UnitsPerEm       uint16   // values 16 … 16384 are valid
	BBox             [4]int16 // xMin, yMin, xMax, yMax over all glyphs
	MacStyle         uint16   // bold, italic, underline, outline, shadow, condensed, extended
	IndexToLocFormat uint16   // needed to interpret loca table
}

// Bits of head.macStyle
const (
	MacStyleBold      uint16 = 1 << 0
	MacStyleItalic    uint16 = 1 << 1
	MacStyleUnderline uint16 = 1 << 2
	MacStyleOutline   uint16 = 1 << 3
	MacStyleShadow    uint16 = 1 << 4
	MacStyleCondensed uint16 = 1 << 5
	MacStyleExtended  uint16 = 1 << 6
)

func parseHead(tag Tag, b []byte, offset uint32) (Table, error) {
	if len(b) < headSize {
		return nil, fmt.Errorf("head table too small: %d bytes", len(b))
	}
	t := &HeadTable{}
	t.tableBase = tableBase{data: b, name: tag, offset: offset, length: uint32(len(b))}
	t.self = t
	t.Version = u32(b[0:])
	t.FontRevision = fixedToFloat(u32(b[4:]))
	t.Magic = u32(b[12:])
	t.Flags = u16(b[16:])
	t.UnitsPerEm = u16(b[18:])
	for i := range t.BBox {
		t.BBox[i] = int16(u16(b[36+2*i:]))
	}
	t.MacStyle = u16(b[44:])
	t.IndexToLocFormat = u16(b[50:])
	return t, nil
}

// SetVersion sets the table version, a 16.16 fixed number.
func (t *HeadTable) SetVersion(v uint32) {
	t.Version = v
	t.put32(0, v)
}

// SetFontRevision sets the font revision, rounded to a 16.16 fixed number.
func (t *HeadTable) SetFontRevision(rev float64) {
	f := floatToFixed(rev)
	t.FontRevision = fixedToFloat(f)
	t.put32(4, f)
}

// SetMagic sets the magic number field.
func (t *HeadTable) SetMagic(m uint32) {
	t.Magic = m
	t.put32(12, m)
}

// SetFlags sets the flags field.
func (t *HeadTable) SetFlags(flags uint16) {
	t.Flags = flags
	t.put16(16, flags)
}

// SetBBox sets the font bounding box.
func (t *HeadTable) SetBBox(bbox [4]int16) {
	t.BBox = bbox
	for i, v := range bbox {
		t.put16(36+2*i, uint16(v))
	}
}

// SetMacStyle sets the macStyle field.
func (t *HeadTable) SetMacStyle(style uint16) {
	t.MacStyle = style
	t.put16(44, style)
}

// --- hhea ------------------------------------------------------------------

// HHeaTable contains information for horizontal layout.
type HHeaTable struct {
	tableBase
	Version          uint32
	MetricDataFormat int16
	Ascender         int16
	Descender        int16
	LineGap          int16
	AdvanceWidthMax  uint16
	NumberOfHMetrics int
}

func parseHHea(tag Tag, b []byte, offset uint32) (Table, error) {
	if len(b) < hheaSize {
		return nil, fmt.Errorf("hhea table too small: %d bytes", len(b))
	}
	t := &HHeaTable{}
	t.tableBase = tableBase{data: b, name: tag, offset: offset, length: uint32(len(b))}
	t.self = t
	t.Version = u32(b[0:])
	t.MetricDataFormat = int16(u16(b[32:]))
	t.Ascender = int16(u16(b[4:]))
	t.Descender = int16(u16(b[6:]))
	t.LineGap = int16(u16(b[8:]))
	t.AdvanceWidthMax = u16(b[10:])
	t.NumberOfHMetrics = int(u16(b[34:]))
	return t, nil
}

// SetMetrics sets ascender, descender and line gap.
func (t *HHeaTable) SetMetrics(ascender, descender, lineGap int16) {
	t.Ascender, t.Descender, t.LineGap = ascender, descender, lineGap
	t.put16(4, uint16(ascender))
	t.put16(6, uint16(descender))
	t.put16(8, uint16(lineGap))
}

// Normalize sets version 1.0 and clears the reserved fields and the metric
// data format.
func (t *HHeaTable) Normalize() {
	t.Version, t.MetricDataFormat = 0x00010000, 0
	t.put32(0, t.Version)
	for at := 24; at <= 32; at += 2 {
		t.put16(at, 0)
	}
}

// --- maxp ------------------------------------------------------------------

// MaxPTable establishes the memory requirements for this font.
// The 'maxp' table contains a count for the number of glyphs in the font.
type MaxPTable struct {
	tableBase
	NumGlyphs int
}

func parseMaxP(tag Tag, b []byte, offset uint32) (Table, error) {
	info, err := maxp.Read(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	t := &MaxPTable{NumGlyphs: info.NumGlyphs}
	t.tableBase = tableBase{data: b, name: tag, offset: offset, length: uint32(len(b))}
	t.self = t
	return t, nil
}

// --- OS/2 ------------------------------------------------------------------

// OS2Table contains the fields of table 'OS/2' which are subject to
// consistency checks and repairs.
type OS2Table struct {
	tableBase
	Version       uint16
	WeightClass   uint16
	WidthClass    uint16
	FsType        uint16
	VendorID      string
	FsSelection   uint16
	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16
	WinAscent     uint16
	WinDescent    uint16
}

// Bits of OS/2.fsSelection
const (
	FsSelectionItalic  uint16 = 1 << 0
	FsSelectionBold    uint16 = 1 << 5
	FsSelectionRegular uint16 = 1 << 6
)

func parseOS2(tag Tag, b []byte, offset uint32) (Table, error) {
	if len(b) < os2MinSize {
		return nil, fmt.Errorf("OS/2 table too small: %d bytes", len(b))
	}
	t := &OS2Table{}
	t.tableBase = tableBase{data: b, name: tag, offset: offset, length: uint32(len(b))}
	t.self = t
	t.Version = u16(b[0:])
	t.WeightClass = u16(b[4:])
	t.WidthClass = u16(b[6:])
	t.FsType = u16(b[8:])
	t.VendorID = string(b[58:62])
	t.FsSelection = u16(b[62:])
	t.TypoAscender = int16(u16(b[68:]))
	t.TypoDescender = int16(u16(b[70:]))
	t.TypoLineGap = int16(u16(b[72:]))
	t.WinAscent = u16(b[74:])
	t.WinDescent = u16(b[76:])
	return t, nil
}

// SetWeightClass sets usWeightClass.
func (t *OS2Table) SetWeightClass(w uint16) {
	t.WeightClass = w
	t.put16(4, w)
}

// SetWidthClass sets usWidthClass.
func (t *OS2Table) SetWidthClass(w uint16) {
	t.WidthClass = w
	t.put16(6, w)
}

// SetFsType sets the embedding licensing rights of the font.
func (t *OS2Table) SetFsType(fsType uint16) {
	t.FsType = fsType
	t.put16(8, fsType)
}

// SetVendorID sets achVendID. Vendor IDs are four characters, padded with
// spaces or cut as appropriate.
func (t *OS2Table) SetVendorID(id string) {
	id = (id + "    ")[:4]
	t.VendorID = id
	t.put32(58, u32([]byte(id)))
}

// SetFsSelection sets the font selection flags.
func (t *OS2Table) SetFsSelection(sel uint16) {
	t.FsSelection = sel
	t.put16(62, sel)
}

// SetTypoMetrics sets sTypoAscender, sTypoDescender and sTypoLineGap.
func (t *OS2Table) SetTypoMetrics(ascender, descender, lineGap int16) {
	t.TypoAscender, t.TypoDescender, t.TypoLineGap = ascender, descender, lineGap
	t.put16(68, uint16(ascender))
	t.put16(70, uint16(descender))
	t.put16(72, uint16(lineGap))
}

// SetWinMetrics sets usWinAscent and usWinDescent.
func (t *OS2Table) SetWinMetrics(ascent, descent uint16) {
	t.WinAscent, t.WinDescent = ascent, descent
	t.put16(74, ascent)
	t.put16(76, descent)
}

// --- post ------------------------------------------------------------------

// PostTable contains additional information needed to use TrueType or
// OpenType fonts on PostScript printers.
type PostTable struct {
	tableBase
	Version            uint32
	ItalicAngle        float64
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool
}

func parsePost(tag Tag, b []byte, offset uint32) (Table, error) {
	if len(b) < postMinSize {
		return nil, fmt.Errorf("post table too small: %d bytes", len(b))
	}
	t := &PostTable{}
	t.tableBase = tableBase{data: b, name: tag, offset: offset, length: uint32(len(b))}
	t.self = t
	t.Version = u32(b[0:])
	t.ItalicAngle = fixedToFloat(u32(b[4:]))
	t.UnderlinePosition = int16(u16(b[8:]))
	t.UnderlineThickness = int16(u16(b[10:]))
	t.IsFixedPitch = u32(b[12:]) != 0
	return t, nil
}

// SetItalicAngle sets the italic angle in counter-clockwise degrees from the
// vertical.
func (t *PostTable) SetItalicAngle(angle float64) {
	f := floatToFixed(angle)
	t.ItalicAngle = fixedToFloat(f)
	t.put32(4, f)
}

// SetUnderline sets position and thickness of the underline.
func (t *PostTable) SetUnderline(position, thickness int16) {
	t.UnderlinePosition, t.UnderlineThickness = position, thickness
	t.put16(8, uint16(position))
	t.put16(10, uint16(thickness))
}

// SetFixedPitch sets the isFixedPitch flag.
func (t *PostTable) SetFixedPitch(fixed bool) {
	t.IsFixedPitch = fixed
	var v uint32
	if fixed {
		v = 1
	}
	t.put32(12, v)
}

// --- Fixed 16.16 -----------------------------------------------------------

func fixedToFloat(f uint32) float64 {
	return float64(int32(f)) / 65536
}

func floatToFixed(x float64) uint32 {
	return uint32(int32(math.Round(x * 65536)))
}
