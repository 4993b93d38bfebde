package ot

import (
	"fmt"
	"slices"
)

// Font represents the table structure of an sfnt font file.
// It is used to inspect and repair the tables of a font and to write the
// font back to disk.
//
// Every table of the font is kept as raw bytes, in directory order. A small
// set of tables is interpreted and exposed with typed views (see Head, HHea,
// MaxP, OS2, Post). Setters of the typed views patch the raw table bytes, thus
// writing the font back preserves any change made through a view.
type Font struct {
	Header        *FontHeader
	tables        map[Tag]Table
	order         []Tag         // tables in directory order
	parseErrors   []FontError   // Errors accumulated during parsing
	parseWarnings []FontWarning // Warnings accumulated during parsing
}

// FontHeader is a directory of the top-level tables in a font. If the font file
// contains only one font, the table directory will begin at byte 0 of the file.
//
// OpenType fonts that contain TrueType outlines should use the value of 0x00010000
// for the FontType. OpenType fonts containing CFF data (version 1 or 2) should
// use 0x4F54544F ('OTTO', when re-interpreted as a Tag).
// The Apple specification for TrueType fonts allows for 'true' and 'typ1',
// but these version tags should not be used for OpenType fonts.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// Font types (scaler types) recognized in the font header.
const (
	FontTypeTrueType uint32 = 0x00010000
	FontTypeApple    uint32 = 0x74727565 // 'true'
	FontTypeCFF      uint32 = 0x4f54544f // 'OTTO'
)

// Table returns the font table for a given tag. If a table for a tag cannot
// be found in the font, nil is returned.
//
// For example to receive the `OS/2` and the `head` table, clients may call
//
//	os2  := otf.Table(ot.T("OS/2")).Self().AsOS2()
//	head := otf.Table(ot.T("head")).Self().AsHead()
//
// Table tag names are case-sensitive, following the names in the OpenType specification.
func (otf *Font) Table(tag Tag) Table {
	if t, ok := otf.tables[tag]; ok {
		return t
	}
	return nil
}

// TableTags returns a list of tags, one for each table contained in the font,
// in directory order.
func (otf *Font) TableTags() []Tag {
	return slices.Clone(otf.order)
}

// HasTable reports whether the font contains a table for a tag.
func (otf *Font) HasTable(tag Tag) bool {
	_, ok := otf.tables[tag]
	return ok
}

// SetTable installs the binary data of a table, replacing an existing table
// with the same tag. Tables with a typed view are re-interpreted.
func (otf *Font) SetTable(tag Tag, data []byte) error {
	ec := &errorCollector{}
	t, err := parseTable(tag, data, 0, ec)
	if err != nil {
		return err
	}
	otf.parseErrors = append(otf.parseErrors, ec.errors...)
	otf.parseWarnings = append(otf.parseWarnings, ec.warnings...)
	if _, ok := otf.tables[tag]; !ok {
		otf.order = append(otf.order, tag)
	}
	otf.tables[tag] = t
	tracer().Debugf("set table %s, %d bytes", tag, len(data))
	return nil
}

// RemoveTable removes a table from the font. It is not an error to remove a
// table the font does not contain.
func (otf *Font) RemoveTable(tag Tag) {
	if _, ok := otf.tables[tag]; !ok {
		return
	}
	delete(otf.tables, tag)
	otf.order = slices.DeleteFunc(otf.order, func(t Tag) bool { return t == tag })
	tracer().Debugf("removed table %s", tag)
}

// IsCFF reports whether the font carries PostScript outlines in a 'CFF ' table.
func (otf *Font) IsCFF() bool {
	return otf.HasTable(T("CFF "))
}

// IsVariable reports whether the font is a variable font.
func (otf *Font) IsVariable() bool {
	return otf.HasTable(T("fvar"))
}

func (otf *Font) self(tag Tag) TableSelf {
	if t := otf.Table(tag); t != nil {
		return t.Self()
	}
	return TableSelf{}
}

// Head returns the typed 'head' table, or nil.
func (otf *Font) Head() *HeadTable {
	return otf.self(T("head")).AsHead()
}

// HHea returns the typed 'hhea' table, or nil.
func (otf *Font) HHea() *HHeaTable {
	return otf.self(T("hhea")).AsHHea()
}

// MaxP returns the typed 'maxp' table, or nil.
func (otf *Font) MaxP() *MaxPTable {
	return otf.self(T("maxp")).AsMaxP()
}

// OS2 returns the typed 'OS/2' table, or nil.
func (otf *Font) OS2() *OS2Table {
	return otf.self(T("OS/2")).AsOS2()
}

// Post returns the typed 'post' table, or nil.
func (otf *Font) Post() *PostTable {
	return otf.self(T("post")).AsPost()
}

// CFF returns the decoded top dictionary of the 'CFF ' table, if present and
// readable.
func (otf *Font) CFF() Option[*CFFTopDict] {
	t := otf.Table(T("CFF "))
	if t == nil {
		return None[*CFFTopDict]()
	}
	top, err := ParseCFF(t.Binary())
	if err != nil {
		tracer().Infof("cannot read CFF top dict: %v", err)
		return None[*CFFTopDict]()
	}
	return Some(top)
}

// Errors returns all errors encountered during font parsing.
// These errors represent issues that were found but did not prevent parsing from completing.
func (otf *Font) Errors() []FontError {
	return otf.parseErrors
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate potential issues that don't affect font usability.
func (otf *Font) Warnings() []FontWarning {
	return otf.parseWarnings
}

// CriticalErrors returns only critical errors that may affect font usability.
func (otf *Font) CriticalErrors() []FontError {
	return criticalOnly(otf.parseErrors)
}

// HasCriticalErrors returns true if any critical errors were encountered during parsing.
func (otf *Font) HasCriticalErrors() bool {
	return hasCritical(otf.parseErrors)
}

// --- Tag -------------------------------------------------------------------

// Tag is defined by the spec as:
// Array of four uint8s (length = 32 bits) used to identify a table,
// design-variation axis, script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append(b, []byte{0, 0, 0, 0}...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// --- Tables ----------------------------------------------------------------

// Table represents one of the various OpenType font tables
//
// Required Tables, according to the OpenType specification:
// 'cmap' (Character to glyph mapping), 'head' (Font header), 'hhea' (Horizontal header),
// 'hmtx' (Horizontal metrics), 'maxp' (Maximum profile), 'name' (Naming table),
// 'OS/2' (OS/2 and Windows specific metrics), 'post' (PostScript information).
type Table interface {
	Extent() (uint32, uint32) // offset and byte size within the font's binary data
	Binary() []byte           // the bytes of this table
	Self() TableSelf
}

func newTable(tag Tag, b []byte, offset uint32) *genericTable {
	t := &genericTable{tableBase{
		data:   b,
		name:   tag,
		offset: offset,
		length: uint32(len(b)),
	}}
	t.self = t
	return t
}

type genericTable struct {
	tableBase
}

// tableBase is a common parent for all kinds of OpenType tables.
type tableBase struct {
	data   []byte
	name   Tag
	offset uint32 // from start of font file, 0 for tables set after parsing
	length uint32
	self   any
}

// Extent returns the offset and length of a table in the original font binary.
func (tb *tableBase) Extent() (uint32, uint32) {
	return tb.offset, tb.length
}

// Binary returns the bytes of this table. Should be treated as read-only by
// clients; use the setters of typed views to modify a table.
func (tb *tableBase) Binary() []byte {
	return tb.data
}

func (tb *tableBase) Self() TableSelf {
	return TableSelf{tableBase: tb}
}

func (tb *tableBase) put16(at int, v uint16) {
	if at+2 > len(tb.data) {
		tracer().Errorf("table %s too short for field at %d", tb.name, at)
		return
	}
	tb.data[at] = byte(v >> 8)
	tb.data[at+1] = byte(v)
}

func (tb *tableBase) put32(at int, v uint32) {
	if at+4 > len(tb.data) {
		tracer().Errorf("table %s too short for field at %d", tb.name, at)
		return
	}
	tb.data[at] = byte(v >> 24)
	tb.data[at+1] = byte(v >> 16)
	tb.data[at+2] = byte(v >> 8)
	tb.data[at+3] = byte(v)
}

// TableSelf is a reference to a table. Its primary use is for converting
// a generic table to a concrete table flavour, and for reproducing the
// name tag of a table.
type TableSelf struct {
	tableBase *tableBase
}

// NameTag returns the 4-letter name of a table.
func (tself TableSelf) NameTag() Tag {
	if tself.tableBase == nil {
		return 0
	}
	return tself.tableBase.name
}

func safeSelf(tself TableSelf) any {
	if tself.tableBase == nil || tself.tableBase.self == nil {
		return TableSelf{}
	}
	return tself.tableBase.self
}

// AsHead returns this table as a head table, or nil.
func (tself TableSelf) AsHead() *HeadTable {
	if k, ok := safeSelf(tself).(*HeadTable); ok {
		return k
	}
	return nil
}

// AsHHea returns this table as a hhea table, or nil.
func (tself TableSelf) AsHHea() *HHeaTable {
	if k, ok := safeSelf(tself).(*HHeaTable); ok {
		return k
	}
	return nil
}

// AsMaxP returns this table as a maxp table, or nil.
func (tself TableSelf) AsMaxP() *MaxPTable {
	if k, ok := safeSelf(tself).(*MaxPTable); ok {
		return k
	}
	return nil
}

// AsOS2 returns this table as an OS/2 table, or nil.
func (tself TableSelf) AsOS2() *OS2Table {
	if k, ok := safeSelf(tself).(*OS2Table); ok {
		return k
	}
	return nil
}

// AsPost returns this table as a post table, or nil.
func (tself TableSelf) AsPost() *PostTable {
	if k, ok := safeSelf(tself).(*PostTable); ok {
		return k
	}
	return nil
}

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}
