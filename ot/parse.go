package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Code comment often will cite passage from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// MaxTableCount is the maximum number of tables accepted in a font directory.
// Real fonts carry less than 50.
const MaxTableCount = 1024

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// Parse parses an sfnt font (TrueType, Apple 'true' or CFF-flavoured OpenType)
// from a byte slice.
// The tables of the font are copied, i.e. the font does not reference data
// after Parse returns.
func Parse(font []byte) (*Font, error) {
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	r := bytes.NewReader(font)
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errFontFormat(fmt.Sprintf("cannot read header: %v", err))
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())

	// Create error collector for accumulating errors during parsing
	ec := &errorCollector{}

	if !(h.FontType == FontTypeCFF ||
		h.FontType == FontTypeTrueType ||
		h.FontType == FontTypeApple) {
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	if h.TableCount > MaxTableCount {
		return nil, errFontFormat(fmt.Sprintf("table count too large: %d", h.TableCount))
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	dirEnd := 12 + 16*int(h.TableCount)
	if dirEnd > len(font) {
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := font[12:dirEnd], Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			// fonts in the wild violate this, we re-sort on output
			ec.addWarning(tag, "table directory not sorted", 12)
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // "all tables must begin on four byte boundaries".
			ec.addWarning(tag, "table not aligned to four bytes", off)
		}
		// Validate table bounds before slicing to prevent panic
		tableEnd, err := checkedAddUint32(off, size)
		if err != nil {
			ec.addError(tag, "Size", fmt.Sprintf("size calculation overflow: %v", err), SeverityCritical, off)
			return nil, errFontFormat(fmt.Sprintf("table %s: size calculation overflow: %v", tag, err))
		}
		if off > uint32(len(font)) || tableEnd > uint32(len(font)) {
			ec.addError(tag, "Bounds", fmt.Sprintf("bounds [%d:%d] exceed font size %d", off, tableEnd, len(font)), SeverityCritical, off)
			return nil, errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, tableEnd, len(font)))
		}
		if _, dup := otf.tables[tag]; dup {
			ec.addWarning(tag, "duplicate table, keeping the first one", off)
			continue
		}
		data := bytes.Clone(font[off:tableEnd])
		if data == nil {
			data = []byte{}
		}
		t, err := parseTable(tag, data, off, ec)
		if err != nil {
			return nil, err
		}
		otf.tables[tag] = t
		otf.order = append(otf.order, tag)
	}
	// Transfer accumulated errors and warnings to the Font
	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings
	return otf, nil
}

// parseTable creates a table, interpreting the tables for which a typed view
// exists. A typed table that is too short to be interpreted is kept as a
// generic table and an error is recorded.
func parseTable(t Tag, b []byte, offset uint32, ec *errorCollector) (Table, error) {
	var table Table
	var err error
	switch t {
	case T("head"):
		table, err = parseHead(t, b, offset)
	case T("hhea"):
		table, err = parseHHea(t, b, offset)
	case T("maxp"):
		table, err = parseMaxP(t, b, offset)
	case T("OS/2"):
		table, err = parseOS2(t, b, offset)
	case T("post"):
		table, err = parsePost(t, b, offset)
	default:
		tracer().Debugf("font contains table (%s)", t)
		return newTable(t, b, offset), nil
	}
	if err != nil {
		ec.addError(t, "Header", err.Error(), SeverityMajor, offset)
		tracer().Errorf("table %s: %v", t, err)
		return newTable(t, b, offset), nil
	}
	return table, nil
}
