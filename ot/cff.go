package ot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CFFTopDict holds the font information of the top dictionary of a CFF font
// (table 'CFF '). Entries not present in the dictionary are None.
// Only the first font of a font set is read.
type CFFTopDict struct {
	FontName           string // from the Name INDEX
	Version            Option[string]
	Notice             Option[string]
	Copyright          Option[string]
	FullName           Option[string]
	FamilyName         Option[string]
	Weight             Option[string]
	ItalicAngle        Option[float64]
	IsFixedPitch       Option[bool]
	UnderlinePosition  Option[float64]
	UnderlineThickness Option[float64]
	FontBBox           Option[[4]float64]
}

// ErrCFF is returned for CFF data which cannot be read.
var ErrCFF = errors.New("malformed CFF data")

// Top DICT operators, escaped operators are 1200 + second byte.
const (
	cffOpVersion            = 0
	cffOpNotice             = 1
	cffOpFullName           = 2
	cffOpFamilyName         = 3
	cffOpWeight             = 4
	cffOpFontBBox           = 5
	cffOpCopyright          = 1200
	cffOpIsFixedPitch       = 1201
	cffOpItalicAngle        = 1202
	cffOpUnderlinePosition  = 1203
	cffOpUnderlineThickness = 1204
)

// ParseCFF decodes the header, Name INDEX, Top DICT INDEX and String INDEX
// of a CFF table.
func ParseCFF(data []byte) (*CFFTopDict, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: header too short", ErrCFF)
	}
	if data[0] != 1 {
		return nil, fmt.Errorf("%w: unsupported major version %d", ErrCFF, data[0])
	}
	pos := int(data[2]) // hdrSize
	names, pos, err := cffIndex(data, pos)
	if err != nil {
		return nil, fmt.Errorf("name index: %w", err)
	}
	dicts, pos, err := cffIndex(data, pos)
	if err != nil {
		return nil, fmt.Errorf("top dict index: %w", err)
	}
	strs, _, err := cffIndex(data, pos)
	if err != nil {
		return nil, fmt.Errorf("string index: %w", err)
	}
	if len(names) == 0 || len(dicts) == 0 {
		return nil, fmt.Errorf("%w: empty font set", ErrCFF)
	}
	top := &CFFTopDict{FontName: string(names[0])}
	dict, err := cffDict(dicts[0])
	if err != nil {
		return nil, err
	}
	sid := func(op int) Option[string] {
		operands, ok := dict[op]
		if !ok || len(operands) == 0 {
			return None[string]()
		}
		n := int(operands[0])
		if n < 0 {
			return None[string]()
		}
		if n < len(cffStandardStrings) {
			return Some(cffStandardStrings[n])
		}
		if n -= len(cffStandardStrings); n < len(strs) {
			return Some(string(strs[n]))
		}
		tracer().Infof("CFF string id %v out of range", operands[0])
		return None[string]()
	}
	number := func(op int) Option[float64] {
		if operands, ok := dict[op]; ok && len(operands) > 0 {
			return Some(operands[0])
		}
		return None[float64]()
	}
	top.Version = sid(cffOpVersion)
	top.Notice = sid(cffOpNotice)
	top.Copyright = sid(cffOpCopyright)
	top.FullName = sid(cffOpFullName)
	top.FamilyName = sid(cffOpFamilyName)
	top.Weight = sid(cffOpWeight)
	top.ItalicAngle = number(cffOpItalicAngle)
	top.IsFixedPitch = Map(number(cffOpIsFixedPitch), func(x float64) bool { return x != 0 })
	top.UnderlinePosition = number(cffOpUnderlinePosition)
	top.UnderlineThickness = number(cffOpUnderlineThickness)
	if bbox, ok := dict[cffOpFontBBox]; ok && len(bbox) == 4 {
		top.FontBBox = Some([4]float64{bbox[0], bbox[1], bbox[2], bbox[3]})
	}
	tracer().Debugf("CFF top dict of %s: %d entries", top.FontName, len(dict))
	return top, nil
}

// cffIndex reads an INDEX structure starting at pos and returns its items
// and the position following it.
func cffIndex(data []byte, pos int) ([][]byte, int, error) {
	if pos+2 > len(data) {
		return nil, 0, fmt.Errorf("%w: index out of bounds", ErrCFF)
	}
	count := int(u16(data[pos:]))
	if count == 0 {
		return nil, pos + 2, nil
	}
	if pos+3 > len(data) {
		return nil, 0, fmt.Errorf("%w: index out of bounds", ErrCFF)
	}
	offSize := int(data[pos+2])
	if offSize < 1 || offSize > 4 {
		return nil, 0, fmt.Errorf("%w: invalid offset size %d", ErrCFF, offSize)
	}
	offStart := pos + 3
	dataStart := offStart + (count+1)*offSize - 1 // offsets are 1-based
	if dataStart >= len(data) {
		return nil, 0, fmt.Errorf("%w: index offsets out of bounds", ErrCFF)
	}
	offset := func(i int) int {
		v := 0
		for _, b := range data[offStart+i*offSize : offStart+(i+1)*offSize] {
			v = v<<8 | int(b)
		}
		return v
	}
	items := make([][]byte, count)
	for i := range count {
		from, to := dataStart+offset(i), dataStart+offset(i+1)
		if from <= dataStart || from > to || to > len(data) {
			return nil, 0, fmt.Errorf("%w: index item %d out of bounds", ErrCFF, i)
		}
		items[i] = data[from:to]
	}
	return items, dataStart + offset(count), nil
}

// cffDict decodes a DICT into a map from operator to operands.
func cffDict(data []byte) (map[int][]float64, error) {
	dict := make(map[int][]float64)
	var operands []float64
	for i := 0; i < len(data); {
		b := data[i]
		i++
		switch {
		case b <= 21:
			op := int(b)
			if b == 12 {
				if i >= len(data) {
					return nil, fmt.Errorf("%w: truncated operator", ErrCFF)
				}
				op = 1200 + int(data[i])
				i++
			}
			dict[op] = operands
			operands = nil
		case b == 28:
			if i+2 > len(data) {
				return nil, fmt.Errorf("%w: truncated operand", ErrCFF)
			}
			operands = append(operands, float64(int16(u16(data[i:]))))
			i += 2
		case b == 29:
			if i+4 > len(data) {
				return nil, fmt.Errorf("%w: truncated operand", ErrCFF)
			}
			operands = append(operands, float64(int32(u32(data[i:]))))
			i += 4
		case b == 30:
			x, n, err := cffReal(data[i:])
			if err != nil {
				return nil, err
			}
			operands = append(operands, x)
			i += n
		case b >= 32 && b <= 246:
			operands = append(operands, float64(int(b)-139))
		case b >= 247 && b <= 254:
			if i >= len(data) {
				return nil, fmt.Errorf("%w: truncated operand", ErrCFF)
			}
			b1 := int(data[i])
			i++
			if b <= 250 {
				operands = append(operands, float64((int(b)-247)*256+b1+108))
			} else {
				operands = append(operands, float64(-(int(b)-251)*256-b1-108))
			}
		default:
			return nil, fmt.Errorf("%w: invalid DICT byte %d", ErrCFF, b)
		}
	}
	return dict, nil
}

// cffReal decodes a packed BCD real number and returns it with the number of
// bytes consumed.
func cffReal(data []byte) (float64, int, error) {
	var sb strings.Builder
	for i, b := range data {
		for _, nibble := range [2]byte{b >> 4, b & 0x0F} {
			switch {
			case nibble <= 9:
				sb.WriteByte('0' + nibble)
			case nibble == 0xA:
				sb.WriteByte('.')
			case nibble == 0xB:
				sb.WriteString("E")
			case nibble == 0xC:
				sb.WriteString("E-")
			case nibble == 0xE:
				sb.WriteByte('-')
			case nibble == 0xF:
				x, err := strconv.ParseFloat(sb.String(), 64)
				if err != nil {
					return 0, 0, fmt.Errorf("%w: real number %q", ErrCFF, sb.String())
				}
				return x, i + 1, nil
			default:
				return 0, 0, fmt.Errorf("%w: reserved nibble in real number", ErrCFF)
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: unterminated real number", ErrCFF)
}
