package otcmap

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/bits"
	"slices"

	"golang.org/x/image/font/sfnt"
)

var errMalformedSubtable = errors.New("malformed cmap subtable")

// maxCodes limits the number of codes a segmented subtable may expand to.
const maxCodes = 0x110000

// --- Decoding --------------------------------------------------------------

// decodeSubtable fills in the mapping of a subtable from its binary form.
// Formats without a mapping model keep their bytes in Raw.
func decodeSubtable(s *Subtable, data []byte) error {
	if len(data) < 2 {
		return errMalformedSubtable
	}
	s.Format = binary.BigEndian.Uint16(data)
	var err error
	switch s.Format {
	case FormatByte:
		s.Mapping, err = decodeFormat0(data)
	case FormatSegmentDelta:
		s.Mapping, err = decodeFormat4(data)
	case FormatTrimmedArray:
		s.Mapping, err = decodeFormat6(data)
	case FormatSegmentCoverage:
		s.Mapping, err = decodeFormat12(data)
	case FormatManyToOne:
		s.Groups, err = decodeFormat13(data)
	default:
		s.Raw = slices.Clone(data)
	}
	if err != nil {
		return fmt.Errorf("cmap(%d,%d) format %d: %w", s.PlatformID, s.EncodingID, s.Format, err)
	}
	return nil
}

func decodeFormat0(data []byte) (map[uint32]sfnt.GlyphIndex, error) {
	if len(data) < 6+256 {
		return nil, errMalformedSubtable
	}
	m := make(map[uint32]sfnt.GlyphIndex)
	for code, gid := range data[6 : 6+256] {
		if gid != 0 {
			m[uint32(code)] = sfnt.GlyphIndex(gid)
		}
	}
	return m, nil
}

func decodeFormat4(data []byte) (map[uint32]sfnt.GlyphIndex, error) {
	if len(data) < 16 {
		return nil, errMalformedSubtable
	}
	if l := int(binary.BigEndian.Uint16(data[2:4])); l >= 16 && l < len(data) {
		data = data[:l]
	}
	segCountX2 := int(binary.BigEndian.Uint16(data[6:8]))
	if segCountX2%2 != 0 || 16+4*segCountX2 > len(data) {
		return nil, errMalformedSubtable
	}
	segCount := segCountX2 / 2
	word := func(i int) uint16 { // i counts words from the end codes on
		return binary.BigEndian.Uint16(data[14+2*i:])
	}
	nWords := (len(data) - 14) / 2
	m := make(map[uint32]sfnt.GlyphIndex)
	prevEnd := uint32(0)
	for k := range segCount {
		end := uint32(word(k)) + 1
		start := uint32(word(segCount + 1 + k))
		delta := word(2*segCount + 1 + k)
		rangeOffset := word(3*segCount + 1 + k)
		if start < prevEnd || end <= start {
			return nil, errMalformedSubtable
		}
		prevEnd = end
		if rangeOffset == 0 {
			for c := start; c < end; c++ {
				if gid := sfnt.GlyphIndex(uint16(c) + delta); gid != 0 {
					m[c] = gid
				}
			}
			continue
		}
		// rangeOffset counts bytes from its own position
		base := 3*segCount + 1 + k + int(rangeOffset)/2
		if base+int(end-start) > nWords {
			if start == 0xFFFF {
				continue // broken final segment, seen in the wild
			}
			return nil, errMalformedSubtable
		}
		for c := start; c < end; c++ {
			gid := word(base + int(c-start))
			if gid != 0 {
				gid += delta
			}
			if gid != 0 {
				m[c] = sfnt.GlyphIndex(gid)
			}
		}
	}
	return m, nil
}

func decodeFormat6(data []byte) (map[uint32]sfnt.GlyphIndex, error) {
	if len(data) < 10 {
		return nil, errMalformedSubtable
	}
	first := uint32(binary.BigEndian.Uint16(data[6:8]))
	count := int(binary.BigEndian.Uint16(data[8:10]))
	if len(data) < 10+2*count || first+uint32(count) > 0x10000 {
		return nil, errMalformedSubtable
	}
	m := make(map[uint32]sfnt.GlyphIndex)
	for i := range count {
		if gid := binary.BigEndian.Uint16(data[10+2*i:]); gid != 0 {
			m[first+uint32(i)] = sfnt.GlyphIndex(gid)
		}
	}
	return m, nil
}

type seqGroup struct {
	start, end uint32
	glyph      uint32
}

func decodeGroups(data []byte) ([]seqGroup, error) {
	if len(data) < 16 {
		return nil, errMalformedSubtable
	}
	n := binary.BigEndian.Uint32(data[12:16])
	if n > (math.MaxInt32-16)/12 || len(data) < 16+int(n)*12 {
		return nil, errMalformedSubtable
	}
	groups := make([]seqGroup, n)
	prevEnd := int64(-1)
	for i := range groups {
		g := data[16+12*i:]
		groups[i] = seqGroup{
			start: binary.BigEndian.Uint32(g[0:4]),
			end:   binary.BigEndian.Uint32(g[4:8]),
			glyph: binary.BigEndian.Uint32(g[8:12]),
		}
		if int64(groups[i].start) <= prevEnd || groups[i].end < groups[i].start ||
			groups[i].end > 0x10FFFF {
			return nil, errMalformedSubtable
		}
		prevEnd = int64(groups[i].end)
	}
	return groups, nil
}

func decodeFormat12(data []byte) (map[uint32]sfnt.GlyphIndex, error) {
	groups, err := decodeGroups(data)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, g := range groups {
		total += int(g.end-g.start) + 1
	}
	if total > maxCodes {
		return nil, errMalformedSubtable
	}
	m := make(map[uint32]sfnt.GlyphIndex, total)
	for _, g := range groups {
		for c := g.start; c <= g.end; c++ {
			gid := g.glyph + (c - g.start)
			if gid > 0xFFFF {
				return nil, errMalformedSubtable
			}
			if gid != 0 {
				m[c] = sfnt.GlyphIndex(gid)
			}
		}
	}
	return m, nil
}

func decodeFormat13(data []byte) ([]Group, error) {
	groups, err := decodeGroups(data)
	if err != nil {
		return nil, err
	}
	res := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.glyph > 0xFFFF {
			return nil, errMalformedSubtable
		}
		res = append(res, Group{Start: g.start, End: g.end, Glyph: sfnt.GlyphIndex(g.glyph)})
	}
	return res, nil
}

// --- Encoding --------------------------------------------------------------

// encodeSubtable returns the binary form of a subtable. Format 0 subtables
// with glyph indices beyond 255 are written in format 6.
func encodeSubtable(s Subtable) ([]byte, error) {
	if s.IsRaw() {
		return s.Raw, nil
	}
	switch s.Format {
	case FormatByte:
		if b, ok := encodeFormat0(s.Mapping, s.Language); ok {
			return b, nil
		}
		tracer().Debugf("%s: glyph index beyond 255, writing format 6", s)
		return encodeFormat6(s.Mapping, s.Language)
	case FormatSegmentDelta:
		return encodeFormat4(s.Mapping, s.Language)
	case FormatTrimmedArray:
		return encodeFormat6(s.Mapping, s.Language)
	case FormatSegmentCoverage:
		return encodeFormat12(s.Mapping, s.Language), nil
	case FormatManyToOne:
		return encodeFormat13(s.Groups, s.Language), nil
	}
	return nil, fmt.Errorf("cannot encode %s", s)
}

func encodeFormat0(m map[uint32]sfnt.GlyphIndex, language uint16) ([]byte, bool) {
	const length = 6 + 256
	out := make([]byte, length)
	binary.BigEndian.PutUint16(out[0:2], FormatByte)
	binary.BigEndian.PutUint16(out[2:4], length)
	binary.BigEndian.PutUint16(out[4:6], language)
	for code, gid := range m {
		if code > 0xFF {
			continue
		}
		if gid > 0xFF {
			return nil, false
		}
		out[6+code] = byte(gid)
	}
	return out, true
}

func encodeFormat6(m map[uint32]sfnt.GlyphIndex, language uint16) ([]byte, error) {
	var codes []uint32
	for code := range m {
		if code <= 0xFFFF {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	first, count := uint32(0), 0
	if len(codes) > 0 {
		first = codes[0]
		count = int(codes[len(codes)-1]-first) + 1
	}
	length := 10 + 2*count
	if length > math.MaxUint16 {
		return nil, fmt.Errorf("format 6: %d codes exceed subtable size", count)
	}
	out := make([]byte, length)
	binary.BigEndian.PutUint16(out[0:2], FormatTrimmedArray)
	binary.BigEndian.PutUint16(out[2:4], uint16(length))
	binary.BigEndian.PutUint16(out[4:6], language)
	binary.BigEndian.PutUint16(out[6:8], uint16(first))
	binary.BigEndian.PutUint16(out[8:10], uint16(count))
	for _, code := range codes {
		binary.BigEndian.PutUint16(out[10+2*(code-first):], uint16(m[code]))
	}
	return out, nil
}

// segment4 is a segment of a format 4 subtable. Segments either map by a
// constant delta or list their glyph indices explicitly.
type segment4 struct {
	first, last uint16
	delta       uint16
	useValues   bool
}

// minDeltaRun is the shortest run of constant delta worth its own segment.
const minDeltaRun = 4

func format4Segments(m map[uint32]sfnt.GlyphIndex) []segment4 {
	var codes []uint16
	for code, gid := range m {
		if code < 0xFFFF && gid != 0 {
			codes = append(codes, uint16(code))
		}
	}
	slices.Sort(codes)
	delta := func(c uint16) uint16 { return uint16(m[uint32(c)]) - c }
	var segs []segment4
	flush := func(run []uint16) {
		if len(run) == 0 {
			return
		}
		seg := segment4{first: run[0], last: run[len(run)-1], delta: delta(run[0])}
		for _, c := range run[1:] {
			if delta(c) != seg.delta {
				seg.useValues, seg.delta = true, 0
				break
			}
		}
		segs = append(segs, seg)
	}
	for i := 0; i < len(codes); {
		j := i + 1 // contiguous codes [i,j)
		for j < len(codes) && codes[j] == codes[j-1]+1 {
			j++
		}
		run := codes[i:j]
		pending := 0 // start of codes not yet in a segment
		for k := 0; k < len(run); {
			l := k + 1
			for l < len(run) && delta(run[l]) == delta(run[k]) {
				l++
			}
			if l-k >= minDeltaRun {
				flush(run[pending:k])
				flush(run[k:l])
				pending = l
			}
			k = l
		}
		flush(run[pending:])
		i = j
	}
	return append(segs, segment4{first: 0xFFFF, last: 0xFFFF, delta: 1})
}

func encodeFormat4(m map[uint32]sfnt.GlyphIndex, language uint16) ([]byte, error) {
	segs := format4Segments(m)
	segCount := len(segs)
	var glyphIDs []uint16
	rangeOffsets := make([]uint16, segCount)
	for i, s := range segs {
		if !s.useValues {
			continue
		}
		offs := 2 * (segCount - i + len(glyphIDs))
		if offs > math.MaxUint16 {
			return nil, errors.New("format 4: too many mappings")
		}
		rangeOffsets[i] = uint16(offs)
		for c := uint32(s.first); c <= uint32(s.last); c++ {
			glyphIDs = append(glyphIDs, uint16(m[c]))
		}
	}
	length := 2 * (8 + 4*segCount + len(glyphIDs))
	if length > math.MaxUint16 {
		return nil, fmt.Errorf("format 4: subtable length %d too large", length)
	}
	sel := bits.Len(uint(segCount))
	searchRange := 1 << sel
	out := make([]byte, 0, length)
	out = binary.BigEndian.AppendUint16(out, FormatSegmentDelta)
	out = binary.BigEndian.AppendUint16(out, uint16(length))
	out = binary.BigEndian.AppendUint16(out, language)
	out = binary.BigEndian.AppendUint16(out, uint16(2*segCount))
	out = binary.BigEndian.AppendUint16(out, uint16(searchRange))
	out = binary.BigEndian.AppendUint16(out, uint16(sel-1))
	out = binary.BigEndian.AppendUint16(out, uint16(2*segCount-searchRange))
	for _, s := range segs {
		out = binary.BigEndian.AppendUint16(out, s.last)
	}
	out = binary.BigEndian.AppendUint16(out, 0) // reservedPad
	for _, s := range segs {
		out = binary.BigEndian.AppendUint16(out, s.first)
	}
	for _, s := range segs {
		out = binary.BigEndian.AppendUint16(out, s.delta)
	}
	for _, o := range rangeOffsets {
		out = binary.BigEndian.AppendUint16(out, o)
	}
	for _, g := range glyphIDs {
		out = binary.BigEndian.AppendUint16(out, g)
	}
	return out, nil
}

func encodeGroups(format uint16, groups []seqGroup, language uint16) []byte {
	length := 16 + 12*len(groups)
	out := make([]byte, 0, length)
	out = binary.BigEndian.AppendUint16(out, format)
	out = binary.BigEndian.AppendUint16(out, 0)
	out = binary.BigEndian.AppendUint32(out, uint32(length))
	out = binary.BigEndian.AppendUint32(out, uint32(language))
	out = binary.BigEndian.AppendUint32(out, uint32(len(groups)))
	for _, g := range groups {
		out = binary.BigEndian.AppendUint32(out, g.start)
		out = binary.BigEndian.AppendUint32(out, g.end)
		out = binary.BigEndian.AppendUint32(out, g.glyph)
	}
	return out
}

// encodeFormat12 coalesces consecutive codes with consecutive glyphs into
// groups.
func encodeFormat12(m map[uint32]sfnt.GlyphIndex, language uint16) []byte {
	var groups []seqGroup
	for _, code := range (Subtable{Mapping: m}).Codes() {
		gid := uint32(m[code])
		if gid == 0 {
			continue
		}
		if n := len(groups); n > 0 && groups[n-1].end+1 == code &&
			groups[n-1].glyph+(code-groups[n-1].start) == gid {
			groups[n-1].end = code
			continue
		}
		groups = append(groups, seqGroup{start: code, end: code, glyph: gid})
	}
	return encodeGroups(FormatSegmentCoverage, groups, language)
}

func encodeFormat13(groups []Group, language uint16) []byte {
	gs := make([]seqGroup, len(groups))
	for i, g := range groups {
		gs[i] = seqGroup{start: g.Start, end: g.End, glyph: uint32(g.Glyph)}
	}
	slices.SortFunc(gs, func(a, b seqGroup) int {
		return cmp.Compare(a.start, b.start)
	})
	return encodeGroups(FormatManyToOne, gs, language)
}
