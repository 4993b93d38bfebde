package otname

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

const (
	nameHeaderSize  = 6
	nameRecordSize  = 12
	firstLangTagID  = 0x8000 // language IDs from here on refer to language-tag records
	nameTableFormat = 0
)

// ErrNameTable is returned for 'name' tables with an unusable structure.
var ErrNameTable = errors.New("invalid 'name' table")

// Decode parses the binary 'name' table of a font, formats 0 and 1.
//
// Strings are decoded according to their platform and encoding. Records which
// cannot be decoded keep their bytes in Record.Raw and are reported as
// warnings. Records with out-of-bounds strings, and records of format 1
// referring to language-tag records, are skipped with a warning.
func Decode(data []byte) ([]Record, []ot.FontWarning, error) {
	if len(data) < nameHeaderSize {
		return nil, nil, fmt.Errorf("%w: table too short (%d bytes)", ErrNameTable, len(data))
	}
	format := u16(data[0:2])
	count := int(u16(data[2:4]))
	strOff := int(u16(data[4:6]))
	if format > 1 {
		return nil, nil, fmt.Errorf("%w: unknown format %d", ErrNameTable, format)
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(data) || strOff > len(data) {
		return nil, nil, fmt.Errorf("%w: record section out of bounds, count=%d", ErrNameTable, count)
	}
	var warnings []ot.FontWarning
	recs := make([]Record, 0, count)
	for i := range count {
		rec := data[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
		key := Key{
			PlatformID: otplatform.PlatformID(u16(rec[0:2])),
			EncodingID: otplatform.EncodingID(u16(rec[2:4])),
			LanguageID: u16(rec[4:6]),
			NameID:     sfnt.NameID(u16(rec[6:8])),
		}
		strLen := int(u16(rec[8:10]))
		start := strOff + int(u16(rec[10:12]))
		end := start + strLen
		if end > len(data) {
			warnings = append(warnings, warning("%s: string out of bounds, skipped", key))
			continue
		}
		if format == 1 && key.PlatformID != otplatform.PlatformIDMacintosh && key.LanguageID >= firstLangTagID {
			warnings = append(warnings, warning("%s: language-tag records are not supported, skipped", key))
			continue
		}
		raw := data[start:end]
		text, err := otplatform.DecodeName(raw, key.PlatformID, key.EncodingID)
		if err != nil {
			tracer().Debugf("%s: %v", key, err)
			warnings = append(warnings, warning("%s cannot be decoded: %v", key, err))
			recs = append(recs, Record{Key: key, Raw: append([]byte{}, raw...)})
			continue
		}
		recs = append(recs, Record{Key: key, Text: text})
	}
	return recs, warnings, nil
}

// Encode writes a 'name' table of format 0.
//
// Records are sorted by platform, encoding, language and name ID. For
// duplicate keys the record later in recs wins. Identical byte strings share
// storage. Records which cannot be encoded are left out and their keys
// returned in skipped.
func Encode(recs []Record) (data []byte, skipped []Key, err error) {
	set := NewRecordSet()
	for _, r := range recs {
		set.Put(r)
	}
	type entry struct {
		key   Key
		bytes []byte
	}
	entries := make([]entry, 0, set.Len())
	for r := range set.All() {
		b := r.Raw
		if !r.IsRaw() {
			b, err = otplatform.EncodeName(r.Text, r.PlatformID, r.EncodingID)
			if err != nil {
				tracer().Errorf("cannot encode %s: %v", r.Key, err)
				skipped = append(skipped, r.Key)
				continue
			}
		}
		entries = append(entries, entry{key: r.Key, bytes: b})
	}
	storageStart := nameHeaderSize + len(entries)*nameRecordSize
	if storageStart > math.MaxUint16 {
		return nil, skipped, fmt.Errorf("%w: too many records (%d)", ErrNameTable, len(entries))
	}
	header := make([]byte, storageStart)
	binary.BigEndian.PutUint16(header[0:2], nameTableFormat)
	binary.BigEndian.PutUint16(header[2:4], uint16(len(entries)))
	binary.BigEndian.PutUint16(header[4:6], uint16(storageStart))
	var storage []byte
	offsets := make(map[string]int)
	for i, e := range entries {
		off, shared := offsets[string(e.bytes)]
		if !shared {
			off = len(storage)
			offsets[string(e.bytes)] = off
			storage = append(storage, e.bytes...)
		}
		if off > math.MaxUint16 || len(e.bytes) > math.MaxUint16 {
			return nil, skipped, fmt.Errorf("%w: string storage overflow", ErrNameTable)
		}
		rec := header[nameHeaderSize+i*nameRecordSize:]
		binary.BigEndian.PutUint16(rec[0:2], uint16(e.key.PlatformID))
		binary.BigEndian.PutUint16(rec[2:4], uint16(e.key.EncodingID))
		binary.BigEndian.PutUint16(rec[4:6], e.key.LanguageID)
		binary.BigEndian.PutUint16(rec[6:8], uint16(e.key.NameID))
		binary.BigEndian.PutUint16(rec[8:10], uint16(len(e.bytes)))
		binary.BigEndian.PutUint16(rec[10:12], uint16(off))
	}
	return append(header, storage...), skipped, nil
}

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}
