package otcmap

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/npillmayer/otrebuild/otplatform"
	"seehuhn.de/go/sfnt/cmap"
)

// DecodeTable parses a binary 'cmap' table into its subtables, ordered by
// platform, encoding and language.
func DecodeTable(data []byte) ([]Subtable, error) {
	dir, err := cmap.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding cmap table: %w", err)
	}
	keys := make([]cmap.Key, 0, len(dir))
	for k := range dir {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	subs := make([]Subtable, 0, len(keys))
	for _, k := range keys {
		s := Subtable{
			PlatformID: otplatform.PlatformID(k.PlatformID),
			EncodingID: otplatform.EncodingID(k.EncodingID),
			Language:   k.Language,
		}
		if err := decodeSubtable(&s, dir[k]); err != nil {
			return nil, err
		}
		tracer().Debugf("decoded %s", s)
		subs = append(subs, s)
	}
	return subs, nil
}

// Key returns the directory key of a subtable. A 'cmap' table holds at most
// one subtable per key.
func (s Subtable) Key() cmap.Key {
	return cmap.Key{
		PlatformID: uint16(s.PlatformID),
		EncodingID: uint16(s.EncodingID),
		Language:   s.Language,
	}
}

func compareKeys(a, b cmap.Key) int {
	if a.PlatformID != b.PlatformID {
		return cmp.Compare(a.PlatformID, b.PlatformID)
	}
	if a.EncodingID != b.EncodingID {
		return cmp.Compare(a.EncodingID, b.EncodingID)
	}
	return cmp.Compare(a.Language, b.Language)
}

// EncodeTable writes a 'cmap' table holding the given subtables. Encoding
// records are sorted by platform, encoding and language; identical subtable
// data is stored once. If two subtables share platform, encoding and
// language, the later one wins.
func EncodeTable(subtables []Subtable) ([]byte, error) {
	dir := make(map[cmap.Key][]byte, len(subtables))
	for _, s := range subtables {
		data, err := encodeSubtable(s)
		if err != nil {
			return nil, err
		}
		k := s.Key()
		if _, dup := dir[k]; dup {
			tracer().Errorf("duplicate cmap subtable (%d,%d,%d), keeping the later one",
				k.PlatformID, k.EncodingID, k.Language)
		}
		dir[k] = data
	}
	keys := make([]cmap.Key, 0, len(dir))
	for k := range dir {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	headerSize := 4 + 8*len(keys)
	header := make([]byte, 0, headerSize)
	header = binary.BigEndian.AppendUint16(header, 0) // version
	header = binary.BigEndian.AppendUint16(header, uint16(len(keys)))
	var body []byte
	offsets := make([]uint32, len(keys))
next:
	for i, k := range keys {
		for j := range i {
			if bytes.Equal(dir[k], dir[keys[j]]) {
				offsets[i] = offsets[j]
				continue next
			}
		}
		offsets[i] = uint32(headerSize + len(body))
		body = append(body, dir[k]...)
	}
	for i, k := range keys {
		header = binary.BigEndian.AppendUint16(header, k.PlatformID)
		header = binary.BigEndian.AppendUint16(header, k.EncodingID)
		header = binary.BigEndian.AppendUint32(header, offsets[i])
	}
	return append(header, body...), nil
}
