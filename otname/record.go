package otname

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/otrebuild/otplatform"
	"golang.org/x/image/font/sfnt"
)

// Key identifies a name record. Within one 'name' table a key is unique; the
// string content is not part of the key.
type Key struct {
	NameID     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
	PlatformID otplatform.PlatformID
	EncodingID otplatform.EncodingID
	LanguageID uint16
}

func (k Key) String() string {
	return fmt.Sprintf("name %d (%d,%d,0x%04X)", k.NameID, k.PlatformID, k.EncodingID, k.LanguageID)
}

// Record is one localized string of a 'name' table.
//
// Text holds the decoded string. Records whose bytes could not be decoded
// carry them in Raw; such records are written back verbatim.
type Record struct {
	Key
	Text string
	Raw  []byte
}

// NewRecord creates a record with decoded text.
func NewRecord(text string, id sfnt.NameID, p otplatform.PlatformID, e otplatform.EncodingID, lang uint16) Record {
	return Record{
		Key:  Key{NameID: id, PlatformID: p, EncodingID: e, LanguageID: lang},
		Text: text,
	}
}

// IsRaw reports whether the record holds undecoded bytes.
func (r Record) IsRaw() bool {
	return r.Raw != nil
}

// IsMacintosh is true for records of the Macintosh platform.
func (r Record) IsMacintosh() bool {
	return r.PlatformID == otplatform.PlatformIDMacintosh
}

// IsWindows is true for records of the Windows platform.
func (r Record) IsWindows() bool {
	return r.PlatformID == otplatform.PlatformIDWindows
}

// compareKeys orders keys the way the 'name' table requires: by platform,
// encoding, language, then name ID.
func compareKeys(a, b interface{}) int {
	k1, k2 := a.(Key), b.(Key)
	switch {
	case k1.PlatformID != k2.PlatformID:
		return cmpUint16(uint16(k1.PlatformID), uint16(k2.PlatformID))
	case k1.EncodingID != k2.EncodingID:
		return cmpUint16(uint16(k1.EncodingID), uint16(k2.EncodingID))
	case k1.LanguageID != k2.LanguageID:
		return cmpUint16(k1.LanguageID, k2.LanguageID)
	}
	return cmpUint16(uint16(k1.NameID), uint16(k2.NameID))
}

func cmpUint16(a, b uint16) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// RecordSet is a set of name records keyed by Key. Putting a record with an
// existing key replaces the earlier one. Iteration follows key order.
type RecordSet struct {
	m *treemap.Map
}

// NewRecordSet creates an empty record set.
func NewRecordSet() *RecordSet {
	return &RecordSet{m: treemap.NewWith(compareKeys)}
}

// Put inserts r, replacing a record with the same key. It reports whether a
// record has been replaced.
func (s *RecordSet) Put(r Record) bool {
	_, found := s.m.Get(r.Key)
	if found {
		tracer().Debugf("replacing %s", r.Key)
	}
	s.m.Put(r.Key, r)
	return found
}

// Get returns the record stored for k.
func (s *RecordSet) Get(k Key) (Record, bool) {
	v, found := s.m.Get(k)
	if !found {
		return Record{}, false
	}
	return v.(Record), true
}

// Has reports whether a record with key k is present.
func (s *RecordSet) Has(k Key) bool {
	_, found := s.m.Get(k)
	return found
}

// Remove deletes the record with key k, if present.
func (s *RecordSet) Remove(k Key) {
	s.m.Remove(k)
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	return s.m.Size()
}

// Clear removes all records.
func (s *RecordSet) Clear() {
	s.m.Clear()
}

// All iterates over the records in key order.
func (s *RecordSet) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		it := s.m.Iterator()
		for it.Next() {
			if !yield(it.Value().(Record)) {
				return
			}
		}
	}
}

// Records returns the records in key order.
func (s *RecordSet) Records() []Record {
	recs := make([]Record, 0, s.m.Size())
	for r := range s.All() {
		recs = append(recs, r)
	}
	return recs
}

// update replaces the text of the record with key k.
func (s *RecordSet) update(k Key, text string) {
	if r, ok := s.Get(k); ok {
		r.Text = text
		s.m.Put(k, r)
	}
}
