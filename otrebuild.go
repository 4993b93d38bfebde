/*
Package otrebuild repairs the character mapping and naming of TrueType and
OpenType fonts.

The work is done by package reconcile. This package offers the
convenience API for the common case of repairing a font given as bytes.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otrebuild

import (
	"bytes"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otconfig"
	"github.com/npillmayer/otrebuild/otquery"
	"github.com/npillmayer/otrebuild/reconcile"
	"golang.org/x/image/font/sfnt"
)

// FromBinary parses raw OpenType bytes and returns a decoded font.
//
// The input is expected to contain a complete single-font SFNT stream.
func FromBinary(data []byte) (*ot.Font, error) {
	return ot.Parse(data)
}

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records exist or if records cannot be
// decoded.
func FamilyName(f *ot.Font) (family, subfamily string) {
	for key, stringValue := range otquery.NamesRange(f) {
		switch key.NameID {
		case sfnt.NameIDFamily:
			family = stringValue
		case sfnt.NameIDSubfamily:
			subfamily = stringValue
		}
	}
	return
}

// Repair parses a font, runs the given jobs on it and returns the binary of
// the repaired font. cfg may be nil.
func Repair(data []byte, jobs reconcile.Jobs, cfg *otconfig.Config) ([]byte, []ot.FontWarning, error) {
	otf, err := FromBinary(data)
	if err != nil {
		return nil, nil, err
	}
	warnings, err := reconcile.Process(otf, jobs, cfg)
	if err != nil {
		return nil, warnings, err
	}
	var buf bytes.Buffer
	if _, err = otf.WriteTo(&buf); err != nil {
		return nil, warnings, err
	}
	return buf.Bytes(), warnings, nil
}
