package reconcile

import (
	"fmt"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otcmap"
	"github.com/npillmayer/otrebuild/otname"
)

var (
	tagCmap = ot.T("cmap")
	tagName = ot.T("name")
	tagDSIG = ot.T("DSIG")
	tagPost = ot.T("post")
)

// readCmap decodes the 'cmap' table of a font.
func readCmap(otf *ot.Font) ([]otcmap.Subtable, error) {
	t := otf.Table(tagCmap)
	if t == nil {
		return nil, fmt.Errorf("%w: cmap", ErrMissingTables)
	}
	return otcmap.DecodeTable(t.Binary())
}

// writeCmap replaces the 'cmap' table of a font.
func writeCmap(otf *ot.Font, subtables []otcmap.Subtable) error {
	data, err := otcmap.EncodeTable(subtables)
	if err != nil {
		return err
	}
	return otf.SetTable(tagCmap, data)
}

// readNames decodes the 'name' table of a font. A font without 'name' table
// has no records.
func readNames(otf *ot.Font) ([]otname.Record, []ot.FontWarning, error) {
	t := otf.Table(tagName)
	if t == nil {
		return nil, nil, nil
	}
	return otname.Decode(t.Binary())
}

// writeNames replaces the 'name' table of a font. Records which cannot be
// encoded are left out with a warning.
func writeNames(otf *ot.Font, records []otname.Record) ([]ot.FontWarning, error) {
	data, skipped, err := otname.Encode(records)
	if err != nil {
		return nil, err
	}
	var warnings []ot.FontWarning
	for _, k := range skipped {
		warnings = append(warnings, warning("name", "%s cannot be encoded, left out", k))
	}
	return warnings, otf.SetTable(tagName, data)
}
