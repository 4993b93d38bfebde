package ot

import (
	"bytes"
	"io"

	"seehuhn.de/go/sfnt/header"
)

// WriteTo writes the font in sfnt format, using the font type of the header
// as scaler type. Table checksums and the checksum adjustment of table 'head'
// are recomputed. Tables are ordered as recommended by the OpenType
// specification.
//
// The binary data of the fonts tables is not changed.
func (otf *Font) WriteTo(w io.Writer) (int64, error) {
	tables := make(map[string][]byte, len(otf.tables))
	for _, tag := range otf.order {
		data := otf.tables[tag].Binary()
		if tag == T("head") && len(data) < headSize {
			return 0, errFontFormat("head table too small to write")
		}
		if data == nil {
			data = []byte{}
		}
		// header.Write patches the checksum adjustment of 'head' in place
		tables[tag.String()] = bytes.Clone(data)
	}
	scalerType := otf.Header.FontType
	tracer().Debugf("writing font %s with %d tables", Tag(scalerType), len(tables))
	return header.Write(w, scalerType, tables)
}

// Bytes returns the binary sfnt representation of the font.
func (otf *Font) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := otf.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
