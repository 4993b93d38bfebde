/*
Package otcmap models the subtables of the OpenType 'cmap' table and derives
subtables for one platform from those of another.

A Subtable holds its mapping decoded: character codes to glyph indices for
formats 0, 4, 6 and 12, groups of codes sharing a glyph for format 13.
Subtables of other formats (2, 8, 10 and 14, the latter holding Unicode
variation sequences) are kept as raw bytes and written back unchanged.

The Build functions derive new subtables from existing ones. Derivations to
narrower encodings are lossy: a Macintosh Roman subtable holds at most 256
codes, and BMP subtables cannot represent supplementary-plane characters.
Each Build function returns fresh subtables which do not share state with
their source.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otcmap

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otrebuild.cmap'
func tracer() tracing.Trace {
	return tracing.Select("otrebuild.cmap")
}
