/*
Package ot provides access to the tables of sfnt fonts (TrueType and OpenType).
Intended audience for this package are tools which inspect and repair fonts:
a font is read, some of its tables are checked and possibly rewritten, and
the font is written back.

Package `ot` keeps every table of a font as raw bytes and will not drop any
information. A small number of tables is interpreted and exposed with typed
views: 'head', 'hhea', 'maxp', 'OS/2' and 'post'. The views make the fields
available which are subject to consistency checks, and provide setters which
patch the binary data of the table. The top dictionary of CFF-flavoured fonts
may be read with ParseCFF.

Tables 'cmap' and 'name' are left to sister packages, which decode them
into higher-level structures and encode them again.

Bugs in fonts: many fonts in the wild contain entries that, strictly speaking, infringe
upon the OT specification, but an application using it should not fail because
of recoverable errors. Package `ot` collects problems found during parsing as
errors and warnings (see Font.Errors and Font.Warnings).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
