/*
Package otname models the records of the OpenType 'name' table and builds
platform-consistent record sets.

Records are kept decoded: Text holds the string as Unicode, and encoding to
the bytes of a platform happens only when a table is written with Encode.
A Builder collects records per platform class (Macintosh, Windows Symbol,
Windows BMP, Windows full repertoire, Windows legacy code pages, other) and
emits, in Build, only those classes for which the font has a 'cmap'
subtable. A Macintosh record is fanned out to every Windows language mapped
to its Macintosh language, in each of the three Unicode-based Windows
encodings.

Keys are unique within a record set. Putting a record with an existing key
replaces the earlier record.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otname

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otrebuild.name'
func tracer() tracing.Trace {
	return tracing.Select("otrebuild.name")
}
