/*
Package otplatform holds the static platform data needed to reconcile
OpenType 'name' and 'cmap' tables: platform and encoding identifiers,
mappings between Windows language IDs, Macintosh language codes and
BCP-47 language tags, and the text codecs for Macintosh scripts and
Windows encodings.

A language is supported if and only if its Macintosh language code has a
Macintosh script with an available codec. Languages without one are listed
in separate tables and rejected by the lookup functions.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otplatform

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otrebuild.platform'
func tracer() tracing.Trace {
	return tracing.Select("otrebuild.platform")
}
