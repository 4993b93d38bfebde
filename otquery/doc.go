/*
Package otquery answers questions about a font without changing it: the
font type, the English names, the platforms served by the 'cmap' and
'name' tables, and the style information of 'head' and 'OS/2'.

Queries never fail on malformed tables; missing information is reported as
absent.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otrebuild.query'
func tracer() tracing.Trace {
	return tracing.Select("otrebuild.query")
}
