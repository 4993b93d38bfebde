/*
Package reconcile repairs and rebuilds the tables of a font which describe its
character repertoire and its names.

The center of the package are two reconciliation engines. ReconcileCmap
derives the missing platform variants of a font's 'cmap' subtables from the
ones present, either minimally (mode Fix) or by regenerating everything from
the single best source subtable (mode Rebuild). BuildNameTable and FixName
bring the 'name' records in line with the result: a record for a platform is
emitted only if the 'cmap' table serves that platform.

Around the engines the package offers the per-font steps of a repair run:
Init checks a font and prepares it, the Fix functions repair individual
tables, the Rebuild functions regenerate tables, optionally driven by a
configuration (see package otconfig). Process runs all steps as selected by
a Jobs value.

Problems which do not stop processing are returned as ot.FontWarning values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package reconcile

import (
	"fmt"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'otrebuild.reconcile'
func tracer() tracing.Trace {
	return tracing.Select("otrebuild.reconcile")
}

func warning(table string, format string, args ...any) ot.FontWarning {
	w := ot.FontWarning{Table: ot.T(table), Issue: fmt.Sprintf(format, args...)}
	tracer().Infof("%s: %s", table, w.Issue)
	return w
}
