package reconcile

import (
	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otconfig"
)

// Process runs a complete repair of a font: Init, the fixes, the rebuilds
// and finally the Mac Office adaption, each as selected by jobs. If cfg is
// not nil, tables and names are rebuilt from it after the fixes.
//
// The font is modified in place. Warnings of all steps are collected and
// returned; an error stops processing.
func Process(otf *ot.Font, jobs Jobs, cfg *otconfig.Config) ([]ot.FontWarning, error) {
	skip, warnings, err := Init(otf, jobs)
	if err != nil {
		return warnings, err
	}
	collect := func(w []ot.FontWarning, err error) error {
		warnings = append(warnings, w...)
		return err
	}
	FixHeader(otf)
	FixHead(otf)
	FixHhea(otf)
	FixOS2(otf)
	if err = FixPost(otf); err != nil {
		return warnings, err
	}
	if jobs.FixFromCFF && !skip.Has(SkipFromCFF) {
		FixFromCFF(otf)
	}
	if jobs.FixCmap {
		if err = collect(FixCmap(otf, jobs)); err != nil {
			return warnings, err
		}
	}
	if jobs.FixName && !skip.Has(SkipFixName) {
		if err = collect(FixName(otf)); err != nil {
			return warnings, err
		}
	}
	if jobs.RebuildDSIG {
		if err = RebuildDSIG(otf); err != nil {
			return warnings, err
		}
	}
	if jobs.RebuildCmap {
		if skip.Has(SkipFixName) {
			jobs.FixName = false
		}
		if err = collect(RebuildCmap(otf, jobs)); err != nil {
			return warnings, err
		}
	}
	if cfg != nil {
		if err = collect(RebuildByConfig(otf, cfg)); err != nil {
			return warnings, err
		}
	}
	if jobs.RebuildMacOffice {
		if err = collect(AddMacOffice(otf)); err != nil {
			return warnings, err
		}
	}
	tracer().Infof("font processed with %d warnings", len(warnings))
	return warnings, nil
}
