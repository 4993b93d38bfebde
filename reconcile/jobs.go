package reconcile

// Jobs selects the steps of a repair run. A Jobs value is not changed by
// any step; steps which find themselves not applicable report it with a
// Skip value.
type Jobs struct {
	RemoveDSIG       bool // remove the digital signature, which modifications invalidate
	FixFromCFF       bool // copy italic angle, pitch and underline from the CFF top dict
	FixCmap          bool // repair the 'cmap' table (mode Fix)
	FixName          bool // make the 'name' table consistent with 'cmap'
	RebuildCmap      bool // regenerate the 'cmap' table from its best subtable (mode Rebuild)
	RebuildDSIG      bool // install an empty digital signature
	RebuildMacOffice bool // adapt the Macintosh subfamily to Mac Office 2011
}

// DefaultJobs returns the jobs of a plain repair run.
func DefaultJobs() Jobs {
	return Jobs{
		RemoveDSIG: true,
		FixFromCFF: true,
		FixCmap:    true,
		FixName:    true,
	}
}

// Skip tells a run which of the selected steps are not applicable to a font.
type Skip uint8

const (
	SkipFromCFF Skip = 1 << iota // the font has no CFF outlines
	SkipFixName                  // the 'name' table has just been created
)

// Has reports whether s contains step.
func (s Skip) Has(step Skip) bool {
	return s&step != 0
}
