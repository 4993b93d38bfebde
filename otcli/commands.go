package main

import (
	"errors"
	"os"
	"slices"
	"strings"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otconfig"
	"github.com/npillmayer/otrebuild/otplatform"
	"github.com/npillmayer/otrebuild/otquery"
	"github.com/npillmayer/otrebuild/reconcile"
	"github.com/pterm/pterm"
)

func loadOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errors.New("usage: load <font file>"), false
	}
	return intp.loadFont(op.arg), false
}

func tablesOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	printTables(intp.font)
	return nil, false
}

func infoOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	pterm.Printf("font type: %s\n", otquery.FontType(intp.font))
	printNameInfo(otquery.NameInfo(intp.font))
	if style, ok := otquery.Style(intp.font); ok {
		printStyle(style)
	}
	return nil, false
}

func cmapOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	infos, err := otquery.CmapInfo(intp.font)
	if err != nil {
		return err, false
	}
	printCmap(infos)
	return nil, false
}

// platformArgs are the arguments of 'names' which filter by platform.
var platformArgs = map[string]otplatform.PlatformID{
	"unicode": otplatform.PlatformIDUnicode,
	"mac":     otplatform.PlatformIDMacintosh,
	"win":     otplatform.PlatformIDWindows,
}

func namesOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	var filter []otplatform.PlatformID
	if op.arg != "" {
		p, ok := platformArgs[strings.ToLower(op.arg)]
		if !ok {
			return errors.New("usage: names [unicode|mac|win]"), false
		}
		filter = append(filter, p)
	}
	printNames(intp.font, func(p otplatform.PlatformID) bool {
		return len(filter) == 0 || slices.Contains(filter, p)
	})
	return nil, false
}

func fixOp(intp *Intp, op *Op) (error, bool) {
	return intp.process(reconcile.DefaultJobs(), nil), false
}

// rebuildOp regenerates the 'cmap' table and, with a configuration file as
// argument, rebuilds tables and names from the configuration.
func rebuildOp(intp *Intp, op *Op) (error, bool) {
	jobs := reconcile.DefaultJobs()
	jobs.FixCmap, jobs.RebuildCmap = false, true
	var cfg *otconfig.Config
	if op.arg != "" {
		var err error
		if cfg, err = otconfig.Load(op.arg); err != nil {
			return err, false
		}
		jobs.FixName = false
	}
	return intp.process(jobs, cfg), false
}

func macOfficeOp(intp *Intp, op *Op) (error, bool) {
	jobs := reconcile.DefaultJobs()
	jobs.RebuildMacOffice = true
	return intp.process(jobs, nil), false
}

func (intp *Intp) process(jobs reconcile.Jobs, cfg *otconfig.Config) error {
	if err := intp.checkFont(); err != nil {
		return err
	}
	warnings, err := reconcile.Process(intp.font, jobs, cfg)
	printWarnings(warnings)
	if err != nil {
		return err
	}
	intp.modified = true
	pterm.Success.Printf("font processed, %d warnings\n", len(warnings))
	return nil
}

func saveOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	if op.arg == "" {
		return errors.New("usage: save <font file>"), false
	}
	if op.arg == intp.fontname {
		return errors.New("will not overwrite the input font"), false
	}
	if err := writeFont(intp.font, op.arg); err != nil {
		return err, false
	}
	intp.modified = false
	pterm.Success.Printf("font saved to %s\n", op.arg)
	return nil, false
}

func writeFont(otf *ot.Font, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = otf.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
