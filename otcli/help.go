package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "fix":
		pterm.Info.Println("fix")
		pterm.Println(`
	Repairs the font: 'head', 'hhea', 'OS/2' and 'post' are normalized,
	missing 'cmap' subtables are derived from the ones present, and the
	'name' records are made consistent with the platforms the 'cmap' serves.
	`)
	case "rebuild":
		pterm.Info.Println("rebuild [config.yaml]")
		pterm.Println(`
	Regenerates all 'cmap' subtables from the single best subtable of the
	font. With a YAML configuration, style, metrics and names are rebuilt
	from the configuration as well.
	`)
	case "macoffice":
		pterm.Info.Println("macoffice")
		pterm.Println(`
	Spells out width and weight in the Macintosh subfamily name and drops
	the Macintosh Roman 'cmap' subtable, for use with Mac Office 2011.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	load <file>      load a TrueType or OpenType font
	tables           list the tables of the font
	info             show font type, English names and style
	cmap             list the 'cmap' subtables
	names [platform] list the name records (unicode, mac or win)
	fix              repair the font
	rebuild [config] regenerate 'cmap', optionally names from a configuration
	macoffice        adapt the font for Mac Office 2011
	save <file>      write the font
	help [command]   show help
	quit             leave the shell
	`)
	}
}
