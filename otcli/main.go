/*
Command otcli is an interactive shell to inspect and repair OpenType fonts.

	otcli [-font <file>] [-trace Debug|Info|Error]

Fonts are loaded with 'load', inspected with 'tables', 'info', 'cmap' and
'names', repaired with 'fix', 'rebuild' and 'macoffice', and written with
'save'. Type 'help' for a list of commands.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/otrebuild/internal/fontload"
	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'otrebuild.cli'
func tracer() tracing.Trace {
	return tracing.Select("otrebuild.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":           "go",
		"trace.otrebuild.cli":       "Info",
		"trace.otrebuild.reconcile": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)   // will set the correct level later
	pterm.Info.Println("Welcome to otrebuild CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("otr > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracing.Select("otrebuild.reconcile").SetTraceLevel(tracer().GetTraceLevel())
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font     *ot.Font
	fontname string
	modified bool
	repl     *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "( no font )"
	}
	if intp.modified {
		return fmt.Sprintf("( font=%s, modified )", intp.fontname)
	}
	return fmt.Sprintf("( font=%s )", intp.fontname)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single command with its argument.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	LOAD
	TABLES
	INFO
	CMAP
	NAMES
	FIX
	REBUILD
	MACOFFICE
	SAVE
)

var opMap = map[string]int{
	"quit":      QUIT,
	"help":      HELP,
	"load":      LOAD,
	"tables":    TABLES,
	"info":      INFO,
	"cmap":      CMAP,
	"names":     NAMES,
	"fix":       FIX,
	"rebuild":   REBUILD,
	"macoffice": MACOFFICE,
	"save":      SAVE,
}

// parseCommand splits a line into command and argument. Unknown commands
// show the help text.
func parseCommand(line string) *Op {
	cmd, arg, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(cmd)]
	if !ok {
		tracer().Infof("unknown command %q", cmd)
		code = HELP
	}
	return &Op{code: code, arg: strings.TrimSpace(arg)}
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:      quitOp,
	HELP:      helpOp,
	LOAD:      loadOp,
	TABLES:    tablesOp,
	INFO:      infoOp,
	CMAP:      cmapOp,
	NAMES:     namesOp,
	FIX:       fixOp,
	REBUILD:   rebuildOp,
	MACOFFICE: macOfficeOp,
	SAVE:      saveOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	tracer().Debugf("op = %v", op)
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	if intp.modified {
		pterm.Warning.Println("font has unsaved modifications")
	}
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) error {
	f, err := fontload.LoadOpenTypeFont(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	tracer().Infof("loaded SFNT font = %s", f.Fontname)
	otf, err := ot.Parse(f.Binary)
	if err != nil {
		tracer().Errorf("cannot decode font %s: %s", fontname, err)
		return err
	}
	for _, e := range otf.Errors() {
		pterm.Warning.Println(e)
	}
	intp.font, intp.fontname, intp.modified = otf, fontname, false
	pterm.Printf("font tables: %v\n", otf.TableTags())
	return nil
}

var errNoFont = errors.New("no font loaded")

func (intp *Intp) checkFont() error {
	if intp.font == nil {
		return errNoFont
	}
	return nil
}
