/*
Command otrebuild repairs the character mapping and the names of OpenType
fonts.

	otrebuild [flags] <font>...

Each font is checked, its tables are fixed and, if requested, rebuilt from
a YAML configuration (see package otconfig). Output fonts are written next
to the input fonts with a numbered suffix, or to the location given by -o
or -d. Fonts are processed in parallel.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/otrebuild/otconfig"
	"github.com/npillmayer/otrebuild/reconcile"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

// tracer traces with key 'otrebuild'
func tracer() tracing.Trace {
	return tracing.Select("otrebuild")
}

var cli struct {
	Output         string   `short:"o" type:"path" help:"Output font file. Only valid for a single input font."`
	OutDir         string   `short:"d" name:"outdir" type:"existingdir" help:"Directory for output fonts."`
	Config         string   `short:"c" type:"existingfile" help:"YAML configuration to rebuild tables and names from."`
	RebuildMapping bool     `help:"Regenerate the 'cmap' table from its best subtable instead of fixing it."`
	MacOffice      bool     `help:"Adapt the Macintosh subfamily name and mapping for Mac Office 2011."`
	DummySignature bool     `help:"Install an empty digital signature."`
	Jobs           int      `short:"j" default:"4" help:"Number of fonts processed in parallel."`
	Trace          string   `enum:"Debug,Info,Error" default:"Error" help:"Trace level (Debug, Info, Error)."`
	Fonts          []string `arg:"" name:"font" type:"existingfile" help:"Fonts to process (TrueType or OpenType)."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("otrebuild"),
		kong.Description("Repairs 'cmap' and 'name' tables of OpenType fonts."),
		kong.UsageOnError(),
	)
	if cli.Output != "" && len(cli.Fonts) > 1 {
		ctx.Fatalf("-o/--output requires a single input font, have %d", len(cli.Fonts))
	}
	initDisplay()
	if err := initTracing(cli.Trace); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	jobs, cfg, err := setup()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	if failed := run(context.Background(), jobs, cfg); failed > 0 {
		pterm.Error.Printf("%d of %d fonts failed\n", failed, len(cli.Fonts))
		os.Exit(3)
	}
}

// setup derives the jobs of a run from the command line and loads the
// configuration, if any.
func setup() (reconcile.Jobs, *otconfig.Config, error) {
	jobs := reconcile.DefaultJobs()
	if cli.RebuildMapping {
		jobs.FixCmap = false
		jobs.RebuildCmap = true
	}
	jobs.RebuildMacOffice = cli.MacOffice
	jobs.RebuildDSIG = cli.DummySignature
	if cli.Config == "" {
		return jobs, nil, nil
	}
	cfg, err := otconfig.Load(cli.Config)
	if err != nil {
		return jobs, nil, err
	}
	jobs.FixName = false
	return jobs, cfg, nil
}

// run processes all fonts of the command line concurrently and returns the
// number of fonts which failed.
func run(ctx context.Context, jobs reconcile.Jobs, cfg *otconfig.Config) int {
	results := make([]result, len(cli.Fonts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cli.Jobs))
	for i, path := range cli.Fonts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = result{input: path, err: err}
				return nil
			}
			results[i] = processFont(path, cli.Output, cli.OutDir, jobs, cfg)
			return nil
		})
	}
	g.Wait()
	failed := 0
	for _, r := range results {
		r.report()
		if r.err != nil {
			failed++
		}
	}
	return failed
}

// initDisplay sets up pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// trace keys of the packages involved in a run
var traceKeys = []string{
	"otrebuild", "otrebuild.reconcile", "otrebuild.config",
	"otrebuild.cmap", "otrebuild.name", "otrebuild.platform", "font.opentype",
}

func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("trace level is %s", level)
	return nil
}
