package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otconfig"
	"github.com/npillmayer/otrebuild/reconcile"
	"github.com/pterm/pterm"
)

// result is the outcome of processing one font.
type result struct {
	input, output string
	warnings      []ot.FontWarning
	err           error
}

func (r result) report() {
	if r.err != nil {
		pterm.Error.Printf("%s: %v\n", r.input, r.err)
		return
	}
	for _, w := range r.warnings {
		pterm.Warning.Printf("%s: %s\n", r.input, w)
	}
	pterm.Success.Printf("%s -> %s\n", r.input, r.output)
}

// processFont reads a font, repairs it and writes the result.
func processFont(input, output, outDir string, jobs reconcile.Jobs, cfg *otconfig.Config) result {
	r := result{input: input}
	data, err := os.ReadFile(input)
	if err != nil {
		r.err = err
		return r
	}
	otf, err := ot.Parse(data)
	if err != nil {
		r.err = err
		return r
	}
	if otf.HasCriticalErrors() {
		r.err = fmt.Errorf("cannot process font: %v", otf.CriticalErrors()[0])
		return r
	}
	if r.warnings, r.err = reconcile.Process(otf, jobs, cfg); r.err != nil {
		return r
	}
	if r.output, r.err = outputPath(input, output, outDir); r.err != nil {
		return r
	}
	r.err = writeFont(otf, r.output)
	return r
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

// outputPath chooses the output file for an input font. Without an explicit
// output file the font goes to outDir, or next to the input font, with a
// numbered suffix "#n" which makes the name unique.
func outputPath(input, output, outDir string) (string, error) {
	if output != "" {
		dir := filepath.Dir(output)
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			return "", fmt.Errorf("output location %q does not exist", dir)
		}
		return output, nil
	}
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext)
	if i := strings.LastIndex(base, "#"); i >= 0 {
		base = base[:i]
	}
	for n := 1; ; n++ {
		path := filepath.Join(outDir, fmt.Sprintf("%s#%d%s", base, n, ext))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
}
