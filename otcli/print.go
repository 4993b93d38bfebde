package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otplatform"
	"github.com/npillmayer/otrebuild/otquery"
	"github.com/pterm/pterm"
)

func printTables(otf *ot.Font) {
	data := [][]string{
		{"Tag", "Offset", "Length"},
	}
	for _, tag := range otf.TableTags() {
		offset, length := otf.Table(tag).Extent()
		data = append(data, []string{
			tag.String(),
			fmt.Sprintf("%d", offset),
			fmt.Sprintf("%d", length),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printNameInfo(info map[string]string) {
	data := [][]string{
		{"Name", "Value"},
	}
	for _, key := range slices.Sorted(maps.Keys(info)) {
		data = append(data, []string{key, info[key]})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printStyle(style otquery.StyleInfo) {
	pterm.Printf("revision %.3f, vendor %q\n", style.Revision, style.VendorID)
	pterm.Printf("macStyle %016b, fsSelection %010b, fsType %04b\n",
		style.MacStyle, style.FsSelection, style.FsType)
	pterm.Printf("weight class %d, width class %d, italic angle %.1f, fixed pitch %v\n",
		style.WeightClass, style.WidthClass, style.ItalicAngle, style.FixedPitch)
}

func printCmap(infos []otquery.CmapSubtableInfo) {
	data := [][]string{
		{"Platform", "Encoding", "Language", "Format", "Size", "Kind"},
	}
	for _, info := range infos {
		data = append(data, []string{
			otplatform.PlatformID(info.Platform).String(),
			fmt.Sprintf("%d", info.Encoding),
			fmt.Sprintf("%d", info.Language),
			fmt.Sprintf("%d", info.Format),
			fmt.Sprintf("%d", info.Size),
			info.Kind,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printNames(otf *ot.Font, show func(otplatform.PlatformID) bool) {
	data := [][]string{
		{"ID", "Platform", "Encoding", "Language", "Text"},
	}
	for k, text := range otquery.NamesRange(otf) {
		if !show(k.PlatformID) {
			continue
		}
		data = append(data, []string{
			fmt.Sprintf("%d", k.NameID),
			k.PlatformID.String(),
			fmt.Sprintf("%d", k.EncodingID),
			fmt.Sprintf("0x%04X", k.LanguageID),
			text,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printWarnings(warnings []ot.FontWarning) {
	for _, w := range warnings {
		pterm.Warning.Println(w)
	}
}
