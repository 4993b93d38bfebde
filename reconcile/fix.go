package reconcile

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/npillmayer/otrebuild/ot"
)

// Masks of valid bits.
const (
	headFlagsMask     = 0b111011110011111
	headMacStyleMask  = 0b1100011 // bold, italic, condensed, extended
	os2FsTypeMask     = 0b1110
	fsSelectionMaskV3 = 0b1100001
	fsSelectionMaskV4 = 0b1111100001
)

// FixHeader converts an Apple TrueType font header to the OpenType one.
func FixHeader(otf *ot.Font) {
	if otf.Header.FontType == ot.FontTypeApple {
		tracer().Infof("converting Apple TrueType font to OpenType")
		otf.Header.FontType = ot.FontTypeTrueType
	}
}

// FixHead sets version and magic number of table 'head' and clears invalid
// bits of the flags and of macStyle.
func FixHead(otf *ot.Font) {
	head := otf.Head()
	if head == nil {
		return
	}
	head.SetVersion(0x00010000)
	head.SetMagic(ot.HeadMagic)
	head.SetFlags(head.Flags & headFlagsMask)
	head.SetMacStyle(head.MacStyle & headMacStyleMask)
}

// FixHhea sets the version of table 'hhea' and clears its reserved fields.
func FixHhea(otf *ot.Font) {
	if hhea := otf.HHea(); hhea != nil {
		hhea.Normalize()
	}
}

// FixOS2 replaces out-of-range weight and width classes of table 'OS/2'
// and clears reserved bits of fsType and fsSelection.
func FixOS2(otf *ot.Font) {
	os2 := otf.OS2()
	if os2 == nil {
		return
	}
	if os2.WeightClass < 1 || os2.WeightClass > 1000 {
		w := uint16(400)
		if head := otf.Head(); head != nil && head.MacStyle&ot.MacStyleBold != 0 {
			w = 700
		}
		tracer().Infof("weight class %d out of range, set to %d", os2.WeightClass, w)
		os2.SetWeightClass(w)
	}
	if os2.WidthClass < 1 || os2.WidthClass > 9 {
		tracer().Infof("width class %d out of range, set to medium", os2.WidthClass)
		os2.SetWidthClass(5)
	}
	os2.SetFsType(os2.FsType & os2FsTypeMask)
	if os2.Version < 4 {
		os2.SetFsSelection(os2.FsSelection & fsSelectionMaskV3)
	} else {
		os2.SetFsSelection(os2.FsSelection & fsSelectionMaskV4)
	}
}

// FixPost makes the 'post' table of a CFF font a version 3 table, which
// stores no glyph names.
func FixPost(otf *ot.Font) error {
	post := otf.Post()
	if post == nil || !otf.IsCFF() || post.Version == 0x00030000 {
		return nil
	}
	tracer().Infof("'post' table of CFF font converted to version 3")
	data := bytes.Clone(post.Binary()[:32])
	binary.BigEndian.PutUint32(data, 0x00030000)
	return otf.SetTable(tagPost, data)
}

// FixFromCFF copies the font bounding box to 'head', and italic angle,
// pitch and underline to 'post', for all values the CFF top dict
// sets to non-default values.
func FixFromCFF(otf *ot.Font) {
	top, ok := otf.CFF().Unwrap()
	if !ok {
		return
	}
	if head := otf.Head(); head != nil {
		if bbox, ok := top.FontBBox.Unwrap(); ok && bbox != [4]float64{} {
			var b [4]int16
			for i, v := range bbox {
				b[i] = clampInt16(v)
			}
			head.SetBBox(b)
		}
	}
	post := otf.Post()
	if post == nil {
		return
	}
	if angle, ok := top.ItalicAngle.Unwrap(); ok && angle != 0 {
		post.SetItalicAngle(angle)
	}
	if fixed, ok := top.IsFixedPitch.Unwrap(); ok && fixed {
		post.SetFixedPitch(true)
	}
	pos, thick := post.UnderlinePosition, post.UnderlineThickness
	if t, ok := top.UnderlineThickness.Unwrap(); ok && t != 50 {
		thick = clampInt16(t)
	}
	if p, ok := top.UnderlinePosition.Unwrap(); ok {
		pos = clampInt16(p)
	}
	post.SetUnderline(pos, thick)
}

// FixCmap repairs the 'cmap' table of a font with ReconcileCmap in mode
// Fix.
func FixCmap(otf *ot.Font, jobs Jobs) ([]ot.FontWarning, error) {
	subtables, err := readCmap(otf)
	if err != nil {
		return nil, err
	}
	subtables, warnings := ReconcileCmap(subtables, Fix, jobs)
	return warnings, writeCmap(otf, subtables)
}

func clampInt16(x float64) int16 {
	return int16(max(math.MinInt16, min(math.MaxInt16, math.Round(x))))
}
