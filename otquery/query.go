package otquery

import (
	"fmt"

	"github.com/npillmayer/otrebuild/ot"
	"github.com/npillmayer/otrebuild/otcmap"
)

// FontType names the outline format of a font.
func FontType(otf *ot.Font) string {
	switch {
	case otf == nil:
		return "unknown"
	case otf.Header.FontType == ot.FontTypeApple:
		return "Apple TrueType"
	case otf.IsCFF():
		return "OpenType CFF"
	}
	return "TrueType"
}

// StyleInfo collects the style fields of tables 'head', 'OS/2' and 'post'.
type StyleInfo struct {
	Revision    float64
	MacStyle    uint16
	WeightClass uint16
	WidthClass  uint16
	FsSelection uint16
	FsType      uint16
	VendorID    string
	ItalicAngle float64
	FixedPitch  bool
}

// Style returns the style information of a font. It is false if the font
// lacks one of the tables 'head', 'OS/2' or 'post'.
func Style(otf *ot.Font) (StyleInfo, bool) {
	var info StyleInfo
	if otf == nil {
		return info, false
	}
	head, os2, post := otf.Head(), otf.OS2(), otf.Post()
	if head == nil || os2 == nil || post == nil {
		return info, false
	}
	info.Revision = head.FontRevision
	info.MacStyle = head.MacStyle
	info.WeightClass = os2.WeightClass
	info.WidthClass = os2.WidthClass
	info.FsSelection = os2.FsSelection
	info.FsType = os2.FsType
	info.VendorID = os2.VendorID
	info.ItalicAngle = post.ItalicAngle
	info.FixedPitch = post.IsFixedPitch
	return info, true
}

// CmapSubtableInfo describes one 'cmap' subtable.
type CmapSubtableInfo struct {
	Platform, Encoding uint16
	Language           uint16
	Format             uint16
	Size               int // mapped codes, groups for format 13, bytes for others
	Kind               string
}

func (i CmapSubtableInfo) String() string {
	return fmt.Sprintf("(%d,%d) format %d %s", i.Platform, i.Encoding, i.Format, i.Kind)
}

// CmapInfo lists the subtables of a font's 'cmap' table in table order.
func CmapInfo(otf *ot.Font) ([]CmapSubtableInfo, error) {
	if otf == nil || otf.Table(ot.T("cmap")) == nil {
		return nil, fmt.Errorf("font has no cmap table")
	}
	subtables, err := otcmap.DecodeTable(otf.Table(ot.T("cmap")).Binary())
	if err != nil {
		return nil, err
	}
	infos := make([]CmapSubtableInfo, len(subtables))
	for i, s := range subtables {
		infos[i] = CmapSubtableInfo{
			Platform: uint16(s.PlatformID),
			Encoding: uint16(s.EncodingID),
			Language: s.Language,
			Format:   s.Format,
			Size:     s.Len(),
			Kind:     kind(s),
		}
		switch {
		case s.IsRaw():
			infos[i].Size = len(s.Raw)
		case s.Format == otcmap.FormatManyToOne:
			infos[i].Size = len(s.Groups)
		}
	}
	return infos, nil
}

func kind(s otcmap.Subtable) string {
	switch {
	case s.IsLastResort():
		return "last resort"
	case s.IsVariationSequences():
		return "variation sequences"
	case s.IsSymbol():
		return "symbol"
	case s.IsRaw():
		return "unsupported"
	case s.IsMacRoman():
		return "Macintosh Roman"
	case s.IsFullRepertoire():
		return "Unicode full repertoire"
	case s.IsBMP():
		return "Unicode BMP"
	}
	return "other"
}
