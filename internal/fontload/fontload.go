package fontload

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// goFonts are the Go fonts, usable as test fonts without any files.
var goFonts = map[string][]byte{
	"Go-Regular": goregular.TTF,
	"Go-Bold":    gobold.TTF,
	"Go-Italic":  goitalic.TTF,
	"Go-Mono":    gomono.TTF,
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// GoFont returns one of the Go fonts by PostScript-like name:
// Go-Regular, Go-Bold, Go-Italic or Go-Mono. The binary is a copy, clients
// may modify it.
func GoFont(name string) (*ScalableFont, error) {
	b, ok := goFonts[name]
	if !ok {
		return nil, fmt.Errorf("no Go font named %q", name)
	}
	return ParseOpenTypeFont(append([]byte(nil), b...))
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull)
	if err != nil {
		return nil, err
	}
	return f, nil
}
