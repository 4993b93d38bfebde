package otplatform

import "unicode/utf8"

// macCEHigh maps the upper half (0x80-0xFF) of the Macintosh Central European
// script to Unicode. The lower half is ASCII.
var macCEHigh = [128]rune{
	0x00C4, 0x0100, 0x0101, 0x00C9, 0x0104, 0x00D6, 0x00DC, 0x00E1, // 0x80
	0x0105, 0x010C, 0x00E4, 0x010D, 0x0106, 0x0107, 0x00E9, 0x0179, // 0x88
	0x017A, 0x010E, 0x00ED, 0x010F, 0x0112, 0x0113, 0x0116, 0x00F3, // 0x90
	0x0117, 0x00F4, 0x00F6, 0x00F5, 0x00FA, 0x011A, 0x011B, 0x00FC, // 0x98
	0x2020, 0x00B0, 0x0118, 0x00A3, 0x00A7, 0x2022, 0x00B6, 0x00DF, // 0xA0
	0x00AE, 0x00A9, 0x2122, 0x0119, 0x00A8, 0x2260, 0x0123, 0x012E, // 0xA8
	0x012F, 0x012A, 0x2264, 0x2265, 0x012B, 0x0136, 0x2202, 0x2211, // 0xB0
	0x0142, 0x013B, 0x013C, 0x013D, 0x013E, 0x0139, 0x013A, 0x0145, // 0xB8
	0x0146, 0x0143, 0x00AC, 0x221A, 0x0144, 0x0147, 0x2206, 0x00AB, // 0xC0
	0x00BB, 0x2026, 0x00A0, 0x0148, 0x0150, 0x00D5, 0x0151, 0x014C, // 0xC8
	0x2013, 0x2014, 0x201C, 0x201D, 0x2018, 0x2019, 0x00F7, 0x25CA, // 0xD0
	0x014D, 0x0154, 0x0155, 0x0158, 0x2039, 0x203A, 0x0159, 0x0156, // 0xD8
	0x0157, 0x0160, 0x201A, 0x201E, 0x0161, 0x015A, 0x015B, 0x00C1, // 0xE0
	0x0164, 0x0165, 0x00CD, 0x017D, 0x017E, 0x016A, 0x00D3, 0x00D4, // 0xE8
	0x016B, 0x016E, 0x00DA, 0x016F, 0x0170, 0x0171, 0x0172, 0x0173, // 0xF0
	0x00DD, 0x00FD, 0x0137, 0x017B, 0x0141, 0x017C, 0x0122, 0x02C7, // 0xF8
}

var macCEReverse = func() map[rune]byte {
	m := make(map[rune]byte, len(macCEHigh))
	for i, r := range macCEHigh {
		m[r] = byte(0x80 + i)
	}
	return m
}()

// macCECodec encodes the Macintosh Central European Roman script, which
// golang.org/x/text does not provide.
type macCECodec struct{}

func (macCECodec) name() string { return "MacCentralEurRoman" }

func (macCECodec) encodeRune(r rune, dst []byte) ([]byte, bool) {
	if r < 0x80 {
		return append(dst, byte(r)), true
	}
	if b, ok := macCEReverse[r]; ok {
		return append(dst, b), true
	}
	return dst, false
}

func (macCECodec) decode(b []byte) (string, bool) {
	out := make([]byte, 0, len(b)+len(b)/2)
	for _, c := range b {
		if c < 0x80 {
			out = append(out, c)
			continue
		}
		out = utf8.AppendRune(out, macCEHigh[c-0x80])
	}
	return string(out), true
}
