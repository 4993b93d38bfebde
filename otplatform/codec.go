package otplatform

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedEncoding is returned for platform/encoding pairs without a
// codec.
var ErrUnsupportedEncoding = errors.New("unsupported platform encoding")

// ErrUndecodable is returned if bytes are not valid in their declared
// encoding.
var ErrUndecodable = errors.New("string not decodable in declared encoding")

// UnencodableError reports a contiguous run of runes which the target
// encoding cannot represent. Start and End are rune indices, End exclusive.
type UnencodableError struct {
	Encoding string
	Start    int
	End      int
}

func (e *UnencodableError) Error() string {
	return fmt.Sprintf("%s cannot encode runes [%d,%d)", e.Encoding, e.Start, e.End)
}

// runeCodec is the common interface of the text codecs used for name strings.
type runeCodec interface {
	name() string
	encodeRune(r rune, dst []byte) ([]byte, bool)
	decode(b []byte) (string, bool)
}

// xtextCodec adapts a golang.org/x/text encoding.
type xtextCodec struct {
	label string
	enc   encoding.Encoding
}

func (c xtextCodec) name() string { return c.label }

func (c xtextCodec) encodeRune(r rune, dst []byte) ([]byte, bool) {
	if cm, ok := c.enc.(*charmap.Charmap); ok {
		b, ok := cm.EncodeRune(r)
		if !ok {
			return dst, false
		}
		return append(dst, b), true
	}
	out, err := c.enc.NewEncoder().Bytes([]byte(string(r)))
	if err != nil {
		return dst, false
	}
	return append(dst, out...), true
}

func (c xtextCodec) decode(b []byte) (string, bool) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	s := string(out)
	if strings.ContainsRune(s, utf8.RuneError) {
		return s, false
	}
	return s, true
}

// utf16Codec encodes UTF-16 big endian, as used by Windows and Unicode
// platform name records.
type utf16Codec struct{}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

func (utf16Codec) name() string { return "UTF-16BE" }

func (utf16Codec) encodeRune(r rune, dst []byte) ([]byte, bool) {
	if !utf8.ValidRune(r) {
		return dst, false
	}
	out, err := utf16be.NewEncoder().Bytes([]byte(string(r)))
	if err != nil {
		return dst, false
	}
	return append(dst, out...), true
}

func (utf16Codec) decode(b []byte) (string, bool) {
	if len(b)%2 != 0 {
		return "", false
	}
	out, err := utf16be.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	s := string(out)
	if strings.ContainsRune(s, utf8.RuneError) {
		return s, false
	}
	return s, true
}

var (
	macRoman       = xtextCodec{"MacRoman", charmap.Macintosh}
	macCyrillic    = xtextCodec{"MacCyrillic", charmap.MacintoshCyrillic}
	shiftJIS       = xtextCodec{"Shift_JIS", japanese.ShiftJIS}
	big5           = xtextCodec{"Big5", traditionalchinese.Big5}
	eucKR          = xtextCodec{"EUC-KR", korean.EUCKR}
	gbk            = xtextCodec{"GBK", simplifiedchinese.GBK}
	macCentralEuro = macCECodec{}
)

func macCodec(enc EncodingID) (runeCodec, bool) {
	switch enc {
	case EncodingIDMacRoman:
		return macRoman, true
	case EncodingIDMacJapanese:
		return shiftJIS, true
	case EncodingIDMacTradChinese:
		return big5, true
	case EncodingIDMacKorean:
		return eucKR, true
	case EncodingIDMacCyrillic:
		return macCyrillic, true
	case EncodingIDMacSimpChinese:
		return gbk, true
	case EncodingIDMacCentralEuroRoman:
		return macCentralEuro, true
	}
	return nil, false
}

func winCodec(enc EncodingID) (runeCodec, bool) {
	switch enc {
	case EncodingIDWindowsSymbol, EncodingIDWindowsBMP, EncodingIDWindowsFull:
		return utf16Codec{}, true
	case EncodingIDWindowsShiftJIS:
		return shiftJIS, true
	case EncodingIDWindowsPRC:
		return gbk, true
	case EncodingIDWindowsBig5:
		return big5, true
	case EncodingIDWindowsWansung:
		return eucKR, true
	}
	return nil, false // Johab and reserved values
}

func codecFor(p PlatformID, e EncodingID) (runeCodec, bool) {
	switch p {
	case PlatformIDUnicode:
		return utf16Codec{}, true
	case PlatformIDMacintosh:
		return macCodec(e)
	case PlatformIDWindows:
		return winCodec(e)
	}
	return nil, false
}

// HasCodec reports whether strings for a platform/encoding pair can be
// encoded and decoded.
func HasCodec(p PlatformID, e EncodingID) bool {
	_, ok := codecFor(p, e)
	return ok
}

// EncodeName encodes a name string for a platform/encoding pair. If some runes
// cannot be represented, the error is an *UnencodableError for the first
// run of such runes.
func EncodeName(s string, p PlatformID, e EncodingID) ([]byte, error) {
	c, ok := codecFor(p, e)
	if !ok {
		return nil, fmt.Errorf("%w: platform %d, encoding %d", ErrUnsupportedEncoding, p, e)
	}
	return encodeWith(c, s)
}

// DecodeName decodes the bytes of a name string stored for a platform/encoding
// pair.
func DecodeName(b []byte, p PlatformID, e EncodingID) (string, error) {
	c, ok := codecFor(p, e)
	if !ok {
		return "", fmt.Errorf("%w: platform %d, encoding %d", ErrUnsupportedEncoding, p, e)
	}
	s, ok := c.decode(b)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUndecodable, c.name())
	}
	return s, nil
}

// EncodeMac encodes s in a Macintosh script.
func EncodeMac(s string, enc EncodingID) ([]byte, error) {
	return EncodeName(s, PlatformIDMacintosh, enc)
}

// DecodeMac decodes bytes in a Macintosh script.
func DecodeMac(b []byte, enc EncodingID) (string, error) {
	return DecodeName(b, PlatformIDMacintosh, enc)
}

// EncodeWin encodes s in a Windows encoding.
func EncodeWin(s string, enc EncodingID) ([]byte, error) {
	return EncodeName(s, PlatformIDWindows, enc)
}

// DecodeWin decodes bytes in a Windows encoding.
func DecodeWin(b []byte, enc EncodingID) (string, error) {
	return DecodeName(b, PlatformIDWindows, enc)
}

func encodeWith(c runeCodec, s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*2)
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		var ok bool
		if out, ok = c.encodeRune(runes[i], out); ok {
			continue
		}
		end := i + 1
		for end < len(runes) {
			if _, ok := c.encodeRune(runes[end], nil); ok {
				break
			}
			end++
		}
		return nil, &UnencodableError{Encoding: c.name(), Start: i, End: end}
	}
	return out, nil
}

// --- MacRoman code page for cmap derivation --------------------------------

// MacRomanToUnicode decodes a single MacRoman code.
func MacRomanToUnicode(code byte) rune {
	return charmap.Macintosh.DecodeByte(code)
}

// UnicodeToMacRoman encodes a code point as a single MacRoman code.
func UnicodeToMacRoman(r rune) (byte, bool) {
	return charmap.Macintosh.EncodeRune(r)
}
