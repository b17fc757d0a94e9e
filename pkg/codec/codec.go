// Package codec converts between text and bytes for a set of named charsets.
//
// Charset identifiers are opaque, case-insensitive strings such as "utf8",
// "hex" or "base64". Encoding a string in "hex" or "base64" means reading the
// string as that notation and producing the bytes it denotes, so that a region
// can be filled from a hex dump as easily as from plain text.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Canonical charset names
const (
	UTF8      = "utf8"
	Hex       = "hex"
	Base64    = "base64"
	Base64URL = "base64url"
	Latin1    = "latin1"
	ASCII     = "ascii"
	UTF16LE   = "utf16le"
)

// ErrUnknownCharset is returned for charset names no codec recognizes
var ErrUnknownCharset = errors.New("unknown charset")

// Codec encodes text to bytes and decodes bytes to text
type Codec interface {
	Encode(text, charset string) ([]byte, error)
	Decode(p []byte, charset string) (string, error)
}

var aliases = map[string]string{
	"utf8":      UTF8,
	"utf-8":     UTF8,
	"hex":       Hex,
	"base64":    Base64,
	"base64url": Base64URL,
	"latin1":    Latin1,
	"binary":    Latin1,
	"ascii":     ASCII,
	"utf16le":   UTF16LE,
	"utf-16le":  UTF16LE,
	"ucs2":      UTF16LE,
	"ucs-2":     UTF16LE,
}

// Normalize resolves an alias to its canonical charset name
func Normalize(charset string) (string, error) {
	if name, ok := aliases[strings.ToLower(charset)]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
}

// IsKnown reports whether charset names a supported charset
func IsKnown(charset string) bool {
	_, err := Normalize(charset)
	return err == nil
}

// Standard is the default, stateless codec
var Standard Codec = standard{}

type standard struct{}

var utf16 = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encode implements Codec
func (standard) Encode(text, charset string) ([]byte, error) {
	name, err := Normalize(charset)
	if err != nil {
		return nil, err
	}

	switch name {
	case UTF8:
		return []byte(text), nil
	case Hex:
		return decodeHexPrefix(text), nil
	case Base64, Base64URL:
		return decodeBase64(text)
	case Latin1, ASCII:
		// Runes above U+00FF become the ASCII substitute character.
		return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).Bytes([]byte(text))
	default: // UTF16LE
		return utf16.NewEncoder().Bytes([]byte(text))
	}
}

// Decode implements Codec
func (standard) Decode(p []byte, charset string) (string, error) {
	name, err := Normalize(charset)
	if err != nil {
		return "", err
	}

	switch name {
	case UTF8:
		return strings.ToValidUTF8(string(p), string(utf8.RuneError)), nil
	case Hex:
		return hex.EncodeToString(p), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(p), nil
	case Base64URL:
		return base64.RawURLEncoding.EncodeToString(p), nil
	case Latin1:
		return charmap.ISO8859_1.NewDecoder().String(string(p))
	case ASCII:
		masked := make([]byte, len(p))
		for i, b := range p {
			masked[i] = b & 0x7f
		}
		return string(masked), nil
	default: // UTF16LE
		// A dangling odd byte carries no code unit.
		return utf16.NewDecoder().String(string(p[:len(p)&^1]))
	}
}

// Fit returns the longest prefix of encoded that is at most limit bytes long
// and does not end in the middle of a character of charset.
func Fit(encoded []byte, limit int, charset string) []byte {
	if limit < 0 {
		limit = 0
	}
	if limit >= len(encoded) {
		return encoded
	}

	name, _ := Normalize(charset)
	switch name {
	case UTF8:
		i := limit
		for back := 0; i > 0 && back < utf8.UTFMax && !utf8.RuneStart(encoded[i]); back++ {
			i--
		}
		if !utf8.RuneStart(encoded[i]) {
			// Not valid UTF-8 around the cut; fall back to a byte cut.
			i = limit
		}
		return encoded[:i]
	case UTF16LE:
		return encoded[:limit&^1]
	default:
		return encoded[:limit]
	}
}

// decodeHexPrefix decodes pairs of hex digits up to the first invalid pair
func decodeHexPrefix(s string) []byte {
	n := len(s) / 2
	for i := 0; i < n; i++ {
		if !isHexDigit(s[2*i]) || !isHexDigit(s[2*i+1]) {
			n = i
			break
		}
	}
	out := make([]byte, n)
	// The prefix is valid by construction.
	_, _ = hex.Decode(out, []byte(s[:2*n]))
	return out
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// decodeBase64 accepts the standard and URL alphabets, with or without
// padding, ignoring whitespace.
func decodeBase64(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', '=':
			return -1
		case '-':
			return '+'
		case '_':
			return '/'
		}
		return r
	}, s)
	if len(cleaned)%4 == 1 {
		// A single trailing sextet cannot form a byte.
		cleaned = cleaned[:len(cleaned)-1]
	}
	out, err := base64.RawStdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return out, nil
}
