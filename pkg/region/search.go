package region

import (
	"bytes"
)

type needleKind int

const (
	needleBytes needleKind = iota
	needleText
	needleByte
	needleRegion
)

// Needle is a value to search for. Every kind resolves to a byte sequence
// before the search runs. The zero Needle is the empty byte sequence.
type Needle struct {
	kind    needleKind
	text    string
	charset string
	b       byte
	p       []byte
	region  *Region
}

// Text is a needle encoded with the searched region's charset
func Text(s string) Needle {
	return Needle{kind: needleText, text: s}
}

// TextIn is a needle encoded with an explicit charset
func TextIn(s, charset string) Needle {
	return Needle{kind: needleText, text: s, charset: charset}
}

// Byte is a single-byte needle
func Byte(b byte) Needle {
	return Needle{kind: needleByte, b: b}
}

// Bytes is a raw byte sequence needle
func Bytes(p []byte) Needle {
	return Needle{kind: needleBytes, p: p}
}

// RegionNeedle searches for the used bytes of another region
func RegionNeedle(o *Region) Needle {
	return Needle{kind: needleRegion, region: o}
}

// resolve turns a needle into the bytes to look for
func (r *Region) resolve(op string, n Needle) ([]byte, error) {
	switch n.kind {
	case needleText:
		charset := n.charset
		if charset == "" {
			charset = r.Charset()
		}
		p, err := r.textCodec().Encode(n.text, charset)
		if err != nil {
			return nil, wrapError(KindType, op, err, "cannot encode needle as %q", charset)
		}
		return p, nil
	case needleByte:
		return []byte{n.b}, nil
	case needleRegion:
		if n.region == nil {
			return nil, nil
		}
		return n.region.Bytes(), nil
	default:
		return n.p, nil
	}
}

// IndexOf returns the first position at or after byteOffset where n occurs
// in the used bytes, or -1. A negative byteOffset counts back from Len().
// An empty needle matches at the resolved offset and never yields -1.
func (r *Region) IndexOf(n Needle, byteOffset int) (int, error) {
	return r.search("indexof", n, byteOffset, true)
}

// Index is IndexOf from the start of the region
func (r *Region) Index(n Needle) (int, error) {
	return r.IndexOf(n, 0)
}

// LastIndexOf returns the last position at or before byteOffset where n
// starts, or -1. A negative byteOffset counts back from Len().
func (r *Region) LastIndexOf(n Needle, byteOffset int) (int, error) {
	return r.search("lastindexof", n, byteOffset, false)
}

// LastIndex is LastIndexOf over the whole region
func (r *Region) LastIndex(n Needle) (int, error) {
	return r.LastIndexOf(n, r.used)
}

// Includes reports whether IndexOf finds n
func (r *Region) Includes(n Needle, byteOffset int) (bool, error) {
	i, err := r.IndexOf(n, byteOffset)
	return i != -1, err
}

func (r *Region) search(op string, n Needle, byteOffset int, forward bool) (int, error) {
	needle, err := r.resolve(op, n)
	if err != nil {
		return -1, err
	}
	haystack := r.Bytes()

	start := searchStart(len(haystack), byteOffset, len(needle), forward)
	if len(needle) == 0 {
		return start, nil
	}
	if start < 0 || len(needle) > len(haystack) {
		return -1, nil
	}

	if forward {
		i := bytes.Index(haystack[start:], needle)
		if i < 0 {
			return -1, nil
		}
		return start + i, nil
	}
	end := start + len(needle)
	if end > len(haystack) {
		end = len(haystack)
	}
	return bytes.LastIndex(haystack[:end], needle), nil
}

// searchStart resolves a caller's byte offset against a haystack of length
// bytes. For a non-empty needle, -1 means nothing can match.
func searchStart(length, offset, needleLen int, forward bool) int {
	if offset < 0 {
		switch {
		case offset+length >= 0:
			return length + offset
		case forward || needleLen == 0:
			return 0
		default:
			return -1
		}
	}

	switch {
	case offset <= length-needleLen:
		return offset
	case needleLen == 0:
		return length
	case forward:
		return -1
	default:
		return length - 1
	}
}
