package region

import (
	"math"

	"github.com/AdrianWangs/go-buffer/pkg/codec"
)

// AppendString encodes text with the region's charset and appends all of it.
// It returns the number of bytes written.
func (r *Region) AppendString(text string) (int, error) {
	return r.writeText("append", r.used, text, math.MaxInt, "")
}

// AppendStringN appends at most n encoded bytes of text, never splitting a
// character. An empty charset means the region's charset.
func (r *Region) AppendStringN(text string, n int, charset string) (int, error) {
	return r.writeText("append", r.used, text, n, charset)
}

// AppendBytes appends a copy of p; no charset is involved
func (r *Region) AppendBytes(p []byte) (int, error) {
	return r.writeBytes("append", r.used, p)
}

// Write appends p, implementing io.Writer
func (r *Region) Write(p []byte) (int, error) {
	return r.AppendBytes(p)
}

// WriteString appends text, implementing io.StringWriter
func (r *Region) WriteString(text string) (int, error) {
	return r.AppendString(text)
}

// AppendValue appends a string, a byte slice or the used bytes of another
// region. Any other value is a type error and nothing is written.
func (r *Region) AppendValue(v interface{}) (int, error) {
	switch v := v.(type) {
	case string:
		return r.AppendString(v)
	case []byte:
		return r.AppendBytes(v)
	case *Region:
		if v == nil {
			return 0, newError(KindType, "append", "nil region")
		}
		return r.AppendBytes(v.Bytes())
	default:
		return 0, newError(KindType, "append", "cannot append value of type %T", v)
	}
}

// WriteStringAt encodes text with the region's charset and writes it at off.
// Writing overwrites in place and the used length becomes off plus the bytes
// written, even when that is shorter than before.
func (r *Region) WriteStringAt(text string, off int) (int, error) {
	return r.writeText("write", off, text, math.MaxInt, "")
}

// WriteStringAtN is WriteStringAt capped at n encoded bytes in the given charset
func (r *Region) WriteStringAtN(text string, off, n int, charset string) (int, error) {
	return r.writeText("write", off, text, n, charset)
}

// WriteBytesAt writes a copy of p at off with the same used-length rule as
// WriteStringAt. Any gap between the old used length and off reads as the
// fill value.
func (r *Region) WriteBytesAt(p []byte, off int) (int, error) {
	return r.writeBytes("write", off, p)
}

// Set overwrites the byte at i. Indexes outside [0, Len()) are ignored.
func (r *Region) Set(i int, b byte) {
	if i < 0 || i >= r.used {
		return
	}
	r.storage[i] = b
}

func (r *Region) writeText(op string, off int, text string, limit int, charset string) (int, error) {
	if off < 0 {
		return 0, newError(KindRange, op, "offset %d is negative", off)
	}
	if charset == "" {
		charset = r.Charset()
	}
	encoded, err := r.textCodec().Encode(text, charset)
	if err != nil {
		return 0, wrapError(KindType, op, err, "cannot encode text as %q", charset)
	}
	return r.writeBytes(op, off, codec.Fit(encoded, limit, charset))
}

func (r *Region) writeBytes(op string, off int, p []byte) (int, error) {
	if off < 0 {
		return 0, newError(KindRange, op, "offset %d is negative", off)
	}
	if off > r.MaxLen() || len(p) > r.MaxLen()-off {
		return 0, newError(KindOverflow, op, "write of %d bytes at %d exceeds max length %d", len(p), off, r.MaxLen())
	}

	end := off + len(p)
	if err := r.ensureCapacity(op, end); err != nil {
		return 0, err
	}
	copy(r.storage[off:end], p)
	r.setUsed(end)
	return len(p), nil
}
