package region

import (
	"io"
)

// Get returns the byte at off. ok is false when off is outside [0, Len()).
func (r *Region) Get(off int) (b byte, ok bool) {
	if off < 0 || off >= r.used {
		return 0, false
	}
	return r.storage[off], true
}

// At is Get with negative indexes counting back from Len()
func (r *Region) At(i int) (byte, bool) {
	if i < 0 {
		i += r.used
	}
	return r.Get(i)
}

// ReadAt implements io.ReaderAt over the used bytes
func (r *Region) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, newError(KindRange, "read", "offset %d is negative", off)
	}
	if off >= int64(r.used) {
		return 0, io.EOF
	}
	n := copy(p, r.storage[off:r.used])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteTo implements io.WriterTo, writing the used bytes to w
func (r *Region) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	if err == nil && n < r.used {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Bytes returns the used bytes without copying. The slice aliases the
// region's block: it sees later in-place writes and goes stale as soon as a
// write grows the region. Use ToBytes for a stable copy.
func (r *Region) Bytes() []byte {
	return r.storage.Slice(0, r.used)
}

// ToBytes returns a copy of the used bytes in [start, end) after clamping.
// A negative end means Len().
func (r *Region) ToBytes(start, end int) []byte {
	start, end = r.clamp(start, end)
	if end <= start {
		return []byte{}
	}
	return r.storage.Clone(start, end)
}

// ToText decodes the clamped range [start, end) with charset, or with the
// region's charset when charset is empty. A negative end means Len().
func (r *Region) ToText(charset string, start, end int) (string, error) {
	start, end = r.clamp(start, end)
	if end <= start {
		return "", nil
	}
	if charset == "" {
		charset = r.Charset()
	}
	text, err := r.textCodec().Decode(r.storage[start:end], charset)
	if err != nil {
		return "", wrapError(KindType, "text", err, "cannot decode as %q", charset)
	}
	return text, nil
}

// String decodes all used bytes with the region's charset
func (r *Region) String() string {
	text, err := r.ToText("", 0, -1)
	if err != nil {
		return ""
	}
	return text
}

// clamp resolves an export range against the used length: start is pulled
// into [0, Len()], end is pulled down to Len() and a negative end means Len().
func (r *Region) clamp(start, end int) (int, int) {
	return clampRange(r.used, start, end)
}

func clampRange(length, start, end int) (int, int) {
	if start < 0 {
		start = 0
	} else if start > length {
		start = length
	}
	if end < 0 || end > length {
		end = length
	}
	return start, end
}
