// Package region implements a growable, length-tracked byte region.
//
// A Region owns a fixed-capacity block and tracks how many leading bytes of it
// are in use. Writes past the capacity replace the block with a larger one, so
// appends cost amortized O(1) per byte. Reads, searches, comparisons and
// exports only ever observe the used bytes [0, Len()); the rest of the block
// always holds the configured fill value.
//
// A Region has a single owner and is not safe for concurrent use. The zero
// value is an empty region with default settings.
package region

import (
	"math"

	"github.com/AdrianWangs/go-buffer/pkg/block"
	"github.com/AdrianWangs/go-buffer/pkg/codec"
	"github.com/AdrianWangs/go-buffer/pkg/logger"
)

const (
	// DefaultCapacity is the capacity of a region built without WithCapacity
	DefaultCapacity = 16
	// DefaultGrowthFactor adds 75% of the current capacity on overflow
	DefaultGrowthFactor = 0.75
	// DefaultCharset is used when neither the region nor the call names one
	DefaultCharset = codec.UTF8
	// MaxLength is the largest capacity any region may have
	MaxLength = math.MaxInt32
)

// Region is a growable byte container
type Region struct {
	storage      block.Block // len(storage) is the capacity; nil when 0
	used         int
	fill         byte
	charset      string
	growthFactor float64
	maxLength    int
	codec        codec.Codec
}

// New builds a region from options. It fails with an invalid size error when
// the resolved capacity or max length is out of range, and with an invalid
// config error for a growth factor that is not a positive finite number.
func New(opts ...Option) (*Region, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	if s.maxLength <= 0 || s.maxLength > MaxLength {
		return nil, newError(KindInvalidSize, "new", "max length %d outside (0, %d]", s.maxLength, MaxLength)
	}
	if !(s.growthFactor > 0) || math.IsInf(s.growthFactor, 0) {
		return nil, newError(KindInvalidConfig, "new", "growth factor %v must be a positive number", s.growthFactor)
	}
	if s.codec == nil {
		s.codec = codec.Standard
	}
	if s.charset == "" {
		s.charset = DefaultCharset
	}

	initial := s.initBytes
	if s.initText != nil {
		encoded, err := s.codec.Encode(*s.initText, s.charset)
		if err != nil {
			return nil, wrapError(KindType, "new", err, "cannot encode initial text as %q", s.charset)
		}
		initial = encoded
	}

	capacity := s.capacity
	if len(initial) > capacity {
		capacity = len(initial)
	}
	if capacity < 0 || capacity > s.maxLength {
		return nil, newError(KindInvalidSize, "new", "capacity %d outside [0, %d]", capacity, s.maxLength)
	}

	r := &Region{
		fill:         s.fill,
		charset:      s.charset,
		growthFactor: s.growthFactor,
		maxLength:    s.maxLength,
		codec:        s.codec,
	}
	if capacity > 0 {
		r.storage = block.Allocate(capacity, r.fill)
	}
	r.used = copy(r.storage, initial)
	return r, nil
}

// FromString builds a region holding text
func FromString(text string, opts ...Option) (*Region, error) {
	return New(append(opts, WithString(text))...)
}

// FromBytes builds a region holding a copy of p
func FromBytes(p []byte, opts ...Option) (*Region, error) {
	return New(append(opts, WithBytes(p))...)
}

// Len returns the number of used bytes
func (r *Region) Len() int { return r.used }

// Cap returns the capacity of the current block
func (r *Region) Cap() int { return len(r.storage) }

// FillValue returns the byte unused positions hold
func (r *Region) FillValue() byte { return r.fill }

// Charset returns the default charset of the region
func (r *Region) Charset() string {
	if r.charset == "" {
		return DefaultCharset
	}
	return r.charset
}

// GrowthFactor returns the fraction of capacity added on overflow
func (r *Region) GrowthFactor() float64 {
	if r.growthFactor == 0 {
		return DefaultGrowthFactor
	}
	return r.growthFactor
}

// MaxLen returns the largest capacity this region may reach
func (r *Region) MaxLen() int {
	if r.maxLength == 0 {
		return MaxLength
	}
	return r.maxLength
}

func (r *Region) textCodec() codec.Codec {
	if r.codec == nil {
		return codec.Standard
	}
	return r.codec
}

// EnsureCapacity grows the block so that it holds at least required bytes.
// It fails with an overflow error, leaving the region untouched, when
// required exceeds the max length.
func (r *Region) EnsureCapacity(required int) error {
	return r.ensureCapacity("grow", required)
}

func (r *Region) ensureCapacity(op string, required int) error {
	if len(r.storage) >= required {
		return nil
	}
	if required > r.MaxLen() {
		return newError(KindOverflow, op, "required size %d exceeds max length %d", required, r.MaxLen())
	}

	capacity := r.nextCapacity(required)
	next := block.Allocate(capacity, r.fill)
	r.storage.CopyInto(next, 0, r.used, 0)

	if logger.IsDebug() {
		logger.WithFields(logger.Fields{
			"component":    "region",
			"op":           op,
			"old_capacity": len(r.storage),
			"new_capacity": capacity,
			"required":     required,
			"used":         r.used,
		}).Debug("storage grown")
	}
	r.storage = next
	return nil
}

// nextCapacity is max(required, ceil(capacity*(1+factor))), capped at the max length
func (r *Region) nextCapacity(required int) int {
	limit := r.MaxLen()
	candidate := math.Ceil(float64(len(r.storage)) * (1 + r.GrowthFactor()))
	if candidate > float64(limit) {
		candidate = float64(limit)
	}
	if n := int(candidate); n > required {
		return n
	}
	return required
}

// setUsed moves the logical end to n and restores the fill value in any
// bytes given up, keeping unused capacity uniform.
func (r *Region) setUsed(n int) {
	if n < r.used {
		r.storage.Fill(r.fill, n, r.used)
	}
	r.used = n
}
