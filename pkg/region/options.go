package region

import (
	"github.com/AdrianWangs/go-buffer/pkg/codec"
)

// settings collects construction options before validation
type settings struct {
	capacity     int
	fill         byte
	charset      string
	growthFactor float64
	maxLength    int
	codec        codec.Codec
	initText     *string
	initBytes    []byte
}

func defaultSettings() settings {
	return settings{
		capacity:     DefaultCapacity,
		charset:      DefaultCharset,
		growthFactor: DefaultGrowthFactor,
		maxLength:    MaxLength,
		codec:        codec.Standard,
	}
}

// Option configures a Region at construction
type Option func(*settings)

// WithCapacity sets the initial capacity in bytes
func WithCapacity(n int) Option {
	return func(s *settings) {
		s.capacity = n
	}
}

// WithFill sets the byte every unused position holds
func WithFill(b byte) Option {
	return func(s *settings) {
		s.fill = b
	}
}

// WithCharset sets the charset used when an operation names none
func WithCharset(charset string) Option {
	return func(s *settings) {
		s.charset = charset
	}
}

// WithGrowthFactor sets the fraction of capacity added on overflow
func WithGrowthFactor(f float64) Option {
	return func(s *settings) {
		s.growthFactor = f
	}
}

// WithMaxLength lowers the largest capacity the region may reach
func WithMaxLength(n int) Option {
	return func(s *settings) {
		s.maxLength = n
	}
}

// WithCodec replaces the codec used for text input and output
func WithCodec(c codec.Codec) Option {
	return func(s *settings) {
		s.codec = c
	}
}

// WithString supplies initial text, encoded with the region's charset
func WithString(text string) Option {
	return func(s *settings) {
		s.initText = &text
		s.initBytes = nil
	}
}

// WithBytes supplies initial bytes, copied as-is
func WithBytes(p []byte) Option {
	return func(s *settings) {
		s.initBytes = p
		s.initText = nil
	}
}
