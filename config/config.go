// Package config holds the settings used to build regions and run bufctl
package config

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/AdrianWangs/go-buffer/pkg/codec"
	"github.com/AdrianWangs/go-buffer/pkg/region"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config represents the application configuration
type Config struct {
	// Region settings
	Capacity     int     `json:"capacity" yaml:"capacity"`
	GrowthFactor float64 `json:"growth_factor" yaml:"growth_factor"`
	FillValue    uint8   `json:"fill_value" yaml:"fill_value"`
	Charset      string  `json:"charset" yaml:"charset"`
	MaxLength    int     `json:"max_length" yaml:"max_length"`

	// Codec settings, 0 disables the encode cache
	CodecCacheBytes int64 `json:"codec_cache_bytes" yaml:"codec_cache_bytes"`

	// Logging settings
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Capacity:        region.DefaultCapacity,
		GrowthFactor:    region.DefaultGrowthFactor,
		Charset:         region.DefaultCharset,
		MaxLength:       region.MaxLength,
		CodecCacheBytes: 64 * 1024, // 64KiB
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFromFile loads configuration from a JSON or YAML file, picked by extension.
// Fields absent from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "read config %s", path)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "parse config %s", path)
	}

	return config, config.Validate()
}

// LoadFromEnv loads configuration from environment variables.
// Sizes accept human units such as "16KiB" or "1MB".
func LoadFromEnv() *Config {
	config := DefaultConfig()

	// Region settings
	if val := os.Getenv("GOBUF_CAPACITY"); val != "" {
		if parsed, err := parseSize(val); err == nil {
			config.Capacity = int(parsed)
		}
	}

	if val := os.Getenv("GOBUF_GROWTH_FACTOR"); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			config.GrowthFactor = parsed
		}
	}

	if val := os.Getenv("GOBUF_FILL"); val != "" {
		if parsed, err := strconv.ParseUint(val, 0, 8); err == nil {
			config.FillValue = uint8(parsed)
		}
	}

	if val := os.Getenv("GOBUF_CHARSET"); val != "" {
		config.Charset = val
	}

	if val := os.Getenv("GOBUF_MAX_LENGTH"); val != "" {
		if parsed, err := parseSize(val); err == nil {
			config.MaxLength = int(parsed)
		}
	}

	// Codec settings
	if val := os.Getenv("GOBUF_CODEC_CACHE"); val != "" {
		if parsed, err := parseSize(val); err == nil {
			config.CodecCacheBytes = parsed
		}
	}

	// Logging settings
	if val := os.Getenv("GOBUF_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("GOBUF_LOG_FORMAT"); val != "" {
		config.LogFormat = val
	}

	return config
}

// parseSize reads a byte count with optional units; values above
// region.MaxLength are rejected
func parseSize(val string) (int64, error) {
	n, err := humanize.ParseBytes(val)
	if err != nil {
		return 0, errors.Wrapf(err, "parse size %q", val)
	}
	if n > math.MaxInt32 {
		return 0, errors.Errorf("size %s exceeds %s", val, humanize.IBytes(math.MaxInt32))
	}
	return int64(n), nil
}

// Validate checks the settings a region would reject, so that a bad file
// fails at load time rather than at first use
func (c *Config) Validate() error {
	if c.MaxLength <= 0 || c.MaxLength > region.MaxLength {
		return errors.Errorf("max_length %d outside (0, %d]", c.MaxLength, region.MaxLength)
	}
	if c.Capacity < 0 || c.Capacity > c.MaxLength {
		return errors.Errorf("capacity %d outside [0, %d]", c.Capacity, c.MaxLength)
	}
	if !(c.GrowthFactor > 0) || math.IsInf(c.GrowthFactor, 0) {
		return errors.Errorf("growth_factor %v must be a positive number", c.GrowthFactor)
	}
	if !codec.IsKnown(c.Charset) {
		return errors.Errorf("unknown charset %q", c.Charset)
	}
	if c.CodecCacheBytes < 0 {
		return errors.Errorf("codec_cache_bytes %d is negative", c.CodecCacheBytes)
	}
	return nil
}

// Codec returns the codec regions should use: the standard codec, behind an
// encode cache when CodecCacheBytes is positive
func (c *Config) Codec() codec.Codec {
	if c.CodecCacheBytes > 0 {
		return codec.NewCached(codec.Standard, c.CodecCacheBytes)
	}
	return codec.Standard
}

// RegionOptions translates the configuration into region options, with a
// fresh codec from Codec
func (c *Config) RegionOptions() []region.Option {
	return c.RegionOptionsWithCodec(c.Codec())
}

// RegionOptionsWithCodec is RegionOptions with a caller-supplied codec, so
// that several regions can share one encode cache
func (c *Config) RegionOptionsWithCodec(textCodec codec.Codec) []region.Option {
	return []region.Option{
		region.WithCapacity(c.Capacity),
		region.WithGrowthFactor(c.GrowthFactor),
		region.WithFill(c.FillValue),
		region.WithCharset(c.Charset),
		region.WithMaxLength(c.MaxLength),
		region.WithCodec(textCodec),
	}
}

// SaveToFile saves configuration to a JSON or YAML file, picked by extension
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "encode config")
	}

	return errors.Wrapf(os.WriteFile(path, data, 0644), "write config %s", path)
}
