// Package export renders a region in an interchange format and reads it back
package export

import (
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/AdrianWangs/go-buffer/pkg/codec"
	"github.com/AdrianWangs/go-buffer/pkg/region"
)

// Format names an export representation
type Format string

const (
	// FormatText decodes the used bytes with the region's charset
	FormatText Format = "text"
	// FormatHex is lowercase hex of the used bytes
	FormatHex Format = "hex"
	// FormatJSON is {"type":"Buffer","data":[...]}
	FormatJSON Format = "json"
	// FormatProto is a google.protobuf.BytesValue message
	FormatProto Format = "proto"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatHex, FormatJSON, FormatProto}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown export format %q", name)
}

// Encode renders the used bytes of r in format f
func Encode(r *region.Region, f Format) ([]byte, error) {
	switch f {
	case FormatText:
		text, err := r.ToText("", 0, -1)
		if err != nil {
			return nil, errors.Wrap(err, "export text")
		}
		return []byte(text), nil
	case FormatHex:
		text, err := r.ToText(codec.Hex, 0, -1)
		if err != nil {
			return nil, errors.Wrap(err, "export hex")
		}
		return []byte(text), nil
	case FormatJSON:
		out, err := r.MarshalJSON()
		return out, errors.Wrap(err, "export json")
	case FormatProto:
		out, err := proto.Marshal(wrapperspb.Bytes(r.ToBytes(0, -1)))
		return out, errors.Wrap(err, "export proto")
	default:
		return nil, errors.Errorf("unknown export format %q", f)
	}
}

// Write encodes r in format f to w
func Write(w io.Writer, r *region.Region, f Format) error {
	out, err := Encode(r, f)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return errors.Wrap(err, "write export")
}

// Decode builds a region from data in format f. Options configure the new
// region; text data is taken byte for byte.
func Decode(data []byte, f Format, opts ...region.Option) (*region.Region, error) {
	switch f {
	case FormatText:
		r, err := region.FromBytes(data, opts...)
		return r, errors.Wrap(err, "import text")
	case FormatHex:
		r, err := region.New(opts...)
		if err != nil {
			return nil, errors.Wrap(err, "import hex")
		}
		text := strings.TrimSpace(string(data))
		n, err := r.AppendStringN(text, math.MaxInt, codec.Hex)
		if err != nil {
			return nil, errors.Wrap(err, "import hex")
		}
		// The hex charset stops at the first bad pair; an import must not.
		if len(text)%2 != 0 || n != len(text)/2 {
			return nil, errors.Errorf("import hex: invalid hex at byte %d", 2*n)
		}
		return r, nil
	case FormatJSON:
		r, err := region.New(opts...)
		if err != nil {
			return nil, errors.Wrap(err, "import json")
		}
		if err := r.UnmarshalJSON(data); err != nil {
			return nil, errors.Wrap(err, "import json")
		}
		return r, nil
	case FormatProto:
		msg := &wrapperspb.BytesValue{}
		if err := proto.Unmarshal(data, msg); err != nil {
			return nil, errors.Wrap(err, "import proto")
		}
		r, err := region.FromBytes(msg.GetValue(), opts...)
		return r, errors.Wrap(err, "import proto")
	default:
		return nil, errors.Errorf("unknown export format %q", f)
	}
}
