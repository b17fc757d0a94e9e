package region

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonType tags the serialized form
const jsonType = "Buffer"

// MarshalJSON encodes the used bytes as {"type":"Buffer","data":[...]},
// one number per byte in order.
func (r *Region) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("type")
	stream.WriteString(jsonType)
	stream.WriteMore()
	stream.WriteObjectField("data")
	stream.WriteArrayStart()
	for i, b := range r.Bytes() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteUint8(b)
	}
	stream.WriteArrayEnd()
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// UnmarshalJSON replaces the content with the bytes of a {"type":"Buffer"}
// object. Settings and capacity are kept; the region grows if needed.
func (r *Region) UnmarshalJSON(data []byte) error {
	var payload struct {
		Type string `json:"type"`
		Data []int  `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return wrapError(KindType, "unmarshal", err, "malformed buffer object")
	}
	if payload.Type != jsonType {
		return newError(KindType, "unmarshal", "type %q is not %q", payload.Type, jsonType)
	}

	p := make([]byte, len(payload.Data))
	for i, v := range payload.Data {
		if v < 0 || v > 0xff {
			return newError(KindRange, "unmarshal", "data[%d] = %d is not a byte", i, v)
		}
		p[i] = byte(v)
	}

	_, err := r.writeBytes("unmarshal", 0, p)
	return err
}
