package cadence

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

// DataConverter passes workflow and activity arguments as one msgpack
// stream. Struct fields are keyed by their json tags.
type DataConverter struct{}

func NewMsgPackDataConverter() *DataConverter {
	return &DataConverter{}
}

func (DataConverter) ToData(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseJSONTag(true)
	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode argument %d (%T): %w", i, v, err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes the stream into the pointers in order. It fails when
// the stream holds fewer values than requested.
func (DataConverter) FromData(input []byte, valuePtr ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(input)).UseJSONTag(true)
	for i, ptr := range valuePtr {
		if err := dec.Decode(ptr); err != nil {
			return fmt.Errorf("decode argument %d (%T): %w", i, ptr, err)
		}
	}
	return nil
}
