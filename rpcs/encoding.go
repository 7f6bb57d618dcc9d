package rpcs

import (
	"encoding/json"
	"io"

	rw "github.com/csePriyanshu/tree-visualizer/readwrite"
)

// Encoder serializes response bodies
type Encoder interface {
	Encode(w io.Writer, v interface{}) error
}

// JsonEncoder encodes values as JSON
type JsonEncoder struct{}

// Encode is the implementation of Encoder for JsonEncoder
func (e JsonEncoder) Encode(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}

// JsonDecoder decodes JSON request bodies
type JsonDecoder struct{}

// Decode decodes the whole reader into v
func (d JsonDecoder) Decode(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}

// DecodeWithLimit decodes the reader into v failing if the reader
// goes beyond the limit
func (d JsonDecoder) DecodeWithLimit(r io.Reader, v interface{}, props rw.ReadLimitProps) error {
	return d.Decode(rw.NewLimitReader(r, props), v)
}
