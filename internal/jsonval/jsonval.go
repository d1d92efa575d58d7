// Package jsonval is the JSON substrate seam. It converts raw bytes to and
// from generic value trees with a fixed shape contract:
//
//	map[string]any  JSON object
//	[]any           JSON array
//	string          JSON string
//	json.Number     JSON number (literal text preserved)
//	bool            JSON true/false
//	nil             JSON null
//
// Numbers stay json.Number end to end so that re-encoding reproduces the
// original literal (1e3 vs 1000, trailing zeros, big integers). The backing
// parser is goccy/go-json; swapping it only requires this package to keep
// the shape contract.
package jsonval

import (
	"bytes"
	"errors"
	"io"

	gojson "github.com/goccy/go-json"
)

// Number is the numeric leaf type of the value tree. goccy aliases it to
// encoding/json.Number, so callers may use either name interchangeably.
type Number = gojson.Number

// Unmarshal parses a single JSON value from data into a value tree.
// Trailing non-whitespace after the value is an error.
func Unmarshal(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalReader parses a single JSON value from r into a value tree.
func UnmarshalReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}
	return v, nil
}

func expectEOF(dec *gojson.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level JSON value")
	}
	return nil
}

// Marshal serializes a value tree. Object keys are emitted in sorted order,
// which makes output deterministic for a given tree.
func Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// MarshalIndent serializes a value tree with indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// Clone deep-copies a value tree. Leaves are immutable and shared.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Clone(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = Clone(vv)
		}
		return out
	default:
		return v
	}
}
