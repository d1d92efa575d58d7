package gostix

import (
	"strconv"

	"github.com/Sqooba/gostix/internal/jsonval"
)

// Encodable is implemented by every value that serializes to a JSON object.
// Encoding is total: a well-formed in-memory value always has exactly one
// canonical serialization.
type Encodable interface {
	EncodeValue() map[string]any
}

// Marshal serializes v. Output keys are sorted, so the bytes are
// deterministic for a given value.
func Marshal(v Encodable) ([]byte, error) { return jsonval.Marshal(v.EncodeValue()) }

// MarshalIndent serializes v with indentation.
func MarshalIndent(v Encodable, prefix, indent string) ([]byte, error) {
	return jsonval.MarshalIndent(v.EncodeValue(), prefix, indent)
}

// objWriter builds the value-tree form of one object. Optional setters skip
// zero values, so absent fields are omitted from the output rather than
// emitted as null.
type objWriter struct{ m map[string]any }

func newObjWriter() *objWriter { return &objWriter{m: make(map[string]any, 16)} }

func (w *objWriter) set(key string, v any) { w.m[key] = v }

func (w *objWriter) reqStr(key, s string) { w.m[key] = s }

func (w *objWriter) str(key, s string) {
	if s == "" {
		return
	}
	w.m[key] = s
}

func (w *objWriter) boolPtr(key string, b *bool) {
	if b == nil {
		return
	}
	w.m[key] = *b
}

func (w *objWriter) intPtr(key string, n *int64) {
	if n == nil {
		return
	}
	w.m[key] = intNumber(*n)
}

func (w *objWriter) int(key string, n int64) { w.m[key] = intNumber(n) }

func (w *objWriter) floatPtr(key string, f *float64) {
	if f == nil {
		return
	}
	w.m[key] = jsonval.Number(strconv.FormatFloat(*f, 'g', -1, 64))
}

func (w *objWriter) intMap(key string, m map[string]int64) {
	if m == nil {
		return
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = intNumber(v)
	}
	w.m[key] = out
}

func intNumber(n int64) jsonval.Number { return jsonval.Number(strconv.FormatInt(n, 10)) }

func (w *objWriter) ts(key string, ts Timestamp) {
	if ts.IsZero() {
		return
	}
	w.m[key] = string(ts)
}

func (w *objWriter) reqTS(key string, ts Timestamp) { w.m[key] = string(ts) }

func (w *objWriter) id(key string, id Identifier) {
	if id.IsZero() {
		return
	}
	w.m[key] = id.String()
}

func (w *objWriter) reqID(key string, id Identifier) { w.m[key] = id.String() }

func (w *objWriter) strList(key string, ss []string) {
	if ss == nil {
		return
	}
	arr := make([]any, len(ss))
	for i, s := range ss {
		arr[i] = s
	}
	w.m[key] = arr
}

func (w *objWriter) idList(key string, ids []Identifier) {
	if ids == nil {
		return
	}
	arr := make([]any, len(ids))
	for i, id := range ids {
		arr[i] = id.String()
	}
	w.m[key] = arr
}

func (w *objWriter) strMap(key string, m map[string]string) {
	if m == nil {
		return
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	w.m[key] = out
}

func (w *objWriter) flexMap(key string, m map[string]IntOrString) {
	if m == nil {
		return
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.encodeValue()
	}
	w.m[key] = out
}

func (w *objWriter) rawMap(key string, m map[string]any) {
	if m == nil {
		return
	}
	w.m[key] = m
}

func (w *objWriter) rawList(key string, arr []any) {
	if arr == nil {
		return
	}
	w.m[key] = arr
}

// custom merges custom properties last; static fields already written win
// every collision.
func (w *objWriter) custom(c CustomProperties) { mergeCustom(w.m, c) }

func (w *objWriter) done() map[string]any { return w.m }

// encodeList emits an optional slice of nested objects. nil is omitted; an
// empty non-nil slice encodes as [].
func encodeList[T Encodable](w *objWriter, key string, vs []T) {
	if vs == nil {
		return
	}
	arr := make([]any, len(vs))
	for i, v := range vs {
		arr[i] = v.EncodeValue()
	}
	w.m[key] = arr
}
