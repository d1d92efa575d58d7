package gostix

import (
	"sort"
	"strconv"

	"github.com/Sqooba/gostix/i18n"
	"github.com/Sqooba/gostix/internal/jsonval"
)

// objReader is a cursor over one JSON object node. Field accessors record
// which keys they consumed so rest() can hand every leftover key to the
// custom-property carrier. Issues accumulate across accessor calls; err()
// finalizes, so a decode either fully succeeds or reports every structural
// problem found.
type objReader struct {
	path string // JSON Pointer base; "" at the root.
	m    map[string]any
	used map[string]bool
	iss  Issues
}

// newObjReader wraps a value-tree node, failing with invalid_type when the
// node is not a JSON object.
func newObjReader(path string, v any) (*objReader, Issues) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{Issue{
			Path:    pathOrRoot(path),
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "expected object",
		}}
	}
	return &objReader{path: path, m: m, used: make(map[string]bool, len(m))}, nil
}

func pathOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func (r *objReader) joinPath(key string) string { return r.path + "/" + key }

func (r *objReader) take(key string) (any, bool) {
	v, ok := r.m[key]
	if ok {
		r.used[key] = true
	}
	return v, ok
}

func (r *objReader) missing(key string) {
	r.iss = AppendIssues(r.iss, Issue{
		Path:    r.joinPath(key),
		Code:    CodeMissingRequiredField,
		Message: i18n.T(CodeMissingRequiredField, nil),
	})
}

func (r *objReader) mismatch(path, expected string) {
	r.iss = AppendIssues(r.iss, Issue{
		Path:    path,
		Code:    CodeFieldTypeMismatch,
		Message: i18n.T(CodeFieldTypeMismatch, nil),
		Hint:    "expected " + expected,
		Params:  map[string]any{"expected": expected},
	})
}

// str reads an optional string field. Absent and null both yield "".
func (r *objReader) str(key string) string {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		r.mismatch(r.joinPath(key), "string")
		return ""
	}
	return s
}

// reqStr reads a required string field.
func (r *objReader) reqStr(key string) string {
	raw, ok := r.take(key)
	if !ok {
		r.missing(key)
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		r.mismatch(r.joinPath(key), "string")
		return ""
	}
	return s
}

// optBool reads an optional boolean field into a pointer; nil means absent.
func (r *objReader) optBool(key string) *bool {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	b, ok := raw.(bool)
	if !ok {
		r.mismatch(r.joinPath(key), "boolean")
		return nil
	}
	return &b
}

// reqBool reads a required boolean field.
func (r *objReader) reqBool(key string) bool {
	raw, ok := r.take(key)
	if !ok {
		r.missing(key)
		return false
	}
	b, ok := raw.(bool)
	if !ok {
		r.mismatch(r.joinPath(key), "boolean")
		return false
	}
	return b
}

// optInt reads an optional integer field into a pointer; nil means absent.
func (r *objReader) optInt(key string) *int64 {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	n, ok := rawInt64(raw)
	if !ok {
		r.mismatch(r.joinPath(key), "integer")
		return nil
	}
	return &n
}

// reqInt reads a required integer field.
func (r *objReader) reqInt(key string) int64 {
	raw, ok := r.take(key)
	if !ok {
		r.missing(key)
		return 0
	}
	n, ok := rawInt64(raw)
	if !ok {
		r.mismatch(r.joinPath(key), "integer")
		return 0
	}
	return n
}

// optFloat reads an optional floating-point field into a pointer; nil means
// absent.
func (r *objReader) optFloat(key string) *float64 {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	n, ok := raw.(jsonval.Number)
	if !ok {
		r.mismatch(r.joinPath(key), "number")
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		r.mismatch(r.joinPath(key), "number")
		return nil
	}
	return &f
}

// intMap reads an optional object field whose values are all integers; nil
// means absent.
func (r *objReader) intMap(key string) map[string]int64 {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		r.mismatch(r.joinPath(key), "object")
		return nil
	}
	out := make(map[string]int64, len(m))
	for _, k := range sortedKeys(m) {
		n, ok := rawInt64(m[k])
		if !ok {
			r.mismatch(r.joinPath(key)+"/"+k, "integer")
			continue
		}
		out[k] = n
	}
	return out
}

// rawInt64 narrows a value-tree number with integral value to int64.
func rawInt64(raw any) (int64, bool) {
	n, ok := raw.(jsonval.Number)
	if !ok {
		return 0, false
	}
	if v, err := n.Int64(); err == nil {
		return v, true
	}
	f, err := n.Float64()
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// ts reads an optional timestamp field verbatim.
func (r *objReader) ts(key string) Timestamp {
	return Timestamp(r.str(key))
}

// reqTS reads a required timestamp field verbatim.
func (r *objReader) reqTS(key string) Timestamp {
	return Timestamp(r.reqStr(key))
}

// id reads an optional identifier field; zero value means absent.
func (r *objReader) id(key string) Identifier {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return Identifier{}
	}
	return r.parseID(r.joinPath(key), raw)
}

// reqID reads a required identifier field.
func (r *objReader) reqID(key string) Identifier {
	raw, ok := r.take(key)
	if !ok {
		r.missing(key)
		return Identifier{}
	}
	return r.parseID(r.joinPath(key), raw)
}

func (r *objReader) parseID(path string, raw any) Identifier {
	s, ok := raw.(string)
	if !ok {
		r.mismatch(path, "string")
		return Identifier{}
	}
	id, err := ParseIdentifier(s)
	if err != nil {
		if iss, ok := AsIssues(err); ok {
			r.iss = AppendIssues(r.iss, rebase(iss, path)...)
		}
		return Identifier{}
	}
	return id
}

// strList reads an optional array-of-strings field; nil means absent.
func (r *objReader) strList(key string) []string {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		r.mismatch(r.joinPath(key), "array")
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			r.mismatch(r.joinPath(key)+"/"+strconv.Itoa(i), "string")
			continue
		}
		out = append(out, s)
	}
	return out
}

// reqStrList reads a required array-of-strings field.
func (r *objReader) reqStrList(key string) []string {
	raw, ok := r.take(key)
	if !ok {
		r.missing(key)
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		r.mismatch(r.joinPath(key), "array")
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			r.mismatch(r.joinPath(key)+"/"+strconv.Itoa(i), "string")
			continue
		}
		out = append(out, s)
	}
	return out
}

// idList reads an optional array-of-identifiers field; nil means absent.
func (r *objReader) idList(key string) []Identifier {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	return r.parseIDList(key, raw)
}

// reqIDList reads a required array-of-identifiers field.
func (r *objReader) reqIDList(key string) []Identifier {
	raw, ok := r.take(key)
	if !ok {
		r.missing(key)
		return nil
	}
	return r.parseIDList(key, raw)
}

func (r *objReader) parseIDList(key string, raw any) []Identifier {
	arr, ok := raw.([]any)
	if !ok {
		r.mismatch(r.joinPath(key), "array")
		return nil
	}
	out := make([]Identifier, 0, len(arr))
	for i, el := range arr {
		id := r.parseID(r.joinPath(key)+"/"+strconv.Itoa(i), el)
		if id.IsZero() {
			continue
		}
		out = append(out, id)
	}
	return out
}

// strMap reads an optional object field whose values are all strings
// (hashes, environment variables); nil means absent.
func (r *objReader) strMap(key string) map[string]string {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		r.mismatch(r.joinPath(key), "object")
		return nil
	}
	out := make(map[string]string, len(m))
	for _, k := range sortedKeys(m) {
		s, ok := m[k].(string)
		if !ok {
			r.mismatch(r.joinPath(key)+"/"+k, "string")
			continue
		}
		out[k] = s
	}
	return out
}

// flexMap reads an optional object field whose values are integer-or-string;
// nil means absent.
func (r *objReader) flexMap(key string) map[string]IntOrString {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		r.mismatch(r.joinPath(key), "object")
		return nil
	}
	out := make(map[string]IntOrString, len(m))
	for _, k := range sortedKeys(m) {
		v, iss := decodeIntOrString(r.joinPath(key)+"/"+k, m[k])
		if iss != nil {
			r.iss = AppendIssues(r.iss, iss...)
			continue
		}
		out[k] = v
	}
	return out
}

// rawMap reads an optional object field without interpreting its values.
func (r *objReader) rawMap(key string) (map[string]any, bool) {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil, false
	}
	m, ok := raw.(map[string]any)
	if !ok {
		r.mismatch(r.joinPath(key), "object")
		return nil, false
	}
	return m, true
}

// reqRawMap reads a required object field without interpreting its values.
func (r *objReader) reqRawMap(key string) map[string]any {
	raw, ok := r.take(key)
	if !ok {
		r.missing(key)
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		r.mismatch(r.joinPath(key), "object")
		return nil
	}
	return m
}

// rawList reads an optional array field without interpreting its elements;
// nil means absent.
func (r *objReader) rawList(key string) []any {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		r.mismatch(r.joinPath(key), "array")
		return nil
	}
	return arr
}

// raw consumes an arbitrary field value.
func (r *objReader) raw(key string) (any, bool) { return r.take(key) }

// rest returns every key the codec did not consume. nil when nothing is
// left over.
func (r *objReader) rest() CustomProperties {
	if len(r.used) == len(r.m) {
		return nil
	}
	out := make(CustomProperties, len(r.m)-len(r.used))
	for k, v := range r.m {
		if r.used[k] {
			continue
		}
		out[k] = v
	}
	return out
}

// err finalizes the read; nil when every accessor succeeded.
func (r *objReader) err() error {
	if len(r.iss) == 0 {
		return nil
	}
	return r.iss
}

// decodeList decodes each element of an optional array-of-objects field with
// fn, rebasing element issues under the field path. nil means absent.
func decodeList[T any](r *objReader, key string, fn func(*objReader) T) []T {
	raw, ok := r.take(key)
	if !ok || raw == nil {
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		r.mismatch(r.joinPath(key), "array")
		return nil
	}
	out := make([]T, 0, len(arr))
	for i, el := range arr {
		er, iss := newObjReader(r.joinPath(key)+"/"+strconv.Itoa(i), el)
		if iss != nil {
			r.iss = AppendIssues(r.iss, iss...)
			continue
		}
		out = append(out, fn(er))
		r.iss = AppendIssues(r.iss, er.iss...)
	}
	return out
}

// sortedKeys returns map keys in ascending order so issue reporting and
// nested decoding stay deterministic.
func sortedKeys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// parseValue converts raw bytes into a value tree, wrapping substrate errors
// as parse_error.
func parseValue(data []byte) (any, Issues) {
	v, err := jsonval.Unmarshal(data)
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return v, nil
}

// discriminatorOf peeks the type field of a raw JSON object without
// consuming anything else.
func discriminatorOf(v any) (string, map[string]any, Issues) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", nil, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "expected object",
		}}
	}
	raw, ok := m["type"]
	if !ok {
		return "", nil, Issues{Issue{
			Path:    "/type",
			Code:    CodeMissingRequiredField,
			Message: i18n.T(CodeMissingRequiredField, nil),
		}}
	}
	s, ok := raw.(string)
	if !ok {
		return "", nil, Issues{Issue{
			Path:    "/type",
			Code:    CodeFieldTypeMismatch,
			Message: i18n.T(CodeFieldTypeMismatch, nil),
			Hint:    "expected string",
			Params:  map[string]any{"expected": "string"},
		}}
	}
	return s, m, nil
}
