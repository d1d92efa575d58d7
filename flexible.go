package gostix

import (
	"strconv"

	"github.com/Sqooba/gostix/i18n"
	"github.com/Sqooba/gostix/internal/jsonval"
)

// IntOrString holds one alternative of a field that accepts either a JSON
// integer or a JSON string per entry (IPFIX metric maps, EXIF tag maps).
// Decoding remembers which alternative matched and encoding emits the same
// JSON shape again, never cross-converting.
type IntOrString struct {
	isStr bool
	num   jsonval.Number
	str   string
}

// IntOf returns the numeric alternative.
func IntOf(n int64) IntOrString {
	return IntOrString{num: jsonval.Number(strconv.FormatInt(n, 10))}
}

// StringOf returns the string alternative.
func StringOf(s string) IntOrString { return IntOrString{isStr: true, str: s} }

// IsString reports whether the string alternative is held.
func (v IntOrString) IsString() bool { return v.isStr }

// Int returns the numeric alternative. The stored literal may carry an
// exponent or trailing zeros; the value is reduced to int64 here.
func (v IntOrString) Int() (int64, bool) {
	if v.isStr {
		return 0, false
	}
	if n, err := v.num.Int64(); err == nil {
		return n, true
	}
	f, err := v.num.Float64()
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// Str returns the string alternative.
func (v IntOrString) Str() (string, bool) {
	if !v.isStr {
		return "", false
	}
	return v.str, true
}

// encodeValue emits whichever alternative is held, preserving the numeric
// literal text captured at decode time.
func (v IntOrString) encodeValue() any {
	if v.isStr {
		return v.str
	}
	return v.num
}

// decodeIntOrString tries the numeric alternative first, then the string
// alternative; when neither fits the error reports the second alternative's
// failure.
func decodeIntOrString(path string, raw any) (IntOrString, Issues) {
	switch t := raw.(type) {
	case jsonval.Number:
		if integralNumber(t) {
			return IntOrString{num: t}, nil
		}
	case string:
		return StringOf(t), nil
	}
	return IntOrString{}, Issues{Issue{
		Path:    path,
		Code:    CodeMalformedFlexibleValue,
		Message: i18n.T(CodeMalformedFlexibleValue, nil),
		Hint:    "expected integer or string",
	}}
}

// integralNumber reports whether the literal denotes a whole number that
// fits in int64. Exponent forms such as 4.2e1 qualify.
func integralNumber(n jsonval.Number) bool {
	if _, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return true
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return false
	}
	return f == float64(int64(f))
}
