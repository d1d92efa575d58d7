package gostix

import "github.com/Sqooba/gostix/internal/jsonval"

// CustomProperties carries the top-level keys of a decoded JSON object that
// the static schema did not recognize, verbatim (key to JSON value tree).
// By STIX convention such keys are prefixed "x_", but no filtering or
// renaming happens here. Invariant: a key never appears both as a static
// field and in this map; decode populates it only with leftovers and encode
// refuses to let an entry overwrite a static field.
type CustomProperties map[string]any

// IsEmpty reports whether there are no custom properties.
func (c CustomProperties) IsEmpty() bool { return len(c) == 0 }

// Value returns the raw JSON value for key.
func (c CustomProperties) Value(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// Clone deep-copies the carried values.
func (c CustomProperties) Clone() CustomProperties {
	if c == nil {
		return nil
	}
	return CustomProperties(jsonval.Clone(map[string]any(c)).(map[string]any))
}

// mergeCustom merges custom entries into an encoded object. Keys already
// present stay untouched, so a custom entry can never shadow a static field.
func mergeCustom(dst map[string]any, c CustomProperties) {
	for k, v := range c {
		if _, exists := dst[k]; exists {
			continue
		}
		dst[k] = v
	}
}
