package gostix

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeParseError reports that the substrate could not produce a JSON
	// value tree from the input at all.
	CodeParseError = "parse_error"
	// CodeInvalidType reports a non-object where an object was required.
	CodeInvalidType = "invalid_type"
	// CodeMissingRequiredField reports an absent field the schema requires.
	CodeMissingRequiredField = "missing_required_field"
	// CodeFieldTypeMismatch reports a present field whose JSON shape is
	// incompatible with the declared one.
	CodeFieldTypeMismatch = "field_type_mismatch"
	// CodeUnknownDiscriminator reports a discriminator value with no entry
	// in the family's dispatch table.
	CodeUnknownDiscriminator = "unknown_discriminator"
	// CodeMalformedIdentifier reports an identifier string that does not
	// split into exactly two non-empty segments on "--".
	CodeMalformedIdentifier = "malformed_identifier"
	// CodeMalformedFlexibleValue reports a two-shape field where neither
	// alternative decoded.
	CodeMalformedFlexibleValue = "malformed_flexible_value"
)

// Issue represents a single decoding failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /objects/2/valid_from).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected shape, offending discriminator, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"string",
	// "discriminator":"foo"}) for i18n and observability.
	Params map[string]any
}

// Issues is a collection of decoding errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_required_field at /valid_from
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether any issue in err carries the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// rebase prefixes every issue path with base so that errors reported by a
// nested decoder point at the enclosing field.
func rebase(iss Issues, base string) Issues {
	if len(iss) == 0 {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}
