package gostix

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Sqooba/gostix/i18n"
)

// Identifier is the compound STIX identifier. Wire form is the concatenation
// "<type>--<uuid>", e.g. "indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f".
// Immutable once built.
type Identifier struct {
	Type string
	UUID string
}

// NewIdentifier mints an Identifier of the given object type with a random
// UUID.
func NewIdentifier(objType string) Identifier {
	return Identifier{Type: objType, UUID: uuid.NewString()}
}

// ParseIdentifier decodes the wire form. The string must split into exactly
// two non-empty segments on "--".
func ParseIdentifier(s string) (Identifier, error) {
	parts := strings.Split(s, "--")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Identifier{}, Issues{Issue{
			Path:    "/",
			Code:    CodeMalformedIdentifier,
			Message: i18n.T(CodeMalformedIdentifier, nil),
			Hint:    `expected "<type>--<uuid>"`,
			Params:  map[string]any{"value": s},
		}}
	}
	return Identifier{Type: parts[0], UUID: parts[1]}, nil
}

// MustParseIdentifier is ParseIdentifier for statically known identifiers;
// it panics on malformed input.
func MustParseIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the wire form.
func (id Identifier) String() string { return id.Type + "--" + id.UUID }

// IsZero reports whether the Identifier is the zero value.
func (id Identifier) IsZero() bool { return id.Type == "" && id.UUID == "" }
