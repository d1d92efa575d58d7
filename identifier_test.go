package gostix_test

import (
	"testing"

	"github.com/google/uuid"

	gostix "github.com/Sqooba/gostix"
)

func TestParseIdentifier_SplitsTypeAndUUID(t *testing.T) {
	id, err := gostix.ParseIdentifier("indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Type != "indicator" {
		t.Fatalf("type = %q, want indicator", id.Type)
	}
	if id.UUID != "8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f" {
		t.Fatalf("uuid = %q", id.UUID)
	}
	if got := id.String(); got != "indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f" {
		t.Fatalf("round trip = %q", got)
	}
}

func TestParseIdentifier_Malformed(t *testing.T) {
	cases := []string{
		"bad-id-no-separator",
		"",
		"--",
		"indicator--",
		"--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f",
		"report--one--two",
	}
	for _, in := range cases {
		_, err := gostix.ParseIdentifier(in)
		if !gostix.HasCode(err, gostix.CodeMalformedIdentifier) {
			t.Fatalf("ParseIdentifier(%q): expected malformed_identifier, got %v", in, err)
		}
	}
}

func TestNewIdentifier_GeneratesFreshUUID(t *testing.T) {
	id := gostix.NewIdentifier("indicator")
	if id.Type != "indicator" {
		t.Fatalf("type = %q", id.Type)
	}
	if _, err := uuid.Parse(id.UUID); err != nil {
		t.Fatalf("uuid part %q does not parse: %v", id.UUID, err)
	}
	if other := gostix.NewIdentifier("indicator"); other == id {
		t.Fatalf("expected fresh identifiers to differ")
	}
}

func TestMustParseIdentifier_PanicsOnMalformed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	gostix.MustParseIdentifier("bad-id-no-separator")
}

func TestIdentifier_IsZero(t *testing.T) {
	var id gostix.Identifier
	if !id.IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	if gostix.MustParseIdentifier("tool--c9c86e0f-47e9-4c4e-9bd6-6f5d58fbe9c2").IsZero() {
		t.Fatalf("parsed identifier should not report IsZero")
	}
}
