package gostix_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	gostix "github.com/Sqooba/gostix"
)

// Golden fixtures pin the canonical indented serialization: each messy input
// in cases/ must canonicalize to exactly the bytes in golden/, and re-encoding
// the decoded bundle must be deterministic.
func TestGoldenBundles(t *testing.T) {
	casesDir := filepath.Join("testdata", "bundles", "cases")
	goldenDir := filepath.Join("testdata", "bundles", "golden")

	reg := gostix.NewRegistry()
	entries, err := os.ReadDir(goldenDir)
	if err != nil {
		t.Fatalf("read golden dir: %v", err)
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".golden") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".golden")
		t.Run(name, func(t *testing.T) {
			in, err := os.ReadFile(filepath.Join(casesDir, name+".json"))
			if err != nil {
				t.Fatalf("read case: %v", err)
			}
			wantBytes, err := os.ReadFile(filepath.Join(goldenDir, entry.Name()))
			if err != nil {
				t.Fatalf("read golden: %v", err)
			}
			want := strings.TrimSpace(string(wantBytes))

			b, err := reg.Bundle(in)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			out, err := gostix.MarshalIndent(b, "", "  ")
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if got := string(out); got != want {
				t.Errorf("canonical form mismatch\n got:\n%s\nwant:\n%s", got, want)
			}

			again, err := reg.Bundle(out)
			if err != nil {
				t.Fatalf("re-decode: %v", err)
			}
			out2, err := gostix.MarshalIndent(again, "", "  ")
			if err != nil {
				t.Fatalf("re-encode: %v", err)
			}
			if string(out2) != string(out) {
				t.Errorf("non-deterministic output\n first: %s\nsecond: %s", out, out2)
			}
		})
	}
}

// Every member of every case bundle must decode through the registry, either
// as its registered kind or through the custom-object fallback.
func TestGoldenBundleMembersDecode(t *testing.T) {
	casesDir := filepath.Join("testdata", "bundles", "cases")
	reg := gostix.NewRegistry()

	entries, err := os.ReadDir(casesDir)
	if err != nil {
		t.Fatalf("read cases dir: %v", err)
	}
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		t.Run(name, func(t *testing.T) {
			in, err := os.ReadFile(filepath.Join(casesDir, entry.Name()))
			if err != nil {
				t.Fatalf("read case: %v", err)
			}
			b, err := reg.Bundle(in)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(b.Objects) == 0 {
				t.Fatal("case has no members")
			}
			for i, raw := range b.Objects {
				if _, err := reg.ObjectValue(raw); err != nil {
					t.Errorf("objects[%d]: %v", i, err)
				}
			}
		})
	}
}
