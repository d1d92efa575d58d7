package gostix_test

import (
	"testing"
	"time"

	gostix "github.com/Sqooba/gostix"
)

func TestTimestampFrom_MillisecondUTC(t *testing.T) {
	ts := gostix.TimestampFrom(time.Date(2021, 3, 4, 5, 6, 7, 891234567, time.UTC))
	if got := ts.String(); got != "2021-03-04T05:06:07.891Z" {
		t.Fatalf("ts = %q, want 2021-03-04T05:06:07.891Z", got)
	}
}

func TestTimestampFrom_ConvertsToUTC(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	ts := gostix.TimestampFrom(time.Date(2021, 1, 1, 9, 0, 0, 0, jst))
	if got := ts.String(); got != "2021-01-01T00:00:00.000Z" {
		t.Fatalf("ts = %q, want 2021-01-01T00:00:00.000Z", got)
	}
}

func TestTimestamp_TimeAcceptsWirePrecisions(t *testing.T) {
	for _, in := range []string{
		"2016-05-12T08:17:27.000Z",
		"2016-05-12T08:17:27Z",
		"2016-05-12T08:17:27.123456Z",
		"2016-05-12T08:17:27+02:00",
	} {
		tm, err := gostix.Timestamp(in).Time()
		if err != nil {
			t.Fatalf("Time(%q): %v", in, err)
		}
		if tm.Year() != 2016 || tm.Month() != time.May {
			t.Fatalf("Time(%q) = %v", in, tm)
		}
	}
	if _, err := gostix.Timestamp("not a time").Time(); err == nil {
		t.Fatalf("expected error for unparseable timestamp")
	}
}

func TestTimestamp_LexicalOrdering(t *testing.T) {
	a := gostix.Timestamp("2021-01-01T00:00:00.000Z")
	b := gostix.Timestamp("2021-01-02T00:00:00.000Z")
	if !a.Before(b) {
		t.Fatalf("expected %s before %s", a, b)
	}
	if !b.After(a) {
		t.Fatalf("expected %s after %s", b, a)
	}
	if a.Before(a) || a.After(a) {
		t.Fatalf("ordering must be strict")
	}
}

func TestTimestamp_IsZero(t *testing.T) {
	var ts gostix.Timestamp
	if !ts.IsZero() {
		t.Fatalf("empty timestamp should report IsZero")
	}
	if gostix.Now().IsZero() {
		t.Fatalf("Now should not report IsZero")
	}
}
