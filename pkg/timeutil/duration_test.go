package timeutil

import (
	"testing"
	"time"
)

func TestParseIntervalDefault(t *testing.T) {
	dur, label, err := ParseInterval("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != time.Minute {
		t.Fatalf("expected %v, got %v", time.Minute, dur)
	}
	if label != "1m" {
		t.Fatalf("expected label 1m, got %s", label)
	}
}

func TestParseIntervalForms(t *testing.T) {
	tests := []struct {
		in    string
		want  time.Duration
		label string
	}{
		{in: "90s", want: 90 * time.Second, label: "1m30s"},
		{in: "1h30m", want: 90 * time.Minute, label: "1h30m"},
		{in: "2 mins", want: 2 * time.Minute, label: "2m"},
		{in: "1d2h", want: 26 * time.Hour, label: "1d2h"},
	}
	for _, tc := range tests {
		dur, label, err := ParseInterval(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if dur != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.in, tc.want, dur)
		}
		if label != tc.label {
			t.Fatalf("%s: expected label %s, got %s", tc.in, tc.label, label)
		}
	}
}

func TestParseIntervalInvalid(t *testing.T) {
	for _, in := range []string{"noop", "0s", "-5m"} {
		if _, _, err := ParseInterval(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
