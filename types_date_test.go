package inventory

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-06-01", NewDate(2025, time.June, 1), false},
		{"2025-6-1", NewDate(2025, time.June, 1), false}, // permissive read format
		{"01-06-2025", Date{}, true},
		{"not a date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) succeeded, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) returned an unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParseDate("2025-06-01")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-06-01"` {
		t.Errorf("marshaled date = %s, want \"2025-06-01\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round-trip changed the date: %v != %v", back, d)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParseDate("2025-06-01")
	b := MustParseDate("2025-06-02")
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is wrong")
	}
	if a.IsZero() {
		t.Error("parsed date reported as zero")
	}
	if !(Date{}).IsZero() {
		t.Error("zero date not reported as zero")
	}
}
