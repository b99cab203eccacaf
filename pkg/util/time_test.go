package util

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
	}{
		{"rfc3339", `"2024-03-01T10:30:00Z"`},
		{"datetime", `"2024-03-01 10:30:00"`},
		{"unix seconds", `1709289000`},
		{"unix millis", `1709289000000`},
		{"quoted seconds", `"1709289000"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("ParseTimestamp(%s) error: %v", tt.raw, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseTimestamp(%s) = %v, want %v", tt.raw, got, want)
			}
		})
	}

	for _, bad := range []string{``, `null`, `"yesterday"`} {
		if _, err := ParseTimestamp(json.RawMessage(bad)); err == nil {
			t.Errorf("ParseTimestamp(%q) expected error", bad)
		}
	}
}
