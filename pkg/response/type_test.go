package response

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateTimeJSON(t *testing.T) {
	want := time.Date(2026, 10, 14, 9, 30, 15, 0, time.Local)

	data, err := json.Marshal(DateTime(want))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2026-10-14 09:30:15"` {
		t.Errorf("Marshal() = %s", data)
	}

	var got DateTime
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !time.Time(got).Equal(want) {
		t.Errorf("Unmarshal() = %v, want %v", time.Time(got), want)
	}

	if err := json.Unmarshal([]byte(`"14/10/2026"`), &got); err == nil {
		t.Error("Unmarshal() of a foreign layout should fail")
	}
}
