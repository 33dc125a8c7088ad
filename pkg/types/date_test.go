package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.January, 5)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-01-05"` {
		t.Fatalf("unexpected JSON %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip mismatch: %s vs %s", back, d)
	}
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("zero date should marshal to null, got %s", raw)
	}

	var back Date
	if err := json.Unmarshal([]byte("null"), &back); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero date, got %s", back)
	}
}

func TestDateScanFormats(t *testing.T) {
	want := NewDate(2024, time.February, 10)

	cases := []any{
		time.Date(2024, time.February, 10, 13, 45, 0, 0, time.UTC),
		"2024-02-10",
		"2024-02-10 00:00:00",
		[]byte("2024-02-10"),
	}
	for _, value := range cases {
		var d Date
		if err := d.Scan(value); err != nil {
			t.Fatalf("scan %v: %v", value, err)
		}
		if !d.Equal(want) {
			t.Fatalf("scan %v: got %s want %s", value, d, want)
		}
	}

	var d Date
	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("scan nil should yield zero date")
	}
}

func TestDateYearMonth(t *testing.T) {
	d := NewDate(2024, time.November, 30)
	if got := d.YearMonth(); got != "2024-11" {
		t.Fatalf("unexpected year-month %q", got)
	}
}

func TestDateOrdering(t *testing.T) {
	early := NewDate(2024, time.January, 1)
	late := NewDate(2024, time.December, 31)

	if !early.Before(late) || late.Before(early) {
		t.Fatal("Before comparison broken")
	}
	if !late.After(early) || early.After(late) {
		t.Fatal("After comparison broken")
	}
}
