package clock

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	at := time.Date(2024, 5, 1, 13, 5, 9, 0, time.UTC)

	cases := []struct {
		name        string
		showSeconds bool
		is24Hour    bool
		want        string
	}{
		{"24h with seconds", true, true, "13:05:09"},
		{"24h no seconds", false, true, "13:05"},
		{"12h with seconds", true, false, "01:05:09 PM"},
		{"12h no seconds", false, false, "01:05 PM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(at, tc.showSeconds, tc.is24Hour); got != tc.want {
				t.Fatalf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatMorning(t *testing.T) {
	at := time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)
	if got := Format(at, false, false); got != "07:30 AM" {
		t.Fatalf("Format = %q, want 07:30 AM", got)
	}
	if got := Format(at, true, true); got != "07:30:00" {
		t.Fatalf("Format = %q, want 07:30:00", got)
	}
}

func TestSourceReReadsPrefs(t *testing.T) {
	showSeconds, is24 := true, true
	src := NewSource(func() (bool, bool) { return showSeconds, is24 })

	at := time.Date(2024, 5, 1, 13, 5, 9, 0, time.UTC)
	if got := src.ClockText(at); got != "13:05:09" {
		t.Fatalf("clock = %q", got)
	}

	showSeconds = false
	if got := src.ClockText(at); got != "13:05" {
		t.Fatalf("clock after toggle = %q, want 13:05", got)
	}
}
