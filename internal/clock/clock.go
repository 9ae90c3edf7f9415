// Package clock formats the header clock from the display preferences.
package clock

import "time"

// Format renders t according to the two display preferences:
// 15:04:05 / 15:04 in 24-hour mode, 03:04:05 PM / 03:04 PM otherwise.
func Format(t time.Time, showSeconds, is24Hour bool) string {
	var layout string
	switch {
	case is24Hour && showSeconds:
		layout = "15:04:05"
	case is24Hour:
		layout = "15:04"
	case showSeconds:
		layout = "03:04:05 PM"
	default:
		layout = "03:04 PM"
	}
	return t.Format(layout)
}

// Source adapts a preference store into the header clock. Preferences are
// re-read on every call so a toggle shows up on the next render.
type Source struct {
	prefs func() (showSeconds, is24Hour bool)
}

func NewSource(prefs func() (showSeconds, is24Hour bool)) *Source {
	return &Source{prefs: prefs}
}

func (s *Source) ClockText(now time.Time) string {
	showSeconds, is24Hour := s.prefs()
	return Format(now, showSeconds, is24Hour)
}
