package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ToMinutes converts a 12-hour clock string (eg. "8:00 AM", "2:30 PM") to
// minutes since midnight. ok is false when t is empty.
//
// Hour/minute ranges are deliberately not checked: the dashboard has stored
// loosely-formatted times for years and a malformed string must degrade to a
// nonsensical minute count rather than fail the whole record.
func ToMinutes(t string) (minutes int, ok bool) {
	if t == "" {
		return 0, false
	}

	parts := strings.SplitN(t, ":", 2)
	hour, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	var min int
	if len(parts) > 1 {
		min, _ = strconv.Atoi(leadingDigits(strings.TrimSpace(parts[1])))
	}

	lower := strings.ToLower(t)
	if strings.Contains(lower, "pm") && hour != 12 {
		hour += 12
	}
	if strings.Contains(lower, "am") && hour == 12 {
		hour = 0
	}
	return hour*60 + min, true
}

// FromMinutes is the inverse of ToMinutes: it renders minutes since midnight
// as a zero-padded 12-hour clock string (eg. 480 -> "08:00 AM").
func FromMinutes(minutes int) string {
	hour := minutes / 60
	min := minutes % 60

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", displayHour, min, ampm)
}

// leadingDigits returns the leading run of ASCII digits in s, mimicking how
// the dashboard parsed the minute part of "30 PM".
func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}
