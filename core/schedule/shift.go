package schedule

import (
	"strconv"
	"strings"
)

// Shift names.
const (
	Morning   = "morning"
	Afternoon = "afternoon"
)

// ShiftNames lists the valid Shift.Name values.
var ShiftNames = []string{Morning, Afternoon}

// Shift is a named half-day window to which grades are statically assigned.
// The table is compiled-in policy; it is never persisted or mutated.
type Shift struct {
	Name         string `json:"name"`
	Start        string `json:"start"`
	End          string `json:"end"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
	DisplayName  string `json:"display_name"`
}

var (
	morningShift = Shift{
		Name:         Morning,
		Start:        "6:30 AM",
		End:          "12:00 PM",
		StartMinutes: 390,
		EndMinutes:   720,
		DisplayName:  "Morning Shift",
	}
	afternoonShift = Shift{
		Name:         Afternoon,
		Start:        "12:30 PM",
		End:          "6:00 PM",
		StartMinutes: 750,
		EndMinutes:   1080,
		DisplayName:  "Afternoon Shift",
	}
)

// ShiftForGrade maps a grade level to its shift:
// grades 7-8 -> morning, grades 9-10 -> afternoon.
// ok is false for any other grade value, numeric or not.
func ShiftForGrade(grade string) (Shift, bool) {
	num, err := strconv.Atoi(strings.TrimSpace(grade))
	if err != nil {
		return Shift{}, false
	}
	switch num {
	case 7, 8:
		return morningShift, true
	case 9, 10:
		return afternoonShift, true
	}
	return Shift{}, false
}

// Contains reports whether a minutes-since-midnight value falls within the
// shift window. Both boundaries are inclusive.
func (sh Shift) Contains(minutes int) bool {
	return minutes >= sh.StartMinutes && minutes <= sh.EndMinutes
}

// InShift reports whether a clock time is within the shift assigned to grade.
func InShift(t, grade string) bool {
	sh, ok := ShiftForGrade(grade)
	if !ok {
		return false
	}
	minutes, ok := ToMinutes(t)
	if !ok {
		return false
	}
	return sh.Contains(minutes)
}
