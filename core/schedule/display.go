package schedule

import (
	"fmt"
	"strings"
)

// FormatDisplay renders a schedule as a single human-readable summary,
// eg. "Mon 8:00 AM - 9:00 AM - Math, Tue 8:00 AM - 9:00 AM (Morning Shift)".
func FormatDisplay(sched Schedule, grade string) string {
	var shiftInfo string
	if shift, ok := ShiftForGrade(grade); ok {
		shiftInfo = " (" + shift.DisplayName + ")"
	}

	if len(sched) == 0 {
		return "No schedule set" + shiftInfo
	}

	formatted := make([]string, 0, len(sched))
	for _, slot := range sched {
		s := fmt.Sprintf("%s %s - %s", slot.Day, slot.Start, slot.End)
		if slot.Subject != "" {
			s += " - " + slot.Subject
		}
		formatted = append(formatted, s)
	}
	return strings.Join(formatted, ", ") + shiftInfo
}
