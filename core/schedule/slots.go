package schedule

// DefaultSlotDuration is the slot length used when a caller does not ask for
// a specific one, in minutes.
const DefaultSlotDuration = 60

// Window is one bookable time range within a shift.
type Window struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
}

// AvailableSlots generates consecutive windows of the given duration within
// the shift assigned to grade, for the schedule form's dropdowns. Returns nil
// when the grade has no shift.
func AvailableSlots(grade string, duration int) []Window {
	shift, ok := ShiftForGrade(grade)
	if !ok {
		return nil
	}
	if duration <= 0 {
		duration = DefaultSlotDuration
	}

	var windows []Window
	for cur := shift.StartMinutes; cur+duration <= shift.EndMinutes; cur += duration {
		windows = append(windows, Window{
			Start:        FromMinutes(cur),
			End:          FromMinutes(cur + duration),
			StartMinutes: cur,
			EndMinutes:   cur + duration,
		})
	}
	return windows
}
