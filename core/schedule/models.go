package schedule

import "encoding/json"

// Weekdays are the schedulable days; the school has no weekend classes.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// Slot is one weekly recurring meeting within a class schedule.
type Slot struct {
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Subject string `json:"subject"`
}

// Schedule is the full weekly schedule of a class. Order carries no meaning
// beyond iteration order; a class is replaced wholesale on every edit.
type Schedule []Slot

// SlotInput is the slot shape accepted from clients and legacy records.
// Extra fields (notably teacher) are dropped on normalization.
type SlotInput struct {
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
}

// NormalizeSlots projects raw slot input onto the canonical Slot shape.
func NormalizeSlots(slots []SlotInput) Schedule {
	sched := make(Schedule, 0, len(slots))
	for _, s := range slots {
		sched = append(sched, Slot{
			Day:     s.Day,
			Start:   s.Start,
			End:     s.End,
			Subject: s.Subject,
		})
	}
	return sched
}

// Normalize coerces raw stored schedule data into canonical form. Anything
// that is not a JSON array (legacy string records, null, garbage) degrades to
// an empty schedule; this function never fails.
func Normalize(raw json.RawMessage) Schedule {
	if len(raw) == 0 {
		return Schedule{}
	}
	var slots []SlotInput
	if err := json.Unmarshal(raw, &slots); err != nil {
		return Schedule{}
	}
	return NormalizeSlots(slots)
}
