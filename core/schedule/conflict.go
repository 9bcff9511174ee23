package schedule

import "fmt"

// TimesOverlap reports whether two clock-time ranges intersect, treating them
// as half-open intervals: ranges that only touch at a boundary do not overlap.
// Unparsable times never report a conflict.
func TimesOverlap(startA, endA, startB, endB string) bool {
	aStart, ok := ToMinutes(startA)
	if !ok {
		return false
	}
	aEnd, ok := ToMinutes(endA)
	if !ok {
		return false
	}
	bStart, ok := ToMinutes(startB)
	if !ok {
		return false
	}
	bEnd, ok := ToMinutes(endB)
	if !ok {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// ClassSchedule is the slice of an existing class the conflict checker needs:
// where it meets, which shift its grade puts it in, and how to name it in a
// conflict message.
type ClassSchedule struct {
	ID          string
	Grade       string
	Section     string
	ClassroomID string
	Slots       Schedule
}

// ConflictError reports the first overlap found between a proposed schedule
// and an existing class occupying the same classroom and shift.
type ConflictError struct {
	Day     string
	Start   string // existing class's range
	End     string
	Grade   string
	Section string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Schedule conflict: Classroom is already taken on %s from %s to %s by Grade %s Section %s.",
		e.Day, e.Start, e.End, e.Grade, e.Section)
}

// CheckConflict cross-references a proposed schedule against a snapshot of
// existing classes and returns a *ConflictError for the first overlap found in
// the given classroom and shift, or an *UnsupportedGradeError when grade has
// no shift. ignoreClassID exempts the class being edited from conflicting with
// its own stored schedule. A nil return means conflict-free at snapshot time.
//
// This is advisory validation only: nothing serializes the read-check-write
// sequence, so two concurrent submissions can both pass. Strict correctness
// would need a transaction at the storage layer.
func CheckConflict(newSched Schedule, existing []ClassSchedule, classroomID, grade, ignoreClassID string) error {
	shift, ok := ShiftForGrade(grade)
	if !ok {
		return &UnsupportedGradeError{Grade: grade}
	}

	for _, cls := range existing {
		if cls.ClassroomID != classroomID {
			continue
		}
		if ignoreClassID != "" && cls.ID == ignoreClassID {
			continue
		}

		// classes in different shifts use the room at different times of day
		existingShift, ok := ShiftForGrade(cls.Grade)
		if !ok || existingShift.Name != shift.Name {
			continue
		}

		for _, slot := range newSched {
			for _, other := range cls.Slots {
				if slot.Day != other.Day {
					continue
				}
				if TimesOverlap(slot.Start, slot.End, other.Start, other.End) {
					return &ConflictError{
						Day:     slot.Day,
						Start:   other.Start,
						End:     other.End,
						Grade:   cls.Grade,
						Section: cls.Section,
					}
				}
			}
		}
	}
	return nil
}
