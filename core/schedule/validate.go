package schedule

import (
	"fmt"
	"strings"

	"github.com/trezcool/darasa/core"
)

// MinSlotDuration is the minimum class duration in minutes.
const MinSlotDuration = 30

// UnsupportedGradeError reports a grade with no assigned shift.
type UnsupportedGradeError struct {
	Grade string
}

func (e *UnsupportedGradeError) Error() string {
	return fmt.Sprintf("Invalid grade level: %s. Only grades 7-10 are supported.", e.Grade)
}

// Result is the outcome of validating a schedule: Valid iff Errors is empty.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Err returns the Result as a core.ValidationError carrying every violation,
// or nil when the schedule is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	flds := make([]core.FieldError, 0, len(r.Errors))
	for _, e := range r.Errors {
		flds = append(flds, core.FieldError{Field: "schedule", Error: e})
	}
	return core.NewValidationError(fmt.Errorf("invalid schedule"), flds...)
}

// ValidateForGrade checks every slot of a schedule against the shift assigned
// to grade: times must fall within the shift window (inclusive), start must
// precede end, slots must last at least MinSlotDuration minutes and carry a
// subject. All violations are collected; there is no short-circuiting, so the
// dashboard can show the complete list at once.
func ValidateForGrade(sched Schedule, grade string) Result {
	shift, ok := ShiftForGrade(grade)
	if !ok {
		return Result{Errors: []string{(&UnsupportedGradeError{Grade: grade}).Error()}}
	}

	var errs []string
	for _, slot := range sched {
		if slot.Start == "" || slot.End == "" {
			errs = append(errs, fmt.Sprintf("Incomplete time slot for %s", slot.Day))
			continue
		}

		if !InShift(slot.Start, grade) {
			errs = append(errs, fmt.Sprintf("%s start time (%s) is outside the %s (%s - %s)",
				slot.Day, slot.Start, shift.DisplayName, shift.Start, shift.End))
		}
		if !InShift(slot.End, grade) {
			errs = append(errs, fmt.Sprintf("%s end time (%s) is outside the %s (%s - %s)",
				slot.Day, slot.End, shift.DisplayName, shift.Start, shift.End))
		}

		start, _ := ToMinutes(slot.Start)
		end, _ := ToMinutes(slot.End)
		if start >= end {
			errs = append(errs, fmt.Sprintf("%s start time must be before end time", slot.Day))
		}
		if end-start < MinSlotDuration {
			errs = append(errs, fmt.Sprintf("%s class duration must be at least %d minutes", slot.Day, MinSlotDuration))
		}

		if strings.TrimSpace(slot.Subject) == "" {
			errs = append(errs, fmt.Sprintf("%s subject is required", slot.Day))
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
