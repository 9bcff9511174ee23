package schedule

import (
	"strings"
	"testing"
)

func TestValidateForGrade(t *testing.T) {
	tests := []struct {
		name     string
		sched    Schedule
		grade    string
		wantErrs []string // substrings expected in errors, in order
	}{
		{
			name:  "valid morning schedule",
			sched: Schedule{{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math"}},
			grade: "7",
		},
		{
			name:  "valid afternoon schedule",
			sched: Schedule{{Day: "Fri", Start: "1:00 PM", End: "2:30 PM", Subject: "Science"}},
			grade: "9",
		},
		{
			name:  "empty schedule is valid",
			sched: Schedule{},
			grade: "8",
		},
		{
			name:     "unsupported grade",
			sched:    Schedule{{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math"}},
			grade:    "11",
			wantErrs: []string{"Invalid grade level: 11"},
		},
		{
			name:     "incomplete slot skips remaining checks",
			sched:    Schedule{{Day: "Mon", Start: "8:00 AM", Subject: "Math"}},
			grade:    "7",
			wantErrs: []string{"Incomplete time slot for Mon"},
		},
		{
			name:     "out of shift start",
			sched:    Schedule{{Day: "Tue", Start: "1:00 PM", End: "2:00 PM", Subject: "Math"}},
			grade:    "7",
			wantErrs: []string{"Tue start time (1:00 PM) is outside the Morning Shift (6:30 AM - 12:00 PM)", "Tue end time (2:00 PM) is outside the Morning Shift"},
		},
		{
			name:     "inverted range",
			sched:    Schedule{{Day: "Wed", Start: "9:00 AM", End: "8:00 AM", Subject: "Math"}},
			grade:    "7",
			wantErrs: []string{"Wed start time must be before end time", "Wed class duration must be at least 30 minutes"},
		},
		{
			name:     "sub-minimum duration",
			sched:    Schedule{{Day: "Thu", Start: "8:00 AM", End: "8:15 AM", Subject: "Math"}},
			grade:    "8",
			wantErrs: []string{"Thu class duration must be at least 30 minutes"},
		},
		{
			name:     "blank subject",
			sched:    Schedule{{Day: "Fri", Start: "8:00 AM", End: "9:00 AM", Subject: "   "}},
			grade:    "8",
			wantErrs: []string{"Fri subject is required"},
		},
		{
			name: "violations collected across slots",
			sched: Schedule{
				{Day: "Mon", Start: "8:00 AM", End: "8:10 AM", Subject: "Math"},
				{Day: "Tue", Start: "8:00 AM", End: "9:00 AM"},
			},
			grade:    "7",
			wantErrs: []string{"Mon class duration must be at least 30 minutes", "Tue subject is required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateForGrade(tt.sched, tt.grade)
			if wantValid := len(tt.wantErrs) == 0; res.Valid != wantValid {
				t.Fatalf("ValidateForGrade() valid = %v, want %v (errors: %v)", res.Valid, wantValid, res.Errors)
			}
			if len(res.Errors) != len(tt.wantErrs) {
				t.Fatalf("ValidateForGrade() errors = %v, want %d entries", res.Errors, len(tt.wantErrs))
			}
			for i, want := range tt.wantErrs {
				if !strings.Contains(res.Errors[i], want) {
					t.Errorf("errors[%d] = %q, want substring %q", i, res.Errors[i], want)
				}
			}
		})
	}
}

func TestValidateForGradeFullWeek(t *testing.T) {
	sched := make(Schedule, 0, len(Weekdays))
	for _, day := range Weekdays {
		sched = append(sched, Slot{Day: day, Start: "8:00 AM", End: "9:00 AM", Subject: "Math"})
	}
	if res := ValidateForGrade(sched, "8"); !res.Valid {
		t.Errorf("full-week schedule rejected: %v", res.Errors)
	}
}

func TestValidateForGradeInclusiveBounds(t *testing.T) {
	// slots hugging the shift boundaries are valid
	res := ValidateForGrade(Schedule{
		{Day: "Mon", Start: "6:30 AM", End: "12:00 PM", Subject: "Homeroom"},
	}, "7")
	if !res.Valid {
		t.Errorf("boundary slot rejected: %v", res.Errors)
	}
}

func TestResultErr(t *testing.T) {
	if err := ValidateForGrade(Schedule{}, "7").Err(); err != nil {
		t.Errorf("Err() on valid result = %v, want nil", err)
	}

	res := ValidateForGrade(Schedule{{Day: "Mon"}}, "7")
	err := res.Err()
	if err == nil {
		t.Fatal("Err() on invalid result = nil")
	}
}
