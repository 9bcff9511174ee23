package class

import (
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/schedule"
)

// Class is one grade section meeting in a classroom on a weekly schedule.
type Class struct {
	ID          string            `json:"id"`
	Grade       string            `json:"class_grade"`
	Section     string            `json:"class_section"`
	Subject     string            `json:"subject"`
	AdviserName string            `json:"adviser_name"`
	TeacherID   string            `json:"teacher_id"`
	SchoolYear  string            `json:"school_year"`
	ClassroomID string            `json:"classroom_id"`
	Schedule    schedule.Schedule `json:"schedule"`
	CreatedAt   time.Time         `json:"created_at"` // UTC
	UpdatedAt   time.Time         `json:"updated_at"` // UTC
}

// Shift resolves the shift the class meets in from its grade.
func (c Class) Shift() (schedule.Shift, bool) {
	return schedule.ShiftForGrade(c.Grade)
}

// ScheduleDisplay renders the stored schedule plus shift info, for tables and
// exports.
func (c Class) ScheduleDisplay() string {
	return schedule.FormatDisplay(c.Schedule, c.Grade)
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	Grade       string               `json:"class_grade" validate:"required"`
	Section     string               `json:"class_section" validate:"required"`
	Subject     string               `json:"subject"`
	AdviserName string               `json:"adviser_name"`
	TeacherID   string               `json:"teacher_id"`
	SchoolYear  string               `json:"school_year"`
	ClassroomID string               `json:"classroom_id" validate:"required"`
	Schedule    []schedule.SlotInput `json:"schedule" validate:"required,min=1"`
}

func (nc *NewClass) Validate() error {
	nc.Grade = core.CleanString(nc.Grade)
	nc.Section = core.CleanString(nc.Section)
	nc.Subject = core.CleanString(nc.Subject)
	nc.AdviserName = core.CleanString(nc.AdviserName)
	nc.SchoolYear = core.CleanString(nc.SchoolYear)
	return core.Validate.Struct(nc)
}

// UpdateClass defines what information may be provided to modify an existing
// Class. Empty fields keep the stored value; a provided schedule replaces the
// stored one wholesale.
type UpdateClass struct {
	Grade       string               `json:"class_grade"`
	Section     string               `json:"class_section"`
	Subject     string               `json:"subject"`
	AdviserName string               `json:"adviser_name"`
	TeacherID   string               `json:"teacher_id"`
	SchoolYear  string               `json:"school_year"`
	ClassroomID string               `json:"classroom_id"`
	Schedule    []schedule.SlotInput `json:"schedule" validate:"omitempty,min=1"`
}

func (uc *UpdateClass) Validate(orig Class) error {
	if grade := core.CleanString(uc.Grade); grade != "" {
		uc.Grade = grade
	} else {
		uc.Grade = orig.Grade
	}
	if section := core.CleanString(uc.Section); section != "" {
		uc.Section = section
	} else {
		uc.Section = orig.Section
	}
	if subject := core.CleanString(uc.Subject); subject != "" {
		uc.Subject = subject
	} else {
		uc.Subject = orig.Subject
	}
	if adviser := core.CleanString(uc.AdviserName); adviser != "" {
		uc.AdviserName = adviser
	} else {
		uc.AdviserName = orig.AdviserName
	}
	if uc.TeacherID == "" {
		uc.TeacherID = orig.TeacherID
	}
	if year := core.CleanString(uc.SchoolYear); year != "" {
		uc.SchoolYear = year
	} else {
		uc.SchoolYear = orig.SchoolYear
	}
	if uc.ClassroomID == "" {
		uc.ClassroomID = orig.ClassroomID
	}
	return core.Validate.Struct(uc)
}

// QueryFilter applies AND operation on available fields.
type QueryFilter struct {
	Search      string `query:"search"` // matches section, subject or adviser
	Grade       string `query:"grade"`
	ClassroomID string `query:"classroom_id"`
	SchoolYear  string `query:"school_year"`
}

func (f *QueryFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Grade = core.CleanString(f.Grade)
	f.ClassroomID = core.CleanString(f.ClassroomID)
	f.SchoolYear = core.CleanString(f.SchoolYear)
}
