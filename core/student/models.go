package student

import (
	"time"

	"github.com/trezcool/darasa/core"
)

// Student is one enrolled learner.
type Student struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Gender        string    `json:"gender"`
	Grade         string    `json:"grade"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	Address       string    `json:"address"`
	ClassID       string    `json:"class_id"`
	ClassroomID   string    `json:"classroom_id"`
	Period        string    `json:"period"` // shift the student attends: morning | afternoon
	ProfileImage  string    `json:"profile_image"` // URL; upload is an external collaborator
	CreatedAt     time.Time `json:"created_at"` // UTC
	UpdatedAt     time.Time `json:"updated_at"` // UTC
}

func (s Student) FullName() string {
	if s.FirstName == "" {
		return s.LastName
	}
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Gender        string `json:"gender" validate:"omitempty,oneof=male female"`
	Grade         string `json:"grade" validate:"required,schoolgrade"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	ClassID       string `json:"class_id"`
	ClassroomID   string `json:"classroom_id"`
	Period        string `json:"period" validate:"omitempty,shiftname"`
	ProfileImage  string `json:"profile_image" validate:"omitempty,url"`
}

func (ns *NewStudent) Validate() error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Gender = core.CleanString(ns.Gender, true /* lower */)
	ns.Grade = core.CleanString(ns.Grade)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.ContactNumber = core.CleanString(ns.ContactNumber)
	ns.Address = core.CleanString(ns.Address)
	ns.Period = core.CleanString(ns.Period, true /* lower */)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing
// Student. Empty fields keep the stored value.
type UpdateStudent struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Gender        string `json:"gender" validate:"omitempty,oneof=male female"`
	Grade         string `json:"grade" validate:"omitempty,schoolgrade"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	ClassID       string `json:"class_id"`
	ClassroomID   string `json:"classroom_id"`
	Period        string `json:"period" validate:"omitempty,shiftname"`
	ProfileImage  string `json:"profile_image" validate:"omitempty,url"`
}

func (us *UpdateStudent) Validate(orig Student) error {
	if v := core.CleanString(us.FirstName); v != "" {
		us.FirstName = v
	} else {
		us.FirstName = orig.FirstName
	}
	if v := core.CleanString(us.LastName); v != "" {
		us.LastName = v
	} else {
		us.LastName = orig.LastName
	}
	if v := core.CleanString(us.Gender, true); v != "" {
		us.Gender = v
	} else {
		us.Gender = orig.Gender
	}
	if v := core.CleanString(us.Grade); v != "" {
		us.Grade = v
	} else {
		us.Grade = orig.Grade
	}
	if v := core.CleanString(us.Email, true); v != "" {
		us.Email = v
	} else {
		us.Email = orig.Email
	}
	if v := core.CleanString(us.ContactNumber); v != "" {
		us.ContactNumber = v
	} else {
		us.ContactNumber = orig.ContactNumber
	}
	if v := core.CleanString(us.Address); v != "" {
		us.Address = v
	} else {
		us.Address = orig.Address
	}
	if us.ClassID == "" {
		us.ClassID = orig.ClassID
	}
	if us.ClassroomID == "" {
		us.ClassroomID = orig.ClassroomID
	}
	if v := core.CleanString(us.Period, true); v != "" {
		us.Period = v
	} else {
		us.Period = orig.Period
	}
	if us.ProfileImage == "" {
		us.ProfileImage = orig.ProfileImage
	}
	return core.Validate.Struct(us)
}

// QueryFilter applies AND operation on available fields.
type QueryFilter struct {
	Search      string `query:"search"` // matches first name, last name or email
	Grade       string `query:"grade"`
	Period      string `query:"period"`
	ClassID     string `query:"class_id"`
	ClassroomID string `query:"classroom_id"`
	Gender      string `query:"gender"`

	Orderings []core.DBOrdering
}

func (f *QueryFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Grade = core.CleanString(f.Grade)
	f.Period = core.CleanString(f.Period, true /* lower */)
	f.Gender = core.CleanString(f.Gender, true /* lower */)
}
