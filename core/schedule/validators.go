package schedule

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

var (
	schoolGradeTag  = "schoolgrade"
	schoolGradeText = "only grades 7-10 are supported"

	shiftNameTag  = "shiftname"
	shiftNameText = "shift must be one of: morning, afternoon"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(schoolGradeTag, schoolGradeValidation)
	core.RegisterCustomTranslation(schoolGradeTag, schoolGradeText)

	_ = core.Validate.RegisterValidation(shiftNameTag, shiftNameValidation)
	core.RegisterCustomTranslation(shiftNameTag, shiftNameText)
}

// schoolGradeValidation checks that the grade maps to a shift.
func schoolGradeValidation(fl validator.FieldLevel) bool {
	_, ok := ShiftForGrade(fl.Field().String())
	return ok
}

// shiftNameValidation checks that the value is a known shift name.
func shiftNameValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, name := range ShiftNames {
		if val == name {
			return true
		}
	}
	return false
}
