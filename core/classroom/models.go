package classroom

import (
	"time"

	"github.com/trezcool/darasa/core"
)

type (
	// ShiftCapacity caps enrollment for one shift of a room.
	ShiftCapacity struct {
		MaxStudents int `json:"max_students"`
	}

	// Classroom is a physical room. Capacity is tracked per shift since the
	// same room hosts a morning and an afternoon cohort.
	Classroom struct {
		ID           string        `json:"id"`
		BuildingName string        `json:"building_name"`
		Floor        string        `json:"floor"`
		RoomNumber   string        `json:"room_number"`
		Morning      ShiftCapacity `json:"morning"`
		Afternoon    ShiftCapacity `json:"afternoon"`
		CreatedAt    time.Time     `json:"created_at"` // UTC
		UpdatedAt    time.Time     `json:"updated_at"` // UTC
	}
)

// Capacity returns the room's capacity for a shift name; zero for unknown shifts.
func (c Classroom) Capacity(shift string) int {
	switch shift {
	case "morning":
		return c.Morning.MaxStudents
	case "afternoon":
		return c.Afternoon.MaxStudents
	}
	return 0
}

// NewClassroom contains information needed to register a new Classroom.
type NewClassroom struct {
	BuildingName string        `json:"building_name" validate:"required"`
	Floor        string        `json:"floor"`
	RoomNumber   string        `json:"room_number" validate:"required"`
	Morning      ShiftCapacity `json:"morning" validate:"omitempty"`
	Afternoon    ShiftCapacity `json:"afternoon" validate:"omitempty"`
}

func (nc *NewClassroom) Validate() error {
	nc.BuildingName = core.CleanString(nc.BuildingName)
	nc.Floor = core.CleanString(nc.Floor)
	nc.RoomNumber = core.CleanString(nc.RoomNumber)
	return core.Validate.Struct(nc)
}

// UpdateClassroom defines what information may be provided to modify an
// existing Classroom. Empty fields keep the stored value.
type UpdateClassroom struct {
	BuildingName string        `json:"building_name"`
	Floor        string        `json:"floor"`
	RoomNumber   string        `json:"room_number"`
	Morning      ShiftCapacity `json:"morning"`
	Afternoon    ShiftCapacity `json:"afternoon"`
}

func (uc *UpdateClassroom) Validate(orig Classroom) error {
	if v := core.CleanString(uc.BuildingName); v != "" {
		uc.BuildingName = v
	} else {
		uc.BuildingName = orig.BuildingName
	}
	if v := core.CleanString(uc.Floor); v != "" {
		uc.Floor = v
	} else {
		uc.Floor = orig.Floor
	}
	if v := core.CleanString(uc.RoomNumber); v != "" {
		uc.RoomNumber = v
	} else {
		uc.RoomNumber = orig.RoomNumber
	}
	if uc.Morning.MaxStudents == 0 {
		uc.Morning = orig.Morning
	}
	if uc.Afternoon.MaxStudents == 0 {
		uc.Afternoon = orig.Afternoon
	}
	return core.Validate.Struct(uc)
}

// QueryFilter applies AND operation on available fields.
type QueryFilter struct {
	Search       string `query:"search"` // matches building name or room number
	BuildingName string `query:"building_name"`
	Floor        string `query:"floor"`

	Orderings []core.DBOrdering
}

func (f *QueryFilter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.BuildingName = core.CleanString(f.BuildingName)
	f.Floor = core.CleanString(f.Floor)
}
