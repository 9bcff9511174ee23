package dummydb

import (
	"sync"

	"github.com/trezcool/darasa/core/class"
	"github.com/trezcool/darasa/core/classroom"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
)

type (
	DB struct {
		user      *userTable
		student   *studentTable
		class     *classTable
		classroom *classroomTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*student.Student
	}

	classTable struct {
		sync.RWMutex
		table map[string]*class.Class
	}

	classroomTable struct {
		sync.RWMutex
		table map[string]*classroom.Classroom
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:      &userTable{table: make(map[string]*user.User)},
		student:   &studentTable{table: make(map[string]*student.Student)},
		class:     &classTable{table: make(map[string]*class.Class)},
		classroom: &classroomTable{table: make(map[string]*classroom.Classroom)},
	}
	return db, nil
}
