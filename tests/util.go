package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/darasa/core/class"
	"github.com/trezcool/darasa/core/classroom"
	"github.com/trezcool/darasa/core/schedule"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, email, pwd string,
	isActive bool,
	createdAt ...time.Time,
) user.User {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Name:      name,
		Email:     email,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateStudent(
	t *testing.T,
	repo student.Repository,
	firstName, lastName, grade, period string,
) student.Student {
	now := time.Now().UTC()
	std, err := repo.CreateStudent(context.Background(), student.Student{
		FirstName: firstName,
		LastName:  lastName,
		Grade:     grade,
		Period:    period,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

func CreateClassroom(
	t *testing.T,
	repo classroom.Repository,
	buildingName, roomNumber string,
) classroom.Classroom {
	now := time.Now().UTC()
	room, err := repo.CreateClassroom(context.Background(), classroom.Classroom{
		BuildingName: buildingName,
		RoomNumber:   roomNumber,
		Morning:      classroom.ShiftCapacity{MaxStudents: 40},
		Afternoon:    classroom.ShiftCapacity{MaxStudents: 40},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateClassroom() failed: %v", err)
	}
	return room
}

func CreateClass(
	t *testing.T,
	repo class.Repository,
	grade, section, classroomID string,
	sched schedule.Schedule,
) class.Class {
	now := time.Now().UTC()
	cls, err := repo.CreateClass(context.Background(), class.Class{
		Grade:       grade,
		Section:     section,
		ClassroomID: classroomID,
		Schedule:    sched,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	return cls
}
