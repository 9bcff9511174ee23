package student

import (
	"context"
	"errors"
	"time"

	"github.com/trezcool/darasa/core"
)

// Collection is the change-feed collection name for students.
const Collection = "students"

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(ctx context.Context, std Student) (Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		// FilterStudents applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of
		// Student.FirstName, Student.LastName or Student.Email.
		FilterStudents(ctx context.Context, filter QueryFilter) ([]Student, error)
		UpdateStudent(ctx context.Context, std Student) (Student, error)
		DeleteStudentsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo   Repository
		events core.EventBus
	}
)

func NewService(repo Repository, events core.EventBus) *Service {
	return &Service{repo: repo, events: events}
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	now := time.Now().UTC()
	std, err := svc.repo.CreateStudent(ctx, Student{
		FirstName:     ns.FirstName,
		LastName:      ns.LastName,
		Gender:        ns.Gender,
		Grade:         ns.Grade,
		Email:         ns.Email,
		ContactNumber: ns.ContactNumber,
		Address:       ns.Address,
		ClassID:       ns.ClassID,
		ClassroomID:   ns.ClassroomID,
		Period:        ns.Period,
		ProfileImage:  ns.ProfileImage,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return Student{}, err
	}
	svc.publish(core.EventAdd, std)
	return std, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Student, error) {
	filter.Clean()
	return svc.repo.FilterStudents(ctx, filter)
}

func (svc *Service) Update(ctx context.Context, orig Student, us UpdateStudent) (Student, error) {
	std, err := svc.repo.UpdateStudent(ctx, Student{
		ID:            orig.ID,
		FirstName:     us.FirstName,
		LastName:      us.LastName,
		Gender:        us.Gender,
		Grade:         us.Grade,
		Email:         us.Email,
		ContactNumber: us.ContactNumber,
		Address:       us.Address,
		ClassID:       us.ClassID,
		ClassroomID:   us.ClassroomID,
		Period:        us.Period,
		ProfileImage:  us.ProfileImage,
		CreatedAt:     orig.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return Student{}, err
	}
	svc.publish(core.EventModify, std)
	return std, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	if err := svc.repo.DeleteStudentsByID(ctx, ids...); err != nil {
		return err
	}
	for _, id := range ids {
		svc.publish(core.EventRemove, Student{ID: id})
	}
	return nil
}

func (svc *Service) publish(action string, std Student) {
	if svc.events == nil {
		return
	}
	data := interface{}(std)
	if action == core.EventRemove {
		data = nil
	}
	svc.events.Publish(core.Event{Collection: Collection, Action: action, ID: std.ID, Data: data})
}
