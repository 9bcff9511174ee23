package classroom

import (
	"context"
	"errors"
	"time"

	"github.com/trezcool/darasa/core"
)

// Collection is the change-feed collection name for classrooms.
const Collection = "classrooms"

var ErrNotFound = errors.New("classroom not found")

type (
	Repository interface {
		CreateClassroom(ctx context.Context, room Classroom) (Classroom, error)
		QueryAllClassrooms(ctx context.Context) ([]Classroom, error)
		GetClassroomByID(ctx context.Context, id string) (Classroom, error)
		// FilterClassrooms applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of
		// Classroom.BuildingName or Classroom.RoomNumber.
		FilterClassrooms(ctx context.Context, filter QueryFilter) ([]Classroom, error)
		UpdateClassroom(ctx context.Context, room Classroom) (Classroom, error)
		DeleteClassroomsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo   Repository
		events core.EventBus
	}
)

func NewService(repo Repository, events core.EventBus) *Service {
	return &Service{repo: repo, events: events}
}

func (svc *Service) Create(ctx context.Context, nc NewClassroom) (Classroom, error) {
	now := time.Now().UTC()
	room, err := svc.repo.CreateClassroom(ctx, Classroom{
		BuildingName: nc.BuildingName,
		Floor:        nc.Floor,
		RoomNumber:   nc.RoomNumber,
		Morning:      nc.Morning,
		Afternoon:    nc.Afternoon,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return Classroom{}, err
	}
	svc.publish(core.EventAdd, room)
	return room, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Classroom, error) {
	return svc.repo.QueryAllClassrooms(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Classroom, error) {
	return svc.repo.GetClassroomByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Classroom, error) {
	filter.Clean()
	return svc.repo.FilterClassrooms(ctx, filter)
}

func (svc *Service) Update(ctx context.Context, orig Classroom, uc UpdateClassroom) (Classroom, error) {
	room, err := svc.repo.UpdateClassroom(ctx, Classroom{
		ID:           orig.ID,
		BuildingName: uc.BuildingName,
		Floor:        uc.Floor,
		RoomNumber:   uc.RoomNumber,
		Morning:      uc.Morning,
		Afternoon:    uc.Afternoon,
		CreatedAt:    orig.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return Classroom{}, err
	}
	svc.publish(core.EventModify, room)
	return room, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	if err := svc.repo.DeleteClassroomsByID(ctx, ids...); err != nil {
		return err
	}
	for _, id := range ids {
		svc.publish(core.EventRemove, Classroom{ID: id})
	}
	return nil
}

func (svc *Service) publish(action string, room Classroom) {
	if svc.events == nil {
		return
	}
	data := interface{}(room)
	if action == core.EventRemove {
		data = nil
	}
	svc.events.Publish(core.Event{Collection: Collection, Action: action, ID: room.ID, Data: data})
}
