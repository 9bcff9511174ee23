package class

import (
	"context"
	"errors"
	"testing"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/schedule"
)

type repoStub struct {
	classes   []Class
	created   *Class
	updated   *Class
	deleted   []string
	listErr   error
	writeErr  error
	idCounter int
}

var _ Repository = (*repoStub)(nil)

func (s *repoStub) CreateClass(_ context.Context, cls Class) (Class, error) {
	if s.writeErr != nil {
		return Class{}, s.writeErr
	}
	s.idCounter++
	cls.ID = "cls-stub"
	s.created = &cls
	s.classes = append(s.classes, cls)
	return cls, nil
}

func (s *repoStub) QueryAllClasses(_ context.Context) ([]Class, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.classes, nil
}

func (s *repoStub) GetClassByID(_ context.Context, id string) (Class, error) {
	for _, cls := range s.classes {
		if cls.ID == id {
			return cls, nil
		}
	}
	return Class{}, ErrNotFound
}

func (s *repoStub) FilterClasses(_ context.Context, _ QueryFilter) ([]Class, error) {
	return s.classes, nil
}

func (s *repoStub) UpdateClass(_ context.Context, cls Class) (Class, error) {
	if s.writeErr != nil {
		return Class{}, s.writeErr
	}
	s.updated = &cls
	return cls, nil
}

func (s *repoStub) DeleteClassesByID(_ context.Context, ids ...string) error {
	s.deleted = append(s.deleted, ids...)
	return nil
}

func validInput() NewClass {
	return NewClass{
		Grade:       "7",
		Section:     "A",
		Subject:     "Math",
		AdviserName: "Ms. Doe",
		SchoolYear:  "2025-2026",
		ClassroomID: "R1",
		Schedule: []schedule.SlotInput{
			{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math", Teacher: "Ms. Doe"},
		},
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists normalized schedule", func(t *testing.T) {
		repo := &repoStub{}
		events := core.NewEventBus()
		ch, cancel := events.Subscribe()
		defer cancel()

		svc := NewService(repo, events)
		cls, err := svc.Create(ctx, validInput())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if len(cls.Schedule) != 1 {
			t.Fatalf("schedule len = %d, want 1", len(cls.Schedule))
		}
		// slots are projected onto the canonical shape: no teacher carried over
		want := schedule.Slot{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math"}
		if cls.Schedule[0] != want {
			t.Errorf("slot = %+v, want %+v", cls.Schedule[0], want)
		}

		evt := <-ch
		if evt.Collection != Collection || evt.Action != core.EventAdd || evt.ID != cls.ID {
			t.Errorf("event = %+v", evt)
		}
	})

	t.Run("invalid schedule blocks persistence", func(t *testing.T) {
		repo := &repoStub{}
		svc := NewService(repo, nil)

		nc := validInput()
		nc.Schedule[0].End = "8:10 AM" // below minimum duration

		_, err := svc.Create(ctx, nc)
		var vErr *core.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("Create() error = %v, want *core.ValidationError", err)
		}
		if repo.created != nil {
			t.Error("invalid class was persisted")
		}
	})

	t.Run("unsupported grade blocks persistence", func(t *testing.T) {
		repo := &repoStub{}
		svc := NewService(repo, nil)

		nc := validInput()
		nc.Grade = "11"

		_, err := svc.Create(ctx, nc)
		var vErr *core.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("Create() error = %v, want *core.ValidationError", err)
		}
	})

	t.Run("classroom conflict blocks persistence", func(t *testing.T) {
		repo := &repoStub{classes: []Class{{
			ID:          "existing",
			Grade:       "8",
			Section:     "B",
			ClassroomID: "R1",
			Schedule:    schedule.Schedule{{Day: "Mon", Start: "8:30 AM", End: "9:30 AM", Subject: "Science"}},
		}}}
		svc := NewService(repo, nil)

		_, err := svc.Create(ctx, validInput())
		var conflict *schedule.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("Create() error = %v, want *schedule.ConflictError", err)
		}
		if repo.created != nil {
			t.Error("conflicting class was persisted")
		}
	})

	t.Run("repo list error propagates", func(t *testing.T) {
		repo := &repoStub{listErr: errors.New("boom")}
		svc := NewService(repo, nil)
		if _, err := svc.Create(ctx, validInput()); err == nil {
			t.Error("Create() error = nil")
		}
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	orig := Class{
		ID:          "cls-1",
		Grade:       "7",
		Section:     "A",
		ClassroomID: "R1",
		Schedule:    schedule.Schedule{{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Math"}},
	}

	t.Run("own schedule does not conflict with itself", func(t *testing.T) {
		repo := &repoStub{classes: []Class{orig}}
		svc := NewService(repo, nil)

		uc := UpdateClass{Section: "A2"}
		if err := uc.Validate(orig); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		got, err := svc.Update(ctx, orig, uc)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.Section != "A2" || got.Grade != "7" {
			t.Errorf("updated = %+v", got)
		}
		if len(got.Schedule) != 1 {
			t.Errorf("stored schedule not kept: %+v", got.Schedule)
		}
	})

	t.Run("moving into an occupied room conflicts", func(t *testing.T) {
		other := Class{
			ID:          "cls-2",
			Grade:       "8",
			Section:     "B",
			ClassroomID: "R2",
			Schedule:    schedule.Schedule{{Day: "Mon", Start: "8:00 AM", End: "9:00 AM", Subject: "Science"}},
		}
		repo := &repoStub{classes: []Class{orig, other}}
		svc := NewService(repo, nil)

		uc := UpdateClass{ClassroomID: "R2"}
		if err := uc.Validate(orig); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		_, err := svc.Update(ctx, orig, uc)
		var conflict *schedule.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("Update() error = %v, want *schedule.ConflictError", err)
		}
	})
}

func TestUpdateClassValidateFallbacks(t *testing.T) {
	orig := Class{
		ID:          "cls-1",
		Grade:       "9",
		Section:     "C",
		Subject:     "History",
		AdviserName: "Mr. Roe",
		SchoolYear:  "2025-2026",
		ClassroomID: "R3",
	}
	uc := UpdateClass{Grade: "10"}
	if err := uc.Validate(orig); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if uc.Grade != "10" {
		t.Errorf("Grade = %s", uc.Grade)
	}
	if uc.Section != "C" || uc.Subject != "History" || uc.AdviserName != "Mr. Roe" ||
		uc.SchoolYear != "2025-2026" || uc.ClassroomID != "R3" {
		t.Errorf("fallbacks not applied: %+v", uc)
	}
}
