package class

import (
	"context"
	"errors"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/schedule"
)

// Collection is the change-feed collection name for classes.
const Collection = "classes"

var ErrNotFound = errors.New("class not found")

type (
	Repository interface {
		CreateClass(ctx context.Context, cls Class) (Class, error)
		QueryAllClasses(ctx context.Context) ([]Class, error)
		GetClassByID(ctx context.Context, id string) (Class, error)
		// FilterClasses applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on one of
		// Class.Section, Class.Subject or Class.AdviserName.
		FilterClasses(ctx context.Context, filter QueryFilter) ([]Class, error)
		UpdateClass(ctx context.Context, cls Class) (Class, error)
		DeleteClassesByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo   Repository
		events core.EventBus
	}
)

func NewService(repo Repository, events core.EventBus) *Service {
	return &Service{repo: repo, events: events}
}

// Create normalizes and validates the proposed schedule, cross-references it
// against the current class list for classroom conflicts and only then
// persists. The conflict check is advisory: the read-check-write sequence is
// not serialized against concurrent submissions.
func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	sched := schedule.NormalizeSlots(nc.Schedule)
	if err := svc.checkSchedule(ctx, sched, nc.ClassroomID, nc.Grade, ""); err != nil {
		return Class{}, err
	}

	now := time.Now().UTC()
	cls, err := svc.repo.CreateClass(ctx, Class{
		Grade:       nc.Grade,
		Section:     nc.Section,
		Subject:     nc.Subject,
		AdviserName: nc.AdviserName,
		TeacherID:   nc.TeacherID,
		SchoolYear:  nc.SchoolYear,
		ClassroomID: nc.ClassroomID,
		Schedule:    sched,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return Class{}, err
	}
	svc.publish(core.EventAdd, cls)
	return cls, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Class, error) {
	return svc.repo.QueryAllClasses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Class, error) {
	return svc.repo.GetClassByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Class, error) {
	filter.Clean()
	return svc.repo.FilterClasses(ctx, filter)
}

// Update replaces a class's fields; UpdateClass.Validate must have been called
// with the stored class so empty fields carry the stored values. The effective
// schedule is re-validated and re-checked for conflicts, exempting the class's
// own stored schedule.
func (svc *Service) Update(ctx context.Context, orig Class, uc UpdateClass) (Class, error) {
	sched := orig.Schedule
	if uc.Schedule != nil {
		sched = schedule.NormalizeSlots(uc.Schedule)
	}
	if err := svc.checkSchedule(ctx, sched, uc.ClassroomID, uc.Grade, orig.ID); err != nil {
		return Class{}, err
	}

	cls, err := svc.repo.UpdateClass(ctx, Class{
		ID:          orig.ID,
		Grade:       uc.Grade,
		Section:     uc.Section,
		Subject:     uc.Subject,
		AdviserName: uc.AdviserName,
		TeacherID:   uc.TeacherID,
		SchoolYear:  uc.SchoolYear,
		ClassroomID: uc.ClassroomID,
		Schedule:    sched,
		CreatedAt:   orig.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return Class{}, err
	}
	svc.publish(core.EventModify, cls)
	return cls, nil
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	if err := svc.repo.DeleteClassesByID(ctx, ids...); err != nil {
		return err
	}
	for _, id := range ids {
		svc.publish(core.EventRemove, Class{ID: id})
	}
	return nil
}

// checkSchedule runs the scheduling engine over a proposed schedule: grade
// shift validation first, then classroom conflict detection against a fresh
// snapshot of all classes.
func (svc *Service) checkSchedule(ctx context.Context, sched schedule.Schedule, classroomID, grade, ignoreClassID string) error {
	if res := schedule.ValidateForGrade(sched, grade); !res.Valid {
		return res.Err()
	}

	existing, err := svc.repo.QueryAllClasses(ctx)
	if err != nil {
		return err
	}
	return schedule.CheckConflict(sched, Snapshots(existing), classroomID, grade, ignoreClassID)
}

func (svc *Service) publish(action string, cls Class) {
	if svc.events == nil {
		return
	}
	data := interface{}(cls)
	if action == core.EventRemove {
		data = nil
	}
	svc.events.Publish(core.Event{Collection: Collection, Action: action, ID: cls.ID, Data: data})
}

// Snapshots projects stored classes onto the conflict checker's view.
func Snapshots(classes []Class) []schedule.ClassSchedule {
	snaps := make([]schedule.ClassSchedule, 0, len(classes))
	for _, cls := range classes {
		snaps = append(snaps, schedule.ClassSchedule{
			ID:          cls.ID,
			Grade:       cls.Grade,
			Section:     cls.Section,
			ClassroomID: cls.ClassroomID,
			Slots:       cls.Schedule,
		})
	}
	return snaps
}
