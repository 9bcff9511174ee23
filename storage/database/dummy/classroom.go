package dummydb

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/classroom"
)

type classroomRepository struct {
	db *classroomTable
}

var _ classroom.Repository = (*classroomRepository)(nil) // interface compliance check

func NewClassroomRepository(db *DB) classroom.Repository {
	return &classroomRepository{db: db.classroom}
}

func (repo *classroomRepository) query() []classroom.Classroom {
	rooms := make([]classroom.Classroom, 0, len(repo.db.table))
	for _, r := range repo.db.table {
		rooms = append(rooms, *r)
	}
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].BuildingName != rooms[j].BuildingName {
			return rooms[i].BuildingName < rooms[j].BuildingName
		}
		return rooms[i].RoomNumber < rooms[j].RoomNumber
	})
	return rooms
}

func (repo *classroomRepository) CreateClassroom(_ context.Context, room classroom.Classroom) (classroom.Classroom, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	room.ID = uuid.New().String()
	repo.db.table[room.ID] = &room
	return room, nil
}

func (repo *classroomRepository) QueryAllClassrooms(_ context.Context) ([]classroom.Classroom, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *classroomRepository) GetClassroomByID(_ context.Context, id string) (classroom.Classroom, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if room, ok := repo.db.table[id]; ok {
		return *room, nil
	}
	return classroom.Classroom{}, classroom.ErrNotFound
}

func (repo *classroomRepository) FilterClassrooms(_ context.Context, filter classroom.QueryFilter) ([]classroom.Classroom, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	rooms := repo.query()

	if filter.Search != "" {
		var filtered []classroom.Classroom
		for _, r := range rooms {
			if strings.Contains(strings.ToLower(r.BuildingName), strings.ToLower(filter.Search)) ||
				strings.Contains(strings.ToLower(r.RoomNumber), strings.ToLower(filter.Search)) {
				filtered = append(filtered, r)
			}
		}
		rooms = filtered
	}
	if rooms != nil && filter.BuildingName != "" {
		var filtered []classroom.Classroom
		for _, r := range rooms {
			if r.BuildingName == filter.BuildingName {
				filtered = append(filtered, r)
			}
		}
		rooms = filtered
	}
	if rooms != nil && filter.Floor != "" {
		var filtered []classroom.Classroom
		for _, r := range rooms {
			if r.Floor == filter.Floor {
				filtered = append(filtered, r)
			}
		}
		rooms = filtered
	}

	return rooms, nil
}

func (repo *classroomRepository) UpdateClassroom(_ context.Context, room classroom.Classroom) (classroom.Classroom, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[room.ID]; !ok {
		return classroom.Classroom{}, classroom.ErrNotFound
	}
	repo.db.table[room.ID] = &room
	return room, nil
}

func (repo *classroomRepository) DeleteClassroomsByID(_ context.Context, ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
