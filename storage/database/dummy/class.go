package dummydb

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/class"
)

type classRepository struct {
	db *classTable
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db.class}
}

func (repo *classRepository) query() []class.Class {
	classes := make([]class.Class, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		classes = append(classes, *c)
	}
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Grade != classes[j].Grade {
			return classes[i].Grade < classes[j].Grade
		}
		return classes[i].Section < classes[j].Section
	})
	return classes
}

func (repo *classRepository) CreateClass(_ context.Context, cls class.Class) (class.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	cls.ID = uuid.New().String()
	repo.db.table[cls.ID] = &cls
	return cls, nil
}

func (repo *classRepository) QueryAllClasses(_ context.Context) ([]class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *classRepository) GetClassByID(_ context.Context, id string) (class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if cls, ok := repo.db.table[id]; ok {
		return *cls, nil
	}
	return class.Class{}, class.ErrNotFound
}

func (repo *classRepository) FilterClasses(_ context.Context, filter class.QueryFilter) ([]class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	classes := repo.query()

	if filter.Search != "" {
		var filtered []class.Class
		for _, c := range classes {
			if strings.Contains(strings.ToLower(c.Section), strings.ToLower(filter.Search)) ||
				strings.Contains(strings.ToLower(c.Subject), strings.ToLower(filter.Search)) ||
				strings.Contains(strings.ToLower(c.AdviserName), strings.ToLower(filter.Search)) {
				filtered = append(filtered, c)
			}
		}
		classes = filtered
	}
	match := func(keep func(c class.Class) bool) {
		if classes == nil {
			return
		}
		var filtered []class.Class
		for _, c := range classes {
			if keep(c) {
				filtered = append(filtered, c)
			}
		}
		classes = filtered
	}
	if filter.Grade != "" {
		match(func(c class.Class) bool { return c.Grade == filter.Grade })
	}
	if filter.ClassroomID != "" {
		match(func(c class.Class) bool { return c.ClassroomID == filter.ClassroomID })
	}
	if filter.SchoolYear != "" {
		match(func(c class.Class) bool { return c.SchoolYear == filter.SchoolYear })
	}

	return classes, nil
}

func (repo *classRepository) UpdateClass(_ context.Context, cls class.Class) (class.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[cls.ID]; !ok {
		return class.Class{}, class.ErrNotFound
	}
	repo.db.table[cls.ID] = &cls
	return cls, nil
}

func (repo *classRepository) DeleteClassesByID(_ context.Context, ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
