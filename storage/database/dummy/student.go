package dummydb

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].LastName != students[j].LastName {
			return students[i].LastName < students[j].LastName
		}
		return students[i].FirstName < students[j].FirstName
	})
	return students
}

func (repo *studentRepository) CreateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	std.ID = uuid.New().String()
	repo.db.table[std.ID] = &std
	return std, nil
}

func (repo *studentRepository) QueryAllStudents(_ context.Context) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(_ context.Context, id string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if std, ok := repo.db.table[id]; ok {
		return *std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(_ context.Context, filter student.QueryFilter) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := repo.query()

	if filter.Search != "" {
		var filtered []student.Student
		for _, s := range students {
			if strings.Contains(strings.ToLower(s.FirstName), strings.ToLower(filter.Search)) ||
				strings.Contains(strings.ToLower(s.LastName), strings.ToLower(filter.Search)) ||
				strings.Contains(strings.ToLower(s.Email), strings.ToLower(filter.Search)) {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}
	match := func(keep func(s student.Student) bool) {
		if students == nil {
			return
		}
		var filtered []student.Student
		for _, s := range students {
			if keep(s) {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}
	if filter.Grade != "" {
		match(func(s student.Student) bool { return s.Grade == filter.Grade })
	}
	if filter.Period != "" {
		match(func(s student.Student) bool { return s.Period == filter.Period })
	}
	if filter.ClassID != "" {
		match(func(s student.Student) bool { return s.ClassID == filter.ClassID })
	}
	if filter.ClassroomID != "" {
		match(func(s student.Student) bool { return s.ClassroomID == filter.ClassroomID })
	}
	if filter.Gender != "" {
		match(func(s student.Student) bool { return s.Gender == filter.Gender })
	}

	return students, nil
}

func (repo *studentRepository) UpdateStudent(_ context.Context, std student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[std.ID]; !ok {
		return student.Student{}, student.ErrNotFound
	}
	repo.db.table[std.ID] = &std
	return std, nil
}

func (repo *studentRepository) DeleteStudentsByID(_ context.Context, ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
