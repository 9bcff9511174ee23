package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core/class"
	"github.com/trezcool/darasa/core/schedule"
)

type classRow struct {
	ID          string          `db:"id"`
	Grade       string          `db:"grade"`
	Section     string          `db:"section"`
	Subject     string          `db:"subject"`
	AdviserName string          `db:"adviser_name"`
	TeacherID   null.String     `db:"teacher_id"`
	SchoolYear  string          `db:"school_year"`
	ClassroomID null.String     `db:"classroom_id"`
	Schedule    json.RawMessage `db:"schedule"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r classRow) toClass() class.Class {
	return class.Class{
		ID:          r.ID,
		Grade:       r.Grade,
		Section:     r.Section,
		Subject:     r.Subject,
		AdviserName: r.AdviserName,
		TeacherID:   r.TeacherID.String,
		SchoolYear:  r.SchoolYear,
		ClassroomID: r.ClassroomID.String,
		// stored schedules may predate the canonical shape; normalize on read
		Schedule:  schedule.Normalize(r.Schedule),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type classRepository struct {
	db *sqlx.DB
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *sqlx.DB) class.Repository {
	return &classRepository{db: db}
}

func (repo *classRepository) CreateClass(ctx context.Context, cls class.Class) (class.Class, error) {
	cls.ID = uuid.New().String()
	sched, err := json.Marshal(cls.Schedule)
	if err != nil {
		return class.Class{}, err
	}
	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO class (id, grade, section, subject, adviser_name, teacher_id, school_year,
		                    classroom_id, schedule, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		cls.ID, cls.Grade, cls.Section, cls.Subject, cls.AdviserName,
		null.NewString(cls.TeacherID, cls.TeacherID != ""), cls.SchoolYear,
		null.NewString(cls.ClassroomID, cls.ClassroomID != ""), sched, cls.CreatedAt, cls.UpdatedAt,
	)
	if err != nil {
		return class.Class{}, err
	}
	return cls, nil
}

func (repo *classRepository) QueryAllClasses(ctx context.Context) ([]class.Class, error) {
	var rows []classRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM class ORDER BY grade, section`); err != nil {
		return nil, err
	}
	return toClasses(rows), nil
}

func (repo *classRepository) GetClassByID(ctx context.Context, id string) (class.Class, error) {
	var row classRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM class WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return class.Class{}, class.ErrNotFound
		}
		return class.Class{}, err
	}
	return row.toClass(), nil
}

func (repo *classRepository) FilterClasses(ctx context.Context, filter class.QueryFilter) ([]class.Class, error) {
	var (
		clauses []string
		args    []interface{}
	)
	arg := func(val interface{}) string {
		args = append(args, val)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		clauses = append(clauses, fmt.Sprintf("(section ILIKE %s OR subject ILIKE %s OR adviser_name ILIKE %s)", p, p, p))
	}
	if filter.Grade != "" {
		clauses = append(clauses, "grade = "+arg(filter.Grade))
	}
	if filter.ClassroomID != "" {
		clauses = append(clauses, "classroom_id = "+arg(filter.ClassroomID))
	}
	if filter.SchoolYear != "" {
		clauses = append(clauses, "school_year = "+arg(filter.SchoolYear))
	}

	query := `SELECT * FROM class`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY grade, section"

	var rows []classRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return toClasses(rows), nil
}

func (repo *classRepository) UpdateClass(ctx context.Context, cls class.Class) (class.Class, error) {
	sched, err := json.Marshal(cls.Schedule)
	if err != nil {
		return class.Class{}, err
	}
	res, err := repo.db.ExecContext(ctx,
		`UPDATE class SET grade = $2, section = $3, subject = $4, adviser_name = $5, teacher_id = $6,
		                  school_year = $7, classroom_id = $8, schedule = $9, updated_at = $10
		 WHERE id = $1`,
		cls.ID, cls.Grade, cls.Section, cls.Subject, cls.AdviserName,
		null.NewString(cls.TeacherID, cls.TeacherID != ""), cls.SchoolYear,
		null.NewString(cls.ClassroomID, cls.ClassroomID != ""), sched, cls.UpdatedAt,
	)
	if err != nil {
		return class.Class{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return class.Class{}, class.ErrNotFound
	}
	return cls, nil
}

func (repo *classRepository) DeleteClassesByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM class WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	_, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...)
	return err
}

func toClasses(rows []classRow) []class.Class {
	classes := make([]class.Class, 0, len(rows))
	for _, r := range rows {
		classes = append(classes, r.toClass())
	}
	return classes
}
