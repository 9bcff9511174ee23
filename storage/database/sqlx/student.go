package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

type studentRow struct {
	ID            string      `db:"id"`
	FirstName     string      `db:"first_name"`
	LastName      string      `db:"last_name"`
	Gender        string      `db:"gender"`
	Grade         string      `db:"grade"`
	Email         string      `db:"email"`
	ContactNumber string      `db:"contact_number"`
	Address       string      `db:"address"`
	ClassID       null.String `db:"class_id"`
	ClassroomID   null.String `db:"classroom_id"`
	Period        string      `db:"period"`
	ProfileImage  string      `db:"profile_image"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

func (r studentRow) toStudent() student.Student {
	return student.Student{
		ID:            r.ID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Gender:        r.Gender,
		Grade:         r.Grade,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		ClassID:       r.ClassID.String,
		ClassroomID:   r.ClassroomID.String,
		Period:        r.Period,
		ProfileImage:  r.ProfileImage,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// studentOrderColumns are the columns clients may order student lists by.
var studentOrderColumns = []string{
	"first_name", "last_name", "gender", "grade", "email", "period", "created_at",
}

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	std.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO student (id, first_name, last_name, gender, grade, email, contact_number, address,
		                      class_id, classroom_id, period, profile_image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		std.ID, std.FirstName, std.LastName, std.Gender, std.Grade, std.Email, std.ContactNumber, std.Address,
		null.NewString(std.ClassID, std.ClassID != ""), null.NewString(std.ClassroomID, std.ClassroomID != ""),
		std.Period, std.ProfileImage, std.CreatedAt, std.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, err
	}
	return std, nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	var rows []studentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM student ORDER BY last_name, first_name`); err != nil {
		return nil, err
	}
	return toStudents(rows), nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	var row studentRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM student WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}
	return row.toStudent(), nil
}

func (repo *studentRepository) FilterStudents(ctx context.Context, filter student.QueryFilter) ([]student.Student, error) {
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
		clauses = append(clauses, fmt.Sprintf("(first_name ILIKE %s OR last_name ILIKE %s OR email ILIKE %s)", p, p, p))
	}
	if filter.Grade != "" {
		clauses = append(clauses, "grade = "+arg(filter.Grade))
	}
	if filter.Period != "" {
		clauses = append(clauses, "period = "+arg(filter.Period))
	}
	if filter.ClassID != "" {
		clauses = append(clauses, "class_id = "+arg(filter.ClassID))
	}
	if filter.ClassroomID != "" {
		clauses = append(clauses, "classroom_id = "+arg(filter.ClassroomID))
	}
	if filter.Gender != "" {
		clauses = append(clauses, "gender = "+arg(filter.Gender))
	}

	query := `SELECT * FROM student`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += orderBy(filter.Orderings, studentOrderColumns, "last_name, first_name")

	var rows []studentRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return toStudents(rows), nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE student SET first_name = $2, last_name = $3, gender = $4, grade = $5, email = $6,
		                    contact_number = $7, address = $8, class_id = $9, classroom_id = $10,
		                    period = $11, profile_image = $12, updated_at = $13
		 WHERE id = $1`,
		std.ID, std.FirstName, std.LastName, std.Gender, std.Grade, std.Email, std.ContactNumber, std.Address,
		null.NewString(std.ClassID, std.ClassID != ""), null.NewString(std.ClassroomID, std.ClassroomID != ""),
		std.Period, std.ProfileImage, std.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return std, nil
}

func (repo *studentRepository) DeleteStudentsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM student WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	_, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...)
	return err
}

func toStudents(rows []studentRow) []student.Student {
	students := make([]student.Student, 0, len(rows))
	for _, r := range rows {
		students = append(students, r.toStudent())
	}
	return students
}

// orderBy renders an ORDER BY clause from orderings, falling back to def.
// Field names come from clients; anything not in columns is dropped so no
// client-supplied expression ever reaches the query.
func orderBy(orderings []core.DBOrdering, columns []string, def string) string {
	var parts []string
	for _, o := range orderings {
		for _, col := range columns {
			if o.Field == col {
				parts = append(parts, o.String())
				break
			}
		}
	}
	if len(parts) == 0 {
		return " ORDER BY " + def
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}
