package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core/classroom"
)

type classroomRow struct {
	ID                   string    `db:"id"`
	BuildingName         string    `db:"building_name"`
	Floor                string    `db:"floor"`
	RoomNumber           string    `db:"room_number"`
	MorningMaxStudents   int       `db:"morning_max_students"`
	AfternoonMaxStudents int       `db:"afternoon_max_students"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

func (r classroomRow) toClassroom() classroom.Classroom {
	return classroom.Classroom{
		ID:           r.ID,
		BuildingName: r.BuildingName,
		Floor:        r.Floor,
		RoomNumber:   r.RoomNumber,
		Morning:      classroom.ShiftCapacity{MaxStudents: r.MorningMaxStudents},
		Afternoon:    classroom.ShiftCapacity{MaxStudents: r.AfternoonMaxStudents},
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// classroomOrderColumns are the columns clients may order classroom lists by.
var classroomOrderColumns = []string{
	"building_name", "floor", "room_number", "created_at",
}

type classroomRepository struct {
	db *sqlx.DB
}

var _ classroom.Repository = (*classroomRepository)(nil) // interface compliance check

func NewClassroomRepository(db *sqlx.DB) classroom.Repository {
	return &classroomRepository{db: db}
}

func (repo *classroomRepository) CreateClassroom(ctx context.Context, room classroom.Classroom) (classroom.Classroom, error) {
	room.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO classroom (id, building_name, floor, room_number, morning_max_students,
		                        afternoon_max_students, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		room.ID, room.BuildingName, room.Floor, room.RoomNumber,
		room.Morning.MaxStudents, room.Afternoon.MaxStudents, room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		return classroom.Classroom{}, err
	}
	return room, nil
}

func (repo *classroomRepository) QueryAllClassrooms(ctx context.Context) ([]classroom.Classroom, error) {
	var rows []classroomRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM classroom ORDER BY building_name, room_number`); err != nil {
		return nil, err
	}
	return toClassrooms(rows), nil
}

func (repo *classroomRepository) GetClassroomByID(ctx context.Context, id string) (classroom.Classroom, error) {
	var row classroomRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM classroom WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return classroom.Classroom{}, classroom.ErrNotFound
		}
		return classroom.Classroom{}, err
	}
	return row.toClassroom(), nil
}

func (repo *classroomRepository) FilterClassrooms(ctx context.Context, filter classroom.QueryFilter) ([]classroom.Classroom, error) {
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
		clauses = append(clauses, fmt.Sprintf("(building_name ILIKE %s OR room_number ILIKE %s)", p, p))
	}
	if filter.BuildingName != "" {
		clauses = append(clauses, "building_name = "+arg(filter.BuildingName))
	}
	if filter.Floor != "" {
		clauses = append(clauses, "floor = "+arg(filter.Floor))
	}

	query := `SELECT * FROM classroom`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += orderBy(filter.Orderings, classroomOrderColumns, "building_name, room_number")

	var rows []classroomRow
	if err := repo.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return toClassrooms(rows), nil
}

func (repo *classroomRepository) UpdateClassroom(ctx context.Context, room classroom.Classroom) (classroom.Classroom, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE classroom SET building_name = $2, floor = $3, room_number = $4, morning_max_students = $5,
		                      afternoon_max_students = $6, updated_at = $7
		 WHERE id = $1`,
		room.ID, room.BuildingName, room.Floor, room.RoomNumber,
		room.Morning.MaxStudents, room.Afternoon.MaxStudents, room.UpdatedAt,
	)
	if err != nil {
		return classroom.Classroom{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return classroom.Classroom{}, classroom.ErrNotFound
	}
	return room, nil
}

func (repo *classroomRepository) DeleteClassroomsByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM classroom WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	_, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...)
	return err
}

func toClassrooms(rows []classroomRow) []classroom.Classroom {
	rooms := make([]classroom.Classroom, 0, len(rows))
	for _, r := range rows {
		rooms = append(rooms, r.toClassroom())
	}
	return rooms
}
