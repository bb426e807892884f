package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) (int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

type courseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) CourseRepository {
	return &courseRepository{
		db: db,
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.DepartmentID,
		&course.InstructorID,
		&course.Credits,
		&course.Semester,
		&course.Year,
		&course.RoomNumber,
		&course.Schedule,
		&course.DepartmentName,
		&course.InstructorName,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

const listCoursesQuery = `
	SELECT c.course_id, c.course_code, c.course_name, c.department_id,
	       c.instructor_id, c.credits, c.semester, c.year, c.room_number, c.schedule,
	       d.department_name,
	       i.first_name || ' ' || i.last_name AS instructor_name
	FROM courses c
	LEFT JOIN departments d ON c.department_id = d.department_id
	LEFT JOIN instructors i ON c.instructor_id = i.instructor_id
	ORDER BY c.course_code
`

// GetAll retrieves all courses with department and instructor names,
// ordered by course code. instructor_name is NULL when unassigned.
func (r *courseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, listCoursesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID with department and instructor names
func (r *courseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.course_id, c.course_code, c.course_name, c.department_id,
		       c.instructor_id, c.credits, c.semester, c.year, c.room_number, c.schedule,
		       d.department_name,
		       i.first_name || ' ' || i.last_name AS instructor_name
		FROM courses c
		LEFT JOIN departments d ON c.department_id = d.department_id
		LEFT JOIN instructors i ON c.instructor_id = i.instructor_id
		WHERE c.course_id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}

	return course, nil
}

// Create inserts a new course and returns the generated ID
func (r *courseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	query := `
		INSERT INTO courses (course_code, course_name, department_id, instructor_id, credits, semester, year, room_number, schedule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING course_id
	`

	err := r.db.QueryRow(ctx, query,
		course.Code,
		course.Name,
		course.DepartmentID,
		course.InstructorID,
		course.Credits,
		course.Semester,
		course.Year,
		course.RoomNumber,
		course.Schedule,
	).Scan(&course.ID)
	if err != nil {
		return 0, err
	}

	return course.ID, nil
}

// Update replaces all mutable fields of an existing course
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET course_code = $1, course_name = $2, department_id = $3, instructor_id = $4,
		    credits = $5, semester = $6, year = $7, room_number = $8, schedule = $9
		WHERE course_id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code,
		course.Name,
		course.DepartmentID,
		course.InstructorID,
		course.Credits,
		course.Semester,
		course.Year,
		course.RoomNumber,
		course.Schedule,
		course.ID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by ID
func (r *courseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM courses WHERE course_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
