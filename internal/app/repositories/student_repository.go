package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type studentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.DateOfBirth,
		&student.EnrollmentYear,
		&student.MajorDepartmentID,
		&student.MajorName,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

const listStudentsQuery = `
	SELECT s.student_id, s.first_name, s.last_name, s.email, s.phone,
	       s.date_of_birth::text, s.enrollment_year, s.major_department_id,
	       d.department_name AS major_name
	FROM students s
	LEFT JOIN departments d ON s.major_department_id = d.department_id
	ORDER BY s.last_name, s.first_name
`

// GetAll retrieves all students with their major name, ordered by last then
// first name. GPA is derived in the service layer.
func (r *studentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, listStudentsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID with their major name
func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT s.student_id, s.first_name, s.last_name, s.email, s.phone,
		       s.date_of_birth::text, s.enrollment_year, s.major_department_id,
		       d.department_name AS major_name
		FROM students s
		LEFT JOIN departments d ON s.major_department_id = d.department_id
		WHERE s.student_id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	return student, nil
}

// Create inserts a new student and returns the generated ID
func (r *studentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	query := `
		INSERT INTO students (first_name, last_name, email, phone, date_of_birth, enrollment_year, major_department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING student_id
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.DateOfBirth,
		student.EnrollmentYear,
		student.MajorDepartmentID,
	).Scan(&student.ID)
	if err != nil {
		return 0, err
	}

	return student.ID, nil
}

// Update replaces all mutable fields of an existing student
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
		    date_of_birth = $5, enrollment_year = $6, major_department_id = $7
		WHERE student_id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.DateOfBirth,
		student.EnrollmentYear,
		student.MajorDepartmentID,
		student.ID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID
func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE student_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
