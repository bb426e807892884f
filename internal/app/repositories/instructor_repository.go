package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// InstructorRepository handles database operations for instructors
type InstructorRepository interface {
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	Create(ctx context.Context, instructor *models.Instructor) (int64, error)
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

type instructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) InstructorRepository {
	return &instructorRepository{
		db: db,
	}
}

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	var instructor models.Instructor
	err := row.Scan(
		&instructor.ID,
		&instructor.FirstName,
		&instructor.LastName,
		&instructor.Email,
		&instructor.Phone,
		&instructor.DepartmentID,
		&instructor.Salary,
		&instructor.HireDate,
		&instructor.DepartmentName,
	)
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

const listInstructorsQuery = `
	SELECT i.instructor_id, i.first_name, i.last_name, i.email, i.phone,
	       i.department_id, i.salary, i.hire_date::text, d.department_name
	FROM instructors i
	LEFT JOIN departments d ON i.department_id = d.department_id
	ORDER BY i.last_name, i.first_name
`

// GetAll retrieves all instructors with their department name, ordered by
// last then first name
func (r *instructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	rows, err := r.db.Query(ctx, listInstructorsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// GetByID retrieves an instructor by ID with their department name
func (r *instructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	query := `
		SELECT i.instructor_id, i.first_name, i.last_name, i.email, i.phone,
		       i.department_id, i.salary, i.hire_date::text, d.department_name
		FROM instructors i
		LEFT JOIN departments d ON i.department_id = d.department_id
		WHERE i.instructor_id = $1
	`

	instructor, err := scanInstructor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, err
	}

	return instructor, nil
}

// Create inserts a new instructor and returns the generated ID
func (r *instructorRepository) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	query := `
		INSERT INTO instructors (first_name, last_name, email, phone, department_id, salary, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING instructor_id
	`

	err := r.db.QueryRow(ctx, query,
		instructor.FirstName,
		instructor.LastName,
		instructor.Email,
		instructor.Phone,
		instructor.DepartmentID,
		instructor.Salary,
		instructor.HireDate,
	).Scan(&instructor.ID)
	if err != nil {
		return 0, err
	}

	return instructor.ID, nil
}

// Update replaces all mutable fields of an existing instructor
func (r *instructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	query := `
		UPDATE instructors
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
		    department_id = $5, salary = $6, hire_date = $7
		WHERE instructor_id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		instructor.FirstName,
		instructor.LastName,
		instructor.Email,
		instructor.Phone,
		instructor.DepartmentID,
		instructor.Salary,
		instructor.HireDate,
		instructor.ID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// Delete removes an instructor by ID
func (r *instructorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM instructors WHERE instructor_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}
