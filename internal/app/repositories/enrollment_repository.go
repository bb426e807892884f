package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) (int64, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

type enrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) EnrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := row.Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrollmentDate,
		&enrollment.Grade,
		&enrollment.Status,
		&enrollment.StudentName,
		&enrollment.CourseCode,
		&enrollment.CourseName,
	)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

const listEnrollmentsQuery = `
	SELECT e.enrollment_id, e.student_id, e.course_id, e.enrollment_date::text,
	       e.grade, e.status,
	       s.first_name || ' ' || s.last_name AS student_name,
	       c.course_code, c.course_name
	FROM enrollments e
	LEFT JOIN students s ON e.student_id = s.student_id
	LEFT JOIN courses c ON e.course_id = c.course_id
	ORDER BY e.enrollment_date DESC
`

// GetAll retrieves all enrollments with student and course details,
// newest enrollment date first
func (r *enrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, listEnrollmentsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByID retrieves an enrollment by ID with student and course details
func (r *enrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT e.enrollment_id, e.student_id, e.course_id, e.enrollment_date::text,
		       e.grade, e.status,
		       s.first_name || ' ' || s.last_name AS student_name,
		       c.course_code, c.course_name
		FROM enrollments e
		LEFT JOIN students s ON e.student_id = s.student_id
		LEFT JOIN courses c ON e.course_id = c.course_id
		WHERE e.enrollment_id = $1
	`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, err
	}

	return enrollment, nil
}

// Create inserts a new enrollment and returns the generated ID
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	query := `
		INSERT INTO enrollments (student_id, course_id, enrollment_date, grade, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING enrollment_id
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrollmentDate,
		enrollment.Grade,
		enrollment.Status,
	).Scan(&enrollment.ID)
	if err != nil {
		return 0, err
	}

	return enrollment.ID, nil
}

// Update replaces all mutable fields of an existing enrollment
func (r *enrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET student_id = $1, course_id = $2, enrollment_date = $3, grade = $4, status = $5
		WHERE enrollment_id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		enrollment.EnrollmentDate,
		enrollment.Grade,
		enrollment.Status,
		enrollment.ID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete removes an enrollment by ID
func (r *enrollmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM enrollments WHERE enrollment_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
