package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// GradeRepository handles database operations for grades
type GradeRepository interface {
	GetAll(ctx context.Context) ([]*models.Grade, error)
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) (int64, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error

	// ValuesByStudent returns every grade value reachable through the
	// student's enrollments, regardless of enrollment status.
	ValuesByStudent(ctx context.Context, studentID int64) ([]float64, error)
}

type gradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) GradeRepository {
	return &gradeRepository{
		db: db,
	}
}

func scanGrade(row pgx.Row) (*models.Grade, error) {
	var grade models.Grade
	err := row.Scan(
		&grade.ID,
		&grade.EnrollmentID,
		&grade.Value,
		&grade.Type,
		&grade.Date,
		&grade.Description,
		&grade.StudentID,
		&grade.CourseID,
		&grade.StudentName,
		&grade.CourseCode,
		&grade.CourseName,
	)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

const listGradesQuery = `
	SELECT g.grade_id, g.enrollment_id, g.grade_value, g.grade_type,
	       g.grade_date::text, g.description,
	       e.student_id, e.course_id,
	       s.first_name || ' ' || s.last_name AS student_name,
	       c.course_code, c.course_name
	FROM grades g
	JOIN enrollments e ON g.enrollment_id = e.enrollment_id
	LEFT JOIN students s ON e.student_id = s.student_id
	LEFT JOIN courses c ON e.course_id = c.course_id
	ORDER BY g.grade_date DESC
`

// GetAll retrieves all grades with student and course details pulled
// through the enrollment, newest grade date first
func (r *gradeRepository) GetAll(ctx context.Context) ([]*models.Grade, error) {
	rows, err := r.db.Query(ctx, listGradesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// GetByID retrieves a grade by ID with student and course details
func (r *gradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := `
		SELECT g.grade_id, g.enrollment_id, g.grade_value, g.grade_type,
		       g.grade_date::text, g.description,
		       e.student_id, e.course_id,
		       s.first_name || ' ' || s.last_name AS student_name,
		       c.course_code, c.course_name
		FROM grades g
		JOIN enrollments e ON g.enrollment_id = e.enrollment_id
		LEFT JOIN students s ON e.student_id = s.student_id
		LEFT JOIN courses c ON e.course_id = c.course_id
		WHERE g.grade_id = $1
	`

	grade, err := scanGrade(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, err
	}

	return grade, nil
}

// Create inserts a new grade and returns the generated ID
func (r *gradeRepository) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	query := `
		INSERT INTO grades (enrollment_id, grade_value, grade_type, grade_date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING grade_id
	`

	err := r.db.QueryRow(ctx, query,
		grade.EnrollmentID,
		grade.Value,
		grade.Type,
		grade.Date,
		grade.Description,
	).Scan(&grade.ID)
	if err != nil {
		return 0, err
	}

	return grade.ID, nil
}

// Update replaces all mutable fields of an existing grade
func (r *gradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET enrollment_id = $1, grade_value = $2, grade_type = $3, grade_date = $4, description = $5
		WHERE grade_id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		grade.EnrollmentID,
		grade.Value,
		grade.Type,
		grade.Date,
		grade.Description,
		grade.ID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete removes a grade by ID
func (r *gradeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM grades WHERE grade_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// ValuesByStudent returns all grade values for a student across every
// enrollment
func (r *gradeRepository) ValuesByStudent(ctx context.Context, studentID int64) ([]float64, error) {
	query := `
		SELECT g.grade_value
		FROM grades g
		JOIN enrollments e ON g.enrollment_id = e.enrollment_id
		WHERE e.student_id = $1
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []float64
	for rows.Next() {
		var value float64
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}
