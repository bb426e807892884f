package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// DepartmentHeadRepository handles database operations for department heads.
// Heads are addressed by department ID: the table's primary key, so there is
// at most one head per department.
type DepartmentHeadRepository interface {
	GetAll(ctx context.Context) ([]*models.DepartmentHead, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) (*models.DepartmentHead, error)
	Create(ctx context.Context, head *models.DepartmentHead) (int64, error)
	Update(ctx context.Context, head *models.DepartmentHead) error
	Delete(ctx context.Context, departmentID int64) error
}

type departmentHeadRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentHeadRepository creates a new department head repository
func NewDepartmentHeadRepository(db *pgxpool.Pool) DepartmentHeadRepository {
	return &departmentHeadRepository{
		db: db,
	}
}

func scanDepartmentHead(row pgx.Row) (*models.DepartmentHead, error) {
	var head models.DepartmentHead
	err := row.Scan(
		&head.DepartmentID,
		&head.InstructorID,
		&head.StartDate,
		&head.DepartmentName,
		&head.HeadName,
	)
	if err != nil {
		return nil, err
	}
	return &head, nil
}

const listDepartmentHeadsQuery = `
	SELECT dh.department_id, dh.instructor_id, dh.start_date::text,
	       d.department_name,
	       i.first_name || ' ' || i.last_name AS head_name
	FROM department_heads dh
	LEFT JOIN departments d ON dh.department_id = d.department_id
	LEFT JOIN instructors i ON dh.instructor_id = i.instructor_id
	ORDER BY d.department_name
`

// GetAll retrieves all department heads ordered by department name
func (r *departmentHeadRepository) GetAll(ctx context.Context) ([]*models.DepartmentHead, error) {
	rows, err := r.db.Query(ctx, listDepartmentHeadsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var heads []*models.DepartmentHead
	for rows.Next() {
		head, err := scanDepartmentHead(rows)
		if err != nil {
			return nil, err
		}
		heads = append(heads, head)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return heads, nil
}

// GetByDepartmentID retrieves the head of a department
func (r *departmentHeadRepository) GetByDepartmentID(ctx context.Context, departmentID int64) (*models.DepartmentHead, error) {
	query := `
		SELECT dh.department_id, dh.instructor_id, dh.start_date::text,
		       d.department_name,
		       i.first_name || ' ' || i.last_name AS head_name
		FROM department_heads dh
		LEFT JOIN departments d ON dh.department_id = d.department_id
		LEFT JOIN instructors i ON dh.instructor_id = i.instructor_id
		WHERE dh.department_id = $1
	`

	head, err := scanDepartmentHead(r.db.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentHeadNotFound
		}
		return nil, err
	}

	return head, nil
}

// Create assigns a head to a department. The department ID doubles as the
// addressable ID in the create response. Assigning a second head to the
// same department fails on the primary key.
func (r *departmentHeadRepository) Create(ctx context.Context, head *models.DepartmentHead) (int64, error) {
	query := `
		INSERT INTO department_heads (department_id, instructor_id, start_date)
		VALUES ($1, $2, $3)
		RETURNING department_id
	`

	err := r.db.QueryRow(ctx, query,
		head.DepartmentID,
		head.InstructorID,
		head.StartDate,
	).Scan(&head.DepartmentID)
	if err != nil {
		return 0, err
	}

	return head.DepartmentID, nil
}

// Update replaces the instructor and start date for a department's head
func (r *departmentHeadRepository) Update(ctx context.Context, head *models.DepartmentHead) error {
	query := `
		UPDATE department_heads
		SET instructor_id = $1, start_date = $2
		WHERE department_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query,
		head.InstructorID,
		head.StartDate,
		head.DepartmentID,
	)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentHeadNotFound
	}

	return nil
}

// Delete removes a department's head record
func (r *departmentHeadRepository) Delete(ctx context.Context, departmentID int64) error {
	query := `DELETE FROM department_heads WHERE department_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, departmentID)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentHeadNotFound
	}

	return nil
}
