package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdb/registrar/internal/app/models"
	"github.com/campusdb/registrar/internal/pkg/apperrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) (int64, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

type departmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{
		db: db,
	}
}

const listDepartmentsQuery = `
	SELECT department_id, department_name, building, budget
	FROM departments
	ORDER BY department_name
`

// GetAll retrieves all departments ordered by name
func (r *departmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, listDepartmentsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Building,
			&department.Budget,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByID retrieves a department by ID
func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT department_id, department_name, building, budget
		FROM departments
		WHERE department_id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.Building,
		&department.Budget,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}

	return &department, nil
}

// Create inserts a new department and returns the generated ID
func (r *departmentRepository) Create(ctx context.Context, department *models.Department) (int64, error) {
	query := `
		INSERT INTO departments (department_name, building, budget)
		VALUES ($1, $2, $3)
		RETURNING department_id
	`

	err := r.db.QueryRow(ctx, query, department.Name, department.Building, department.Budget).Scan(&department.ID)
	if err != nil {
		return 0, err
	}

	return department.ID, nil
}

// Update replaces all mutable fields of an existing department
func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET department_name = $1, building = $2, budget = $3
		WHERE department_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		department.Name, department.Building, department.Budget, department.ID)

	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete removes a department by ID
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM departments WHERE department_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
